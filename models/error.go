package models

// ErrorMessageResponse is the JSON envelope written for failed requests.
type ErrorMessageResponse struct {
	Response MessageError `json:"response"`
}

// MessageError carries the human-readable message and the underlying
// error string for a failed request.
type MessageError struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ValidationResponse is returned by the validate endpoint: whether the
// submission passed range validation, and the reasons when it did not.
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
