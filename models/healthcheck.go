package models

// HealthCheckResponse is returned by the service healthcheck endpoint
type HealthCheckResponse struct {
	Alive   bool   `json:"alive"`
	Version string `json:"version,omitempty"`
}
