package prediction

import "errors"

// ErrModelUnavailable is returned when no trained classifier and scaler
// pair has been loaded. It is a fatal precondition for an assessment,
// never silently defaulted.
var ErrModelUnavailable = errors.New("no trained model loaded")

// ErrInvalidScores is returned when a risk score map is empty. A
// well-formed classifier always emits its full class set, so this is a
// defensive guard.
var ErrInvalidScores = errors.New("risk scores must not be empty")
