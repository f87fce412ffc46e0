package prediction

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scaler holds the zero-mean/unit-variance parameters fit once at
// training time. The same fitted parameters are reused for every
// inference call for the life of the loaded model; refitting at
// inference time would be a correctness bug.
type Scaler struct {
	FeatureVersion string    `json:"feature_version"`
	Mean           []float64 `json:"mean"`
	Scale          []float64 `json:"scale"`
}

// LoadScaler reads scaler parameters exported at training time.
func LoadScaler(path string) (*Scaler, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	var s Scaler
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scaler %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scaler %s: %w", path, err)
	}
	return &s, nil
}

func (s *Scaler) validate() error {
	if s.FeatureVersion != FeatureVersion {
		return fmt.Errorf("feature version %q does not match %q", s.FeatureVersion, FeatureVersion)
	}
	if len(s.Mean) != FeatureCount || len(s.Scale) != FeatureCount {
		return fmt.Errorf("expected %d scaling parameters, got mean=%d scale=%d",
			FeatureCount, len(s.Mean), len(s.Scale))
	}
	return nil
}

// Transform applies the fitted standardization to a feature vector,
// returning a new slice. A zero scale falls back to 1 so a constant
// training column cannot divide by zero.
func (s *Scaler) Transform(features []float64) []float64 {
	out := make([]float64, len(features))
	for i, v := range features {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out
}
