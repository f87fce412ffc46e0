package models

// HealthSubmission holds the vital-sign and lifestyle inputs for one
// risk assessment. Numeric fields are pointers so that a missing field
// can be told apart from a zero value: the validator requires the core
// vitals, and the feature builder substitutes population defaults for
// anything optional that was omitted.
type HealthSubmission struct {
	Age                    *int     `json:"age,omitempty"`
	HeartRate              *int     `json:"heart_rate,omitempty"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic,omitempty"`
	BMI                    *float64 `json:"bmi,omitempty"`
	Symptoms               []string `json:"symptoms,omitempty"`
	Smoking                bool     `json:"smoking,omitempty"`
	ExerciseFrequency      *int     `json:"exercise_frequency,omitempty"`
	FamilyHistory          []string `json:"family_history,omitempty"`
	UserID                 string   `json:"user_id,omitempty"`
	Email                  string   `json:"email,omitempty"`
	Latitude               *float64 `json:"latitude,omitempty"`
	Longitude              *float64 `json:"longitude,omitempty"`
}

// AnonymousUserID is the history bucket used when a submission carries
// no user id. Concurrent anonymous submissions share this bucket.
const AnonymousUserID = "anonymous"

// UserIDOrDefault returns the submission's user id, or the shared
// anonymous bucket when none was supplied.
func (h HealthSubmission) UserIDOrDefault() string {
	if h.UserID == "" {
		return AnonymousUserID
	}
	return h.UserID
}
