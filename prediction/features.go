package prediction

import "github.com/vitalsign/health-risk-api/models"

// FeatureCount is the fixed width of the feature vector. The element
// order below is consumed positionally by the classifier, so it is
// versioned together with the trained model artifact — reordering it
// invalidates any previously trained classifier.
const FeatureCount = 9

// FeatureVersion identifies the feature layout. Model artifacts record
// the version they were trained against and refuse to load on mismatch.
const FeatureVersion = "v1"

// Defaults substituted for omitted optional fields.
const (
	defaultAge       = 30
	defaultHeartRate = 70
	defaultSystolic  = 120
	defaultDiastolic = 80
	defaultBMI       = 24
	defaultExercise  = 3
)

// BuildFeatures turns a health submission into the fixed-order numeric
// vector [age, heart_rate, bp_systolic, bp_diastolic, bmi,
// exercise_frequency, smoking, symptom_count, family_history_count].
// Every field has a default, so this never fails.
func BuildFeatures(h models.HealthSubmission) []float64 {
	smoking := 0.0
	if h.Smoking {
		smoking = 1
	}
	return []float64{
		float64(intOr(h.Age, defaultAge)),
		float64(intOr(h.HeartRate, defaultHeartRate)),
		float64(intOr(h.BloodPressureSystolic, defaultSystolic)),
		float64(intOr(h.BloodPressureDiastolic, defaultDiastolic)),
		floatOr(h.BMI, defaultBMI),
		float64(intOr(h.ExerciseFrequency, defaultExercise)),
		smoking,
		float64(len(h.Symptoms)),
		float64(len(h.FamilyHistory)),
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
