package models

import "fmt"

// ValidateHealthSubmission checks that the core vitals are present and
// that every supplied value is inside its physiological range. It
// returns the list of violations; an empty list means the submission is
// acceptable. Optional fields (user id, email, coordinates, symptom and
// family-history lists) are never required.
func ValidateHealthSubmission(h HealthSubmission) []string {
	var errs []string

	if h.Age == nil {
		errs = append(errs, "Missing required field: age")
	} else if *h.Age <= 0 || *h.Age >= 150 {
		errs = append(errs, "Age must be between 0 and 150")
	}

	if h.HeartRate == nil {
		errs = append(errs, "Missing required field: heart_rate")
	} else if *h.HeartRate <= 30 || *h.HeartRate >= 200 {
		errs = append(errs, "Heart rate must be between 30 and 200 bpm")
	}

	if h.BloodPressureSystolic == nil {
		errs = append(errs, "Missing required field: blood_pressure_systolic")
	} else if *h.BloodPressureSystolic <= 50 || *h.BloodPressureSystolic >= 300 {
		errs = append(errs, "Systolic BP must be between 50 and 300 mmHg")
	}

	if h.BloodPressureDiastolic == nil {
		errs = append(errs, "Missing required field: blood_pressure_diastolic")
	} else if *h.BloodPressureDiastolic <= 30 || *h.BloodPressureDiastolic >= 200 {
		errs = append(errs, "Diastolic BP must be between 30 and 200 mmHg")
	}

	if h.BMI == nil {
		errs = append(errs, "Missing required field: bmi")
	} else if *h.BMI <= 10 || *h.BMI >= 60 {
		errs = append(errs, "BMI must be between 10 and 60")
	}

	if h.ExerciseFrequency != nil {
		if *h.ExerciseFrequency < 0 || *h.ExerciseFrequency > 7 {
			errs = append(errs, "Exercise frequency must be 0-7 days per week")
		}
	}

	if h.Latitude != nil && (*h.Latitude < -90 || *h.Latitude > 90) {
		errs = append(errs, fmt.Sprintf("Latitude %v is out of range", *h.Latitude))
	}
	if h.Longitude != nil && (*h.Longitude < -180 || *h.Longitude > 180) {
		errs = append(errs, fmt.Sprintf("Longitude %v is out of range", *h.Longitude))
	}

	return errs
}
