package prediction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalsign/health-risk-api/models"
	"github.com/vitalsign/health-risk-api/prediction"
	"github.com/vitalsign/health-risk-api/store"
)

// stubClassifier returns a canned score map, like a trained model with
// fixed parameters would.
type stubClassifier struct {
	scores map[string]float64
	err    error
}

func (s stubClassifier) Predict(features []float64) (string, map[string]float64, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return prediction.ArgMax(s.scores), s.scores, nil
}

func TestServiceAssessNoModel(t *testing.T) {
	svc := prediction.NewService(nil, store.NewHistory(0), nil)

	_, err := svc.Assess(models.HealthSubmission{})

	assert.ErrorIs(t, err, prediction.ErrModelUnavailable)
}

func TestServiceAssessLowRiskDefaults(t *testing.T) {
	clf := stubClassifier{scores: map[string]float64{
		"Cardiovascular Disease": 0.25,
		"Diabetes":               0.25,
		"Hypertension":           0.25,
		"Stroke Risk":            0.25,
	}}
	svc := prediction.NewService(clf, store.NewHistory(0), nil)

	sub := models.HealthSubmission{
		Age:                    intPtr(30),
		HeartRate:              intPtr(70),
		BloodPressureSystolic:  intPtr(120),
		BloodPressureDiastolic: intPtr(80),
		BMI:                    floatPtr(24),
		ExerciseFrequency:      intPtr(3),
	}
	assessment, err := svc.Assess(sub)

	assert.NoError(t, err)
	assert.Equal(t, models.RiskLow, assessment.OverallRiskLevel)
	assert.Empty(t, assessment.HighRiskDiseases)
	assert.Equal(t, []string{prediction.DefaultRecommendation}, assessment.Recommendations)
	assert.Equal(t, sub, assessment.HealthInputs)
	assert.NotEmpty(t, assessment.ID)
	assert.False(t, assessment.Timestamp.IsZero())
}

func TestServiceAssessHighRisk(t *testing.T) {
	clf := stubClassifier{scores: map[string]float64{
		"Cardiovascular Disease": 0.6,
		"Diabetes":               0.3,
		"Stroke Risk":            0.1,
	}}
	svc := prediction.NewService(clf, store.NewHistory(0), nil)

	assessment, err := svc.Assess(models.HealthSubmission{Smoking: true})

	assert.NoError(t, err)
	assert.Equal(t, models.RiskHigh, assessment.OverallRiskLevel)
	assert.Equal(t, []string{"Cardiovascular Disease"}, assessment.HighRiskDiseases)
	assert.Equal(t, "Cardiovascular Disease", assessment.PrimaryConcern)
	assert.Equal(t, "Quit smoking immediately",
		assessment.Recommendations[len(assessment.Recommendations)-1])
}

func TestServiceAssessRecordsHistory(t *testing.T) {
	clf := stubClassifier{scores: map[string]float64{"Diabetes": 1.0}}
	history := store.NewHistory(0)
	svc := prediction.NewService(clf, history, nil)

	_, err := svc.Assess(models.HealthSubmission{UserID: "user-1"})
	assert.NoError(t, err)
	_, err = svc.Assess(models.HealthSubmission{UserID: "user-1"})
	assert.NoError(t, err)

	assert.Len(t, svc.History("user-1"), 2)
	assert.Empty(t, svc.History("user-2"))
}

func TestServiceAssessAnonymousBucket(t *testing.T) {
	clf := stubClassifier{scores: map[string]float64{"Diabetes": 1.0}}
	svc := prediction.NewService(clf, store.NewHistory(0), nil)

	_, err := svc.Assess(models.HealthSubmission{})
	assert.NoError(t, err)

	assert.Len(t, svc.History(models.AnonymousUserID), 1)
}
