package prediction_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalsign/health-risk-api/models"
	"github.com/vitalsign/health-risk-api/prediction"
)

func loadTestForest(t *testing.T) *prediction.Forest {
	t.Helper()
	forest, err := prediction.LoadForest(
		filepath.Join("testdata", "model.json"),
		filepath.Join("testdata", "scaler.json"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return forest
}

func TestLoadForestMissingArtifacts(t *testing.T) {
	_, err := prediction.LoadForest("testdata/nope.json", "testdata/scaler.json")
	assert.ErrorIs(t, err, prediction.ErrModelUnavailable)

	_, err = prediction.LoadForest("testdata/model.json", "testdata/nope.json")
	assert.ErrorIs(t, err, prediction.ErrModelUnavailable)
}

func TestForestPredictProbabilitiesSumToOne(t *testing.T) {
	forest := loadTestForest(t)

	features := prediction.BuildFeatures(models.HealthSubmission{})
	class, scores, err := forest.Predict(features)

	assert.NoError(t, err)
	assert.Len(t, scores, 2)
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, "Diabetes", class)
	assert.InDelta(t, 0.625, scores["Diabetes"], 1e-9)
	assert.InDelta(t, 0.375, scores["Hypertension"], 1e-9)
}

func TestForestPredictRoutesOnScaledFeatures(t *testing.T) {
	forest := loadTestForest(t)

	sub := models.HealthSubmission{BloodPressureSystolic: intPtr(150)}
	class, scores, err := forest.Predict(prediction.BuildFeatures(sub))

	assert.NoError(t, err)
	assert.Equal(t, "Hypertension", class)
	assert.InDelta(t, 0.95, scores["Hypertension"], 1e-9)
}

func TestForestPredictDeterministic(t *testing.T) {
	forest := loadTestForest(t)
	features := prediction.BuildFeatures(models.HealthSubmission{})

	classA, scoresA, err := forest.Predict(features)
	assert.NoError(t, err)
	classB, scoresB, err := forest.Predict(features)
	assert.NoError(t, err)

	assert.Equal(t, classA, classB)
	assert.Equal(t, scoresA, scoresB)
}

func TestForestPredictWrongWidth(t *testing.T) {
	forest := loadTestForest(t)

	_, _, err := forest.Predict([]float64{1, 2, 3})
	assert.Error(t, err)
}

func TestScalerTransform(t *testing.T) {
	s := prediction.Scaler{
		Mean:  make([]float64, prediction.FeatureCount),
		Scale: make([]float64, prediction.FeatureCount),
	}
	for i := range s.Mean {
		s.Mean[i] = 10
		s.Scale[i] = 2
	}
	// a zero scale must not divide by zero
	s.Scale[0] = 0

	in := []float64{10, 14, 10, 10, 10, 10, 10, 10, 12}
	out := s.Transform(in)

	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 2.0, out[1])
	assert.Equal(t, 1.0, out[8])
	// input untouched
	assert.Equal(t, 14.0, in[1])
}
