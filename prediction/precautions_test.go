package prediction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalsign/health-risk-api/prediction"
)

func TestPrecautionsDiabetesActive(t *testing.T) {
	plan := prediction.Precautions([]string{"Diabetes"}, 45, "active", nil)

	assert.Contains(t, plan.SpecialistReferrals, "Endocrinologist")
	assert.Equal(t, []string{"Get blood glucose test", "Review diet"}, plan.ImmediateActions)
	assert.Empty(t, plan.ShortTermChanges)
	assert.Empty(t, plan.LongTermLifestyle)
}

func TestPrecautionsSedentaryLifestyle(t *testing.T) {
	plan := prediction.Precautions(nil, 30, "sedentary", nil)

	assert.Len(t, plan.ShortTermChanges, 3)
	assert.Equal(t, "Start with 15 minutes of walking daily", plan.ShortTermChanges[0])
}

func TestPrecautionsOverweightCondition(t *testing.T) {
	plan := prediction.Precautions(nil, 30, "active", []string{"overweight"})

	assert.Len(t, plan.LongTermLifestyle, 3)
}

func TestPrecautionsMonitoringAlwaysPresent(t *testing.T) {
	empty := prediction.Precautions(nil, 0, "", nil)
	full := prediction.Precautions([]string{"Hypertension", "Stroke Risk"}, 70, "sedentary", []string{"overweight"})

	want := []string{
		"Weekly blood pressure checks",
		"Monthly weight monitoring",
		"Quarterly health check-ups",
	}
	assert.Equal(t, want, empty.Monitoring)
	assert.Equal(t, want, full.Monitoring)
}

func TestPrecautionsDuplicateReferralsKept(t *testing.T) {
	plan := prediction.Precautions([]string{"Diabetes", "Diabetes"}, 45, "", nil)

	assert.Equal(t, []string{"Endocrinologist", "Endocrinologist"}, plan.SpecialistReferrals)
}

func TestPrecautionsUnknownDiseaseIgnored(t *testing.T) {
	plan := prediction.Precautions([]string{"Common Cold"}, 45, "", nil)

	assert.Empty(t, plan.ImmediateActions)
	assert.Empty(t, plan.SpecialistReferrals)
}

func TestLifestyleTipsStatic(t *testing.T) {
	first := prediction.LifestyleTips()
	second := prediction.LifestyleTips()

	assert.Equal(t, first, second)
	assert.Len(t, first, 5)
	for _, category := range []string{"nutrition", "exercise", "sleep", "stress", "monitoring"} {
		assert.NotEmpty(t, first[category])
	}

	// mutating a returned copy must not leak into later calls
	first["nutrition"][0] = "changed"
	assert.NotEqual(t, first["nutrition"][0], prediction.LifestyleTips()["nutrition"][0])
}
