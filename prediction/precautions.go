package prediction

import "github.com/vitalsign/health-risk-api/models"

type diseasePrecaution struct {
	immediate []string
	referral  string
}

var diseasePrecautions = map[string]diseasePrecaution{
	"Hypertension": {
		immediate: []string{"Check blood pressure immediately", "Reduce sodium intake"},
		referral:  "Cardiologist",
	},
	"Diabetes": {
		immediate: []string{"Get blood glucose test", "Review diet"},
		referral:  "Endocrinologist",
	},
	"Stroke Risk": {
		immediate: []string{"Seek emergency care", "Monitor symptoms"},
		referral:  "Neurologist",
	},
}

var sedentaryChanges = []string{
	"Start with 15 minutes of walking daily",
	"Use stairs instead of elevators",
	"Do stretching exercises",
}

var overweightChanges = []string{
	"Aim for 150 minutes moderate exercise per week",
	"Reduce processed foods",
	"Drink at least 2 liters of water daily",
}

var standingMonitoring = []string{
	"Weekly blood pressure checks",
	"Monthly weight monitoring",
	"Quarterly health check-ups",
}

// Precautions builds the multi-horizon precaution plan for a disease
// list plus lifestyle and condition flags. Unknown disease names are
// ignored, and duplicate referrals are kept as-is. The age parameter is
// accepted for future age-adjusted plans but does not alter the output
// today.
func Precautions(diseases []string, age int, lifestyle string, conditions []string) models.PrecautionPlan {
	_ = age

	plan := models.PrecautionPlan{
		ImmediateActions:    []string{},
		ShortTermChanges:    []string{},
		LongTermLifestyle:   []string{},
		SpecialistReferrals: []string{},
	}

	for _, disease := range diseases {
		p, ok := diseasePrecautions[disease]
		if !ok {
			continue
		}
		plan.ImmediateActions = append(plan.ImmediateActions, p.immediate...)
		plan.SpecialistReferrals = append(plan.SpecialistReferrals, p.referral)
	}

	if lifestyle == "sedentary" {
		plan.ShortTermChanges = append(plan.ShortTermChanges, sedentaryChanges...)
	}

	for _, c := range conditions {
		if c == "overweight" {
			plan.LongTermLifestyle = append(plan.LongTermLifestyle, overweightChanges...)
			break
		}
	}

	plan.Monitoring = append([]string{}, standingMonitoring...)
	return plan
}
