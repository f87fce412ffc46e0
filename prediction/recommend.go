package prediction

import "github.com/vitalsign/health-risk-api/models"

// DefaultRecommendation is returned when no disease crossed the
// high-risk threshold.
const DefaultRecommendation = "Maintain healthy lifestyle and regular check-ups."

// diseaseAdvice maps each known high-risk disease to its ordered block
// of advice. Diseases without an entry contribute nothing.
var diseaseAdvice = map[string][]string{
	"Cardiovascular Disease": {
		"Consult a cardiologist immediately",
		"Monitor blood pressure daily",
		"Reduce salt and saturated fat intake",
	},
	"Diabetes": {
		"Get blood glucose testing",
		"Monitor dietary intake",
		"Increase physical activity",
	},
	"Stroke Risk": {
		"Emergency medical evaluation recommended",
		"Take aspirin if recommended by doctor",
	},
}

// Recommend accumulates the advice blocks for every matched high-risk
// disease, in the order the diseases are given, and appends a
// smoking-cessation item when the submission declares smoking. With no
// high-risk diseases it returns the single default recommendation.
func Recommend(highRiskDiseases []string, submission models.HealthSubmission) []string {
	if len(highRiskDiseases) == 0 {
		return []string{DefaultRecommendation}
	}
	var recs []string
	for _, disease := range highRiskDiseases {
		recs = append(recs, diseaseAdvice[disease]...)
	}
	if submission.Smoking {
		recs = append(recs, "Quit smoking immediately")
	}
	return recs
}
