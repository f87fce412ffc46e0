package prediction

import "github.com/vitalsign/health-risk-api/models"

// HighRiskThreshold is the strict cut above which a disease is flagged
// high risk.
const HighRiskThreshold = 0.4

// Level derives the coarse severity tier from the maximum risk score:
// >0.7 CRITICAL, >0.5 HIGH, >0.3 MODERATE, else LOW. The thresholds are
// non-overlapping and evaluated top-down. An empty score map is a
// malformed classifier output and returns ErrInvalidScores.
func Level(scores map[string]float64) (models.RiskLevel, error) {
	if len(scores) == 0 {
		return "", ErrInvalidScores
	}
	max := 0.0
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	switch {
	case max > 0.7:
		return models.RiskCritical, nil
	case max > 0.5:
		return models.RiskHigh, nil
	case max > 0.3:
		return models.RiskModerate, nil
	default:
		return models.RiskLow, nil
	}
}

// HighRiskDiseases returns the diseases whose score strictly exceeds
// HighRiskThreshold, in sorted-key order for reproducibility.
func HighRiskDiseases(scores map[string]float64) []string {
	var high []string
	for _, k := range sortedKeys(scores) {
		if scores[k] > HighRiskThreshold {
			high = append(high, k)
		}
	}
	return high
}
