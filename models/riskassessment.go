package models

import "time"

// RiskLevel is the coarse severity tier derived from the maximum
// per-disease risk score.
type RiskLevel string

// Risk levels, ordered from least to most severe.
const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskAssessment is the immutable result of one health submission run
// through the classifier. It is created once, appended to the user's
// history and never mutated afterwards.
type RiskAssessment struct {
	ID               string             `json:"id"`
	OverallRiskLevel RiskLevel          `json:"overall_risk_level"`
	RiskScores       map[string]float64 `json:"risk_scores"`
	HighRiskDiseases []string           `json:"high_risk_diseases"`
	PrimaryConcern   string             `json:"primary_concern"`
	Recommendations  []string           `json:"recommendation"`
	Timestamp        time.Time          `json:"timestamp"`
	HealthInputs     HealthSubmission   `json:"health_inputs"`
}
