package prediction

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/models"
	"github.com/vitalsign/health-risk-api/notifications"
	"github.com/vitalsign/health-risk-api/store"
)

// Service runs the assessment flow: feature extraction, classification,
// risk tiering, recommendations and history bookkeeping. The classifier
// is injected and may be nil when no trained artifacts were found, in
// which case every Assess call fails with ErrModelUnavailable.
type Service struct {
	classifier Classifier
	history    *store.History
	alerts     *notifications.Mailer
}

// NewService wires the assessment service. alerts may be nil to disable
// risk-alert emails.
func NewService(classifier Classifier, history *store.History, alerts *notifications.Mailer) *Service {
	return &Service{
		classifier: classifier,
		history:    history,
		alerts:     alerts,
	}
}

// Assess classifies one health submission and appends the resulting
// assessment to the submitting user's history. The submission is never
// mutated; it is copied verbatim into the assessment.
func (s *Service) Assess(submission models.HealthSubmission) (models.RiskAssessment, error) {
	if s.classifier == nil {
		return models.RiskAssessment{}, ErrModelUnavailable
	}

	features := BuildFeatures(submission)
	_, scores, err := s.classifier.Predict(features)
	if err != nil {
		return models.RiskAssessment{}, err
	}

	level, err := Level(scores)
	if err != nil {
		return models.RiskAssessment{}, err
	}

	high := HighRiskDiseases(scores)
	assessment := models.RiskAssessment{
		ID:               uuid.New().String(),
		OverallRiskLevel: level,
		RiskScores:       scores,
		HighRiskDiseases: high,
		PrimaryConcern:   ArgMax(scores),
		Recommendations:  Recommend(high, submission),
		Timestamp:        time.Now().UTC(),
		HealthInputs:     submission,
	}

	s.history.Record(submission.UserIDOrDefault(), assessment)

	zap.S().Infow("risk assessment completed",
		"assessmentId", assessment.ID,
		"userId", submission.UserIDOrDefault(),
		"riskLevel", assessment.OverallRiskLevel,
		"primaryConcern", assessment.PrimaryConcern,
	)

	if s.alerts != nil && submission.Email != "" &&
		(level == models.RiskHigh || level == models.RiskCritical) {
		go s.alerts.SendRiskAlert(submission.Email, assessment)
	}

	return assessment, nil
}

// History returns the user's past assessments in call order; unknown
// users get an empty slice.
func (s *Service) History(userID string) []models.RiskAssessment {
	return s.history.ForUser(userID)
}

// Precautions builds a precaution plan for the given disease list plus
// lifestyle and condition flags.
func (s *Service) Precautions(diseases []string, age int, lifestyle string, conditions []string) models.PrecautionPlan {
	return Precautions(diseases, age, lifestyle, conditions)
}

// LifestyleTips returns the static lifestyle tip categories.
func (s *Service) LifestyleTips() map[string][]string {
	return LifestyleTips()
}
