package notifications

import (
	"testing"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"

	"github.com/vitalsign/health-risk-api/models"
)

func TestNewMailerDisabledWithoutKey(t *testing.T) {
	assert.Nil(t, NewMailer("", "alerts@example.com"))
}

func TestSendRiskAlertBody(t *testing.T) {
	m := NewMailer("SG.test-key", "alerts@example.com")
	assert.NotNil(t, m)

	var sent *mail.SGMailV3
	m.send = func(msg *mail.SGMailV3) error {
		sent = msg
		return nil
	}

	a := models.RiskAssessment{
		OverallRiskLevel: models.RiskCritical,
		PrimaryConcern:   "Stroke Risk",
		RiskScores: map[string]float64{
			"Stroke Risk": 0.75,
			"Diabetes":    0.25,
		},
		Recommendations: []string{"Emergency medical evaluation recommended"},
	}
	m.SendRiskAlert("user@example.com", a)

	assert.NotNil(t, sent)
	assert.Equal(t, "Health Risk Alert - CRITICAL", sent.Subject)
	assert.Equal(t, "user@example.com", sent.Personalizations[0].To[0].Address)

	body := sent.Content[0].Value
	assert.Contains(t, body, "CRITICAL risk level")
	assert.Contains(t, body, "Primary Concern: Stroke Risk")
	assert.Contains(t, body, "Stroke Risk: 75.0%")
	assert.Contains(t, body, "Emergency medical evaluation recommended")
}

func TestSendRiskAlertDeliveryFailureIsSwallowed(t *testing.T) {
	m := NewMailer("SG.test-key", "alerts@example.com")
	m.send = func(msg *mail.SGMailV3) error {
		return assert.AnError
	}

	// must not panic; the assessment flow never depends on delivery
	m.SendRiskAlert("user@example.com", models.RiskAssessment{
		OverallRiskLevel: models.RiskHigh,
	})
}
