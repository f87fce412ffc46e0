package notifications

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/models"
)

// Mailer sends risk-alert emails through sendgrid. It is a one-way
// sink: the assessment flow never depends on delivery succeeding.
type Mailer struct {
	apiKey    string
	fromEmail string
	send      func(*mail.SGMailV3) error
}

// NewMailer creates a mailer, or nil when no API key is configured so
// callers can treat notifications as disabled.
func NewMailer(apiKey, fromEmail string) *Mailer {
	if apiKey == "" {
		return nil
	}
	m := &Mailer{apiKey: apiKey, fromEmail: fromEmail}
	m.send = func(msg *mail.SGMailV3) error {
		client := sendgrid.NewSendClient(m.apiKey)
		response, err := client.Send(msg)
		if err != nil {
			return err
		}
		if response.StatusCode < 200 || response.StatusCode >= 300 {
			return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
		}
		return nil
	}
	return m
}

// SendRiskAlert emails a high-risk assessment summary to the recipient.
// Intended to be called from a goroutine; failures are logged, not
// returned to the assessment flow.
func (m *Mailer) SendRiskAlert(recipient string, a models.RiskAssessment) {
	from := mail.NewEmail("Health Risk Alerts", m.fromEmail)
	to := mail.NewEmail("", recipient)
	subject := fmt.Sprintf("Health Risk Alert - %s", a.OverallRiskLevel)
	body := alertBody(a)
	msg := mail.NewSingleEmail(from, subject, to, body, "<pre>"+body+"</pre>")

	if err := m.send(msg); err != nil {
		zap.S().Errorw("failed to send risk alert",
			"recipient", recipient,
			"riskLevel", a.OverallRiskLevel,
			"error", err,
		)
		return
	}
	zap.S().Infow("risk alert sent",
		"recipient", recipient,
		"riskLevel", a.OverallRiskLevel,
	)
}

func alertBody(a models.RiskAssessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your recent health assessment indicates a %s risk level.\n\n", a.OverallRiskLevel)
	fmt.Fprintf(&b, "Primary Concern: %s\n\nRisk Scores:\n", a.PrimaryConcern)

	diseases := make([]string, 0, len(a.RiskScores))
	for d := range a.RiskScores {
		diseases = append(diseases, d)
	}
	sort.Strings(diseases)
	for _, d := range diseases {
		fmt.Fprintf(&b, "  - %s: %.1f%%\n", d, a.RiskScores[d]*100)
	}

	b.WriteString("\nRecommendations:\n")
	for _, rec := range a.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}
	b.WriteString("\nPlease seek medical attention if you experience any concerning symptoms.\n")
	return b.String()
}
