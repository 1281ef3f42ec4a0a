// Package email sends transactional mail through SendGrid, with a console
// fallback for development.
package email

import (
	"fmt"
	"log"
	"strings"

	"github.com/menshealthfinder/api/pkg/metrics"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
	metrics     *metrics.Metrics
}

// NewService creates a new email service. With an API key emails go through
// SendGrid; without one they are logged to the console.
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SetMetrics attaches the Prometheus counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// send dispatches via SendGrid or the console and counts the delivery against
// its template label.
func (s *Service) send(template, toEmail, toName, subject, htmlBody, plainTextBody, actionURL string) error {
	var err error
	if s.useSendGrid {
		err = s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	} else {
		err = s.logEmailToConsole(toEmail, toName, subject, actionURL)
	}
	if err == nil && s.metrics != nil {
		s.metrics.RecordEmailSent(template)
	}
	return err
}

// UpgradePitch carries the revenue-opportunity numbers for the pitch email.
type UpgradePitch struct {
	ClinicName     string
	City           string
	State          string
	MonthlyRevenue float64
	PrimaryIssue   string
}

// SendUpgradePitch sends the estimated-missed-revenue pitch to a clinic.
func (s *Service) SendUpgradePitch(toEmail string, pitch UpgradePitch) error {
	upgradeURL := fmt.Sprintf("%s/pricing", s.baseURL)

	subject := fmt.Sprintf("%s may be missing an estimated $%.0f/month in patient revenue", pitch.ClinicName, pitch.MonthlyRevenue)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your listing has room to grow</h2>
			<p>Hi,</p>
			<p>We analyzed how men in %s, %s find clinics like <strong>%s</strong> and estimate your listing is missing out on roughly <strong>$%.0f per month</strong> in patient revenue.</p>
			<p>The biggest issue we found: <strong>%s</strong>.</p>
			<p><a href="%s" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">See upgrade options</a></p>
			<p>These figures are estimates based on directory traffic in your area, not a guarantee.</p>
			<p>Thanks,<br>The Men's Health Finder Team</p>
		</body>
		</html>
	`, pitch.City, pitch.State, pitch.ClinicName, pitch.MonthlyRevenue, pitch.PrimaryIssue, upgradeURL)

	plainText := fmt.Sprintf(`
Hi,

We analyzed how men in %s, %s find clinics like %s and estimate your listing
is missing out on roughly $%.0f per month in patient revenue.

The biggest issue we found: %s.

See upgrade options: %s

These figures are estimates based on directory traffic in your area, not a
guarantee.

Thanks,
The Men's Health Finder Team
	`, pitch.City, pitch.State, pitch.ClinicName, pitch.MonthlyRevenue, pitch.PrimaryIssue, upgradeURL)

	return s.send("upgrade_pitch", toEmail, pitch.ClinicName, subject, body, plainText, upgradeURL)
}

// SendTierActivated confirms a paid tier purchase.
func (s *Service) SendTierActivated(toEmail, clinicName, tier string) error {
	dashboardURL := fmt.Sprintf("%s/dashboard", s.baseURL)

	subject := fmt.Sprintf("Your %s listing is now on the %s tier", clinicName, tier)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>You're all set</h2>
			<p>Hi,</p>
			<p>The <strong>%s</strong> tier is now active for <strong>%s</strong>. Your listing upgrades are live immediately.</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Open your dashboard</a></p>
			<p>Thanks,<br>The Men's Health Finder Team</p>
		</body>
		</html>
	`, tier, clinicName, dashboardURL)

	plainText := fmt.Sprintf(`
Hi,

The %s tier is now active for %s. Your listing upgrades are live immediately.

Open your dashboard: %s

Thanks,
The Men's Health Finder Team
	`, tier, clinicName, dashboardURL)

	return s.send("tier_activated", toEmail, clinicName, subject, body, plainText, dashboardURL)
}

// SendTaskDigest notifies an operator about follow-up tasks coming due.
func (s *Service) SendTaskDigest(toEmail, toName string, taskTitles []string) error {
	tasksURL := fmt.Sprintf("%s/admin/tasks", s.baseURL)

	subject := fmt.Sprintf("%d follow-up tasks due today", len(taskTitles))
	var htmlItems, plainItems strings.Builder
	for _, title := range taskTitles {
		fmt.Fprintf(&htmlItems, "<li>%s</li>\n", title)
		fmt.Fprintf(&plainItems, "- %s\n", title)
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Follow-up tasks due today</h2>
			<p>Hi %s,</p>
			<ul>
%s			</ul>
			<p><a href="%s">Open the task queue</a></p>
		</body>
		</html>
	`, toName, htmlItems.String(), tasksURL)

	plainText := fmt.Sprintf(`
Hi %s,

Follow-up tasks due today:

%s
Open the task queue: %s
	`, toName, plainItems.String(), tasksURL)

	return s.send("task_digest", toEmail, toName, subject, body, plainText, tasksURL)
}

// SendRawEmail sends a fully-formed email without a template.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	return s.send("raw", toEmail, toName, subject, htmlBody, plainTextBody, "")
}

// sendViaSendGrid sends email using the SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	if actionURL != "" {
		log.Printf("   Action URL: %s", actionURL)
	}
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}
