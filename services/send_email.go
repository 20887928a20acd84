package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/brightforge/agency-site-backend/config"
)

// Mailer relays messages to the agency inbox. The production implementation
// speaks plain SMTP with the EMAIL_* env contract; tests swap in a stub.
type Mailer interface {
	Configured() bool
	Send(recipients []string, subject, body string) error
}

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewSMTPMailer reads EMAIL_HOST/PORT/USER/PASS/FROM. Missing user or pass
// leaves the mailer unconfigured rather than failing startup.
func NewSMTPMailer(c map[string]string) *SMTPMailer {
	return &SMTPMailer{
		host: config.GetString(c, "EMAIL_HOST", "smtp.gmail.com"),
		port: config.GetString(c, "EMAIL_PORT", "587"),
		user: config.GetString(c, "EMAIL_USER", ""),
		pass: config.GetString(c, "EMAIL_PASS", ""),
		from: config.GetString(c, "EMAIL_FROM", config.GetString(c, "EMAIL_USER", "")),
	}
}

func (m *SMTPMailer) Configured() bool {
	return m.user != "" && m.pass != ""
}

// Send relays an HTML email to the recipients. No retries; a failure is
// terminal for the current request.
func (m *SMTPMailer) Send(recipients []string, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("EMAIL_USER and EMAIL_PASS environment variables are required")
	}
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + strings.Join(recipients, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.from, recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email via %s: %w", addr, err)
	}

	log.Info().Int("recipients", len(recipients)).Str("subject", subject).Msg("Email sent")
	return nil
}

// ConfigReport describes which parts of the email configuration are present
// without exposing any values.
type ConfigReport struct {
	Host    bool `json:"host"`
	Port    bool `json:"port"`
	User    bool `json:"user"`
	Pass    bool `json:"pass"`
	From    bool `json:"from"`
	Ready   bool `json:"ready"`
	Address string `json:"address,omitempty"`
}

func (m *SMTPMailer) Report() ConfigReport {
	report := ConfigReport{
		Host:  m.host != "",
		Port:  m.port != "",
		User:  m.user != "",
		Pass:  m.pass != "",
		From:  m.from != "",
		Ready: m.Configured(),
	}
	if report.Ready {
		report.Address = m.host + ":" + m.port
	}
	return report
}
