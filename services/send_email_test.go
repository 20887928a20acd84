package services

import "testing"

func TestSMTPMailerConfigured(t *testing.T) {
	unconfigured := NewSMTPMailer(map[string]string{})
	if unconfigured.Configured() {
		t.Error("Expected unconfigured mailer without EMAIL_USER and EMAIL_PASS")
	}

	configured := NewSMTPMailer(map[string]string{
		"EMAIL_USER": "agency@example.com",
		"EMAIL_PASS": "app-password",
	})
	if !configured.Configured() {
		t.Error("Expected configured mailer with user and pass")
	}
}

func TestSMTPMailerDefaults(t *testing.T) {
	mailer := NewSMTPMailer(map[string]string{
		"EMAIL_USER": "agency@example.com",
		"EMAIL_PASS": "app-password",
	})

	if mailer.host != "smtp.gmail.com" {
		t.Errorf("Expected default host smtp.gmail.com, got %s", mailer.host)
	}
	if mailer.port != "587" {
		t.Errorf("Expected default port 587, got %s", mailer.port)
	}
	if mailer.from != "agency@example.com" {
		t.Errorf("Expected from defaulting to user, got %s", mailer.from)
	}
}

func TestConfigReportHidesValues(t *testing.T) {
	mailer := NewSMTPMailer(map[string]string{
		"EMAIL_HOST": "smtp.example.com",
		"EMAIL_USER": "agency@example.com",
		"EMAIL_PASS": "app-password",
	})

	report := mailer.Report()
	if !report.Ready || !report.Host || !report.User || !report.Pass {
		t.Errorf("Expected all flags set, got %+v", report)
	}
	if report.Address != "smtp.example.com:587" {
		t.Errorf("Expected address host:port, got %s", report.Address)
	}

	empty := NewSMTPMailer(map[string]string{}).Report()
	if empty.Ready || empty.Address != "" {
		t.Errorf("Expected no address when unconfigured, got %+v", empty)
	}
}

func TestSendRequiresConfiguration(t *testing.T) {
	mailer := NewSMTPMailer(map[string]string{})

	err := mailer.Send([]string{"inbox@example.com"}, "subject", "<p>body</p>")
	if err == nil {
		t.Error("Expected error sending from unconfigured mailer")
	}
}
