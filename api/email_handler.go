package api

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightforge/agency-site-backend/config"
	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/errs"
	"github.com/brightforge/agency-site-backend/models"
	"github.com/brightforge/agency-site-backend/services"
)

type emailHandler struct {
	responder   Responder
	logger      zerolog.Logger
	mailer      services.Mailer
	submissions *database.ProjectSubmissionRepo
	db          database.Database
	recipient   string
}

func newEmailHandler(
	mailer services.Mailer,
	submissions *database.ProjectSubmissionRepo,
	db database.Database,
	c map[string]string,
) emailHandler {
	logger := log.With().Str("handlerName", "emailHandler").Logger()

	return emailHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		mailer:      mailer,
		submissions: submissions,
		db:          db,
		recipient:   config.GetString(c, "EMAIL_TO", config.GetString(c, "EMAIL_USER", "")),
	}
}

// projectEmailPayload is the contact-form body. Only name and email are
// required; the rest is relayed as-is.
type projectEmailPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	ProjectType string `json:"project_type"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Description string `json:"description"`
}

func (p projectEmailPayload) htmlBody() string {
	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
	}

	var b strings.Builder
	b.WriteString("<h2>New Project Inquiry</h2>")
	b.WriteString(row("Name", p.Name))
	b.WriteString(row("Email", p.Email))
	b.WriteString(row("Company", p.Company))
	b.WriteString(row("Project Type", p.ProjectType))
	b.WriteString(row("Budget", p.Budget))
	b.WriteString(row("Timeline", p.Timeline))
	if p.Description != "" {
		b.WriteString("<h3>Description</h3><p>" + html.EscapeString(p.Description) + "</p>")
	}
	return b.String()
}

// sendProjectEmail relays a contact-form inquiry to the agency inbox. The
// submission is persisted first when a database is available so a mail
// outage doesn't lose the lead.
func (h emailHandler) sendProjectEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectEmailPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(payload.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if strings.TrimSpace(payload.Email) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}

		if h.db.Configured() {
			submission := &models.ProjectSubmission{
				Name:        payload.Name,
				Email:       payload.Email,
				Company:     payload.Company,
				ProjectType: payload.ProjectType,
				Budget:      payload.Budget,
				Timeline:    payload.Timeline,
				Description: payload.Description,
			}
			if err := h.submissions.Add(submission); err != nil {
				h.logger.Error().Err(err).Msg("Failed to persist project submission")
			}
		}

		if !h.mailer.Configured() || h.recipient == "" {
			h.responder.WriteError(w, errs.NewServiceUnavailableError(
				"Email relay is not configured", "EMAIL_NOT_CONFIGURED"))
			return
		}

		subject := "New project inquiry from " + payload.Name
		if err := h.mailer.Send([]string{h.recipient}, subject, payload.htmlBody()); err != nil {
			h.logger.Error().Err(err).Msg("Failed to send project email")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to send email", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Your inquiry has been sent",
		})
	}
}

// configReporter is implemented by mailers that can describe their own
// configuration without exposing credentials.
type configReporter interface {
	Report() services.ConfigReport
}

// testEmailConfig reports which parts of the email configuration are
// present. Values are never echoed back.
func (h emailHandler) testEmailConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"success": true,
			"ready":   h.mailer.Configured(),
		}
		if reporter, ok := h.mailer.(configReporter); ok {
			response["config"] = reporter.Report()
		}
		h.responder.WriteJSON(w, response)
	}
}
