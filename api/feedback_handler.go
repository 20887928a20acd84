package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/errs"
	"github.com/brightforge/agency-site-backend/models"
)

type feedbackHandler struct {
	responder    Responder
	logger       zerolog.Logger
	feedbackRepo *database.FeedbackRepo
}

func newFeedbackHandler(feedbackRepo *database.FeedbackRepo) feedbackHandler {
	logger := log.With().Str("handlerName", "feedbackHandler").Logger()

	return feedbackHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		feedbackRepo: feedbackRepo,
	}
}

// FeedbackCollection represents the feedback list response
type FeedbackCollection struct {
	Feedback []*models.Feedback `json:"feedback"`
	Total    int                `json:"total"`
}

type feedbackCreatePayload struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Rating     *int       `json:"rating"`
	Message    string     `json:"message"`
	ProjectID  *uuid.UUID `json:"project_id"`
	IsApproved *bool      `json:"is_approved"`
}

type feedbackUpdatePayload struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Rating     *int    `json:"rating"`
	Message    *string `json:"message"`
	IsApproved *bool   `json:"is_approved"`
}

func (p feedbackUpdatePayload) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Rating != nil {
		fields["rating"] = *p.Rating
	}
	if p.Message != nil {
		fields["message"] = *p.Message
	}
	if p.IsApproved != nil {
		fields["is_approved"] = *p.IsApproved
	}
	return fields
}

// getApprovedFeedback serves the public testimonial listing
func (h feedbackHandler) getApprovedFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.feedbackRepo.FindApproved()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feedback", "feedback", err))
			return
		}

		h.responder.WriteJSON(w, FeedbackCollection{
			Feedback: entries,
			Total:    len(entries),
		})
	}
}

// getAllFeedback serves the admin listing, approved or not
func (h feedbackHandler) getAllFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.feedbackRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feedback", "feedback", err))
			return
		}

		h.responder.WriteJSON(w, FeedbackCollection{
			Feedback: entries,
			Total:    len(entries),
		})
	}
}

// createFeedback accepts a public feedback submission
func (h feedbackHandler) createFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload feedbackCreatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode feedback request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Rating == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Rating is required"))
			return
		}
		if *payload.Rating < 1 || *payload.Rating > 5 {
			h.responder.WriteError(w, errs.NewBadRequestError("Rating must be between 1 and 5"))
			return
		}
		if strings.TrimSpace(payload.Message) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Message is required"))
			return
		}

		entry := models.Feedback{
			Name:       payload.Name,
			Email:      payload.Email,
			Rating:     *payload.Rating,
			Message:    payload.Message,
			ProjectID:  payload.ProjectID,
			IsApproved: true,
		}
		if payload.IsApproved != nil {
			entry.IsApproved = *payload.IsApproved
		}

		if err := h.feedbackRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create feedback", "feedback", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &entry)
	}
}

// updateFeedback updates a feedback entry (admin; typically the approval flag)
func (h feedbackHandler) updateFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedbackID, err := parseIDParam(r, "feedbackID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.feedbackRepo.FindByID(feedbackID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feedback", "feedback", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("feedback not found"))
			return
		}

		var payload feedbackUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode feedback request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Rating != nil && (*payload.Rating < 1 || *payload.Rating > 5) {
			h.responder.WriteError(w, errs.NewBadRequestError("Rating must be between 1 and 5"))
			return
		}

		if err := h.feedbackRepo.UpdateFields(feedbackID, payload.fields()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update feedback", "feedback", err))
			return
		}

		updated, err := h.feedbackRepo.FindByID(feedbackID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated feedback", "feedback", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteFeedback deletes a feedback entry by ID
func (h feedbackHandler) deleteFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedbackID, err := parseIDParam(r, "feedbackID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.feedbackRepo.Delete(feedbackID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete feedback", "feedback", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
