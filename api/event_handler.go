package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/errs"
	"github.com/brightforge/agency-site-backend/models"
)

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	eventRepo *database.EventRepo
}

func newEventHandler(eventRepo *database.EventRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()

	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		eventRepo: eventRepo,
	}
}

// EventCollection represents the event list response
type EventCollection struct {
	Events []*models.Event `json:"events"`
	Total  int             `json:"total"`
}

type eventUpdatePayload struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	EventDate    *time.Time          `json:"event_date"`
	Location     *string             `json:"location"`
	ImageURL     *string             `json:"image_url"`
	Organizers   *[]string           `json:"organizers"`
	Participants *[]string           `json:"participants"`
	Tags         *[]string           `json:"tags"`
	Status       *models.EventStatus `json:"status"`
	Featured     *bool               `json:"featured"`
}

// fields builds the update map. Organizers and participants share one tagged
// column, so touching either requires the current value of the other half.
func (p eventUpdatePayload) fields(existing *models.Event) map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.EventDate != nil {
		fields["event_date"] = *p.EventDate
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.Organizers != nil || p.Participants != nil {
		organizers := existing.OrganizerNames()
		participants := existing.Participants()
		if p.Organizers != nil {
			organizers = *p.Organizers
		}
		if p.Participants != nil {
			participants = *p.Participants
		}
		merged := models.Event{}
		merged.SetOrganizers(organizers, participants)
		fields["organizers"] = merged.Organizers
	}
	if p.Tags != nil {
		fields["tags"] = datatypes.NewJSONSlice(*p.Tags)
	}
	if p.Status != nil {
		fields["status"] = string(models.NormalizeEventStatus(string(*p.Status)))
	}
	if p.Featured != nil {
		fields["featured"] = *p.Featured
	}
	return fields
}

// getPublicEvents serves the public event listing
func (h eventHandler) getPublicEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := h.eventRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find events", "events", err))
			return
		}

		h.responder.WriteJSON(w, EventCollection{
			Events: events,
			Total:  len(events),
		})
	}
}

// getAllEvents serves the admin event listing
func (h eventHandler) getAllEvents() http.HandlerFunc {
	return h.getPublicEvents()
}

// getEvent retrieves an event by ID
func (h eventHandler) getEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		event, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find event", "event", err))
			return
		}
		if event == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("event not found"))
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// createEvent creates a new event
func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event models.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(event.Title) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Title is required"))
			return
		}
		if event.EventDate.IsZero() {
			h.responder.WriteError(w, errs.NewBadRequestError("Event date is required"))
			return
		}

		if err := h.eventRepo.Add(&event); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create event", "event", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &event)
	}
}

// updateEvent updates an event, merging only the provided keys
func (h eventHandler) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find event", "event", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("event not found"))
			return
		}

		var payload eventUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode event request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Title != nil && strings.TrimSpace(*payload.Title) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Title is required"))
			return
		}

		if err := h.eventRepo.UpdateFields(eventID, payload.fields(existing)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update event", "event", err))
			return
		}

		updated, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated event", "event", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteEvent deletes an event by ID
func (h eventHandler) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, err := parseIDParam(r, "eventID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.eventRepo.Delete(eventID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete event", "event", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
