package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/errs"
	"github.com/brightforge/agency-site-backend/models"
)

type serviceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceRepo *database.ServiceRepo
}

func newServiceHandler(serviceRepo *database.ServiceRepo) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceRepo: serviceRepo,
	}
}

// ServiceCollection represents the service list response
type ServiceCollection struct {
	Services []*models.Service `json:"services"`
	Total    int               `json:"total"`
}

type serviceUpdatePayload struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Features    *[]string `json:"features"`
	SortOrder   *int      `json:"sort_order"`
	IsActive    *bool     `json:"is_active"`
}

func (p serviceUpdatePayload) fields() map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Features != nil {
		fields["features"] = datatypes.NewJSONSlice(*p.Features)
	}
	if p.SortOrder != nil {
		fields["sort_order"] = *p.SortOrder
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}
	return fields
}

// getPublicServices serves the active services in display order
func (h serviceHandler) getPublicServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.serviceRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find services", "services", err))
			return
		}

		h.responder.WriteJSON(w, ServiceCollection{
			Services: services,
			Total:    len(services),
		})
	}
}

// getService retrieves a service by ID
func (h serviceHandler) getService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseIDParam(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		service, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find service", "service", err))
			return
		}
		if service == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		h.responder.WriteJSON(w, service)
	}
}

// createService creates a new service
func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// New services are active unless the caller says otherwise
		var payload struct {
			models.Service
			IsActive *bool `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode service request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		service := payload.Service
		service.IsActive = payload.IsActive == nil || *payload.IsActive

		if strings.TrimSpace(service.Title) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Title is required"))
			return
		}

		if err := h.serviceRepo.Add(&service); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create service", "service", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &service)
	}
}

// updateService updates a service, merging only the provided keys
func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseIDParam(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find service", "service", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		var payload serviceUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode service request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.serviceRepo.UpdateFields(serviceID, payload.fields()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update service", "service", err))
			return
		}

		updated, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated service", "service", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteService deletes a service by ID
func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseIDParam(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.serviceRepo.Delete(serviceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete service", "service", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
