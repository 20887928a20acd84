package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/errs"
	"github.com/brightforge/agency-site-backend/models"
)

type networkHandler struct {
	responder         Responder
	logger            zerolog.Logger
	collaborationRepo *database.NetworkCollaborationRepo
	partnerRepo       *database.NetworkPartnerRepo
}

func newNetworkHandler(collaborationRepo *database.NetworkCollaborationRepo, partnerRepo *database.NetworkPartnerRepo) networkHandler {
	logger := log.With().Str("handlerName", "networkHandler").Logger()

	return networkHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		collaborationRepo: collaborationRepo,
		partnerRepo:       partnerRepo,
	}
}

// CollaborationCollection represents the collaboration list response
type CollaborationCollection struct {
	Collaborations []*models.NetworkCollaboration `json:"collaborations"`
	Total          int                            `json:"total"`
}

// PartnerCollection represents the partner list response
type PartnerCollection struct {
	Partners []*models.NetworkPartner `json:"partners"`
	Total    int                      `json:"total"`
}

type collaborationUpdatePayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Highlight   *string `json:"highlight"`
	LogoURL     *string `json:"logo_url"`
	LinkURL     *string `json:"link_url"`
}

func (p collaborationUpdatePayload) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Highlight != nil {
		fields["highlight"] = *p.Highlight
	}
	if p.LogoURL != nil {
		fields["logo_url"] = *p.LogoURL
	}
	if p.LinkURL != nil {
		fields["link_url"] = *p.LinkURL
	}
	return fields
}

type partnerUpdatePayload struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	LogoURL *string `json:"logo_url"`
	LinkURL *string `json:"link_url"`
}

func (p partnerUpdatePayload) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Role != nil {
		fields["role"] = *p.Role
	}
	if p.LogoURL != nil {
		fields["logo_url"] = *p.LogoURL
	}
	if p.LinkURL != nil {
		fields["link_url"] = *p.LinkURL
	}
	return fields
}

func (h networkHandler) getAllCollaborations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collaborations, err := h.collaborationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find collaborations", "collaborations", err))
			return
		}

		h.responder.WriteJSON(w, CollaborationCollection{
			Collaborations: collaborations,
			Total:          len(collaborations),
		})
	}
}

func (h networkHandler) getCollaboration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collaborationID, err := parseIDParam(r, "collaborationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		collaboration, err := h.collaborationRepo.FindByID(collaborationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find collaboration", "collaboration", err))
			return
		}
		if collaboration == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("collaboration not found"))
			return
		}

		h.responder.WriteJSON(w, collaboration)
	}
}

func (h networkHandler) createCollaboration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var collaboration models.NetworkCollaboration
		if err := json.NewDecoder(r.Body).Decode(&collaboration); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode collaboration request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(collaboration.Name) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Name is required"))
			return
		}

		if err := h.collaborationRepo.Add(&collaboration); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create collaboration", "collaboration", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &collaboration)
	}
}

func (h networkHandler) updateCollaboration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collaborationID, err := parseIDParam(r, "collaborationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.collaborationRepo.FindByID(collaborationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find collaboration", "collaboration", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("collaboration not found"))
			return
		}

		var payload collaborationUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode collaboration request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.collaborationRepo.UpdateFields(collaborationID, payload.fields()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update collaboration", "collaboration", err))
			return
		}

		updated, err := h.collaborationRepo.FindByID(collaborationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated collaboration", "collaboration", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h networkHandler) deleteCollaboration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collaborationID, err := parseIDParam(r, "collaborationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.collaborationRepo.Delete(collaborationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete collaboration", "collaboration", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h networkHandler) getAllPartners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partners, err := h.partnerRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find partners", "partners", err))
			return
		}

		h.responder.WriteJSON(w, PartnerCollection{
			Partners: partners,
			Total:    len(partners),
		})
	}
}

func (h networkHandler) getPartner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerID, err := parseIDParam(r, "partnerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		partner, err := h.partnerRepo.FindByID(partnerID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find partner", "partner", err))
			return
		}
		if partner == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("partner not found"))
			return
		}

		h.responder.WriteJSON(w, partner)
	}
}

func (h networkHandler) createPartner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var partner models.NetworkPartner
		if err := json.NewDecoder(r.Body).Decode(&partner); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode partner request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(partner.Name) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Name is required"))
			return
		}

		if err := h.partnerRepo.Add(&partner); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create partner", "partner", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &partner)
	}
}

func (h networkHandler) updatePartner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerID, err := parseIDParam(r, "partnerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.partnerRepo.FindByID(partnerID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find partner", "partner", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("partner not found"))
			return
		}

		var payload partnerUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode partner request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.partnerRepo.UpdateFields(partnerID, payload.fields()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update partner", "partner", err))
			return
		}

		updated, err := h.partnerRepo.FindByID(partnerID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated partner", "partner", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h networkHandler) deletePartner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerID, err := parseIDParam(r, "partnerID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.partnerRepo.Delete(partnerID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete partner", "partner", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
