package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/errs"
	"github.com/brightforge/agency-site-backend/models"
)

type teamHandler struct {
	responder      Responder
	logger         zerolog.Logger
	teamMemberRepo *database.TeamMemberRepo
}

func newTeamHandler(teamMemberRepo *database.TeamMemberRepo) teamHandler {
	logger := log.With().Str("handlerName", "teamHandler").Logger()

	return teamHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		teamMemberRepo: teamMemberRepo,
	}
}

// TeamCollection represents the team list response
type TeamCollection struct {
	Members []*models.TeamMember `json:"members"`
	Total   int                  `json:"total"`
}

type teamMemberUpdatePayload struct {
	Name      *string              `json:"name"`
	Role      *string              `json:"role"`
	AvatarURL *string              `json:"avatar_url"`
	Bio       *string              `json:"bio"`
	Email     *string              `json:"email"`
	LinkedIn  *string              `json:"linkedin"`
	Status    *models.MemberStatus `json:"status"`
}

func (p teamMemberUpdatePayload) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Role != nil {
		fields["role"] = *p.Role
	}
	if p.AvatarURL != nil {
		fields["avatar_url"] = *p.AvatarURL
	}
	if p.Bio != nil {
		fields["bio"] = *p.Bio
	}
	if p.Email != nil {
		if *p.Email == "" {
			fields["email"] = nil
		} else {
			fields["email"] = *p.Email
		}
	}
	if p.LinkedIn != nil {
		fields["linkedin"] = *p.LinkedIn
	}
	if p.Status != nil {
		fields["status"] = string(models.NormalizeMemberStatus(string(*p.Status)))
	}
	return fields
}

// getAllMembers retrieves all team members
// @Summary Get all team members
// @Tags Team
// @Produce json
// @Success 200 {object} TeamCollection "List of team members"
// @Router /api/team [get]
func (h teamHandler) getAllMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := h.teamMemberRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team members", "team members", err))
			return
		}

		h.responder.WriteJSON(w, TeamCollection{
			Members: members,
			Total:   len(members),
		})
	}
}

// getMember retrieves a team member by ID
func (h teamHandler) getMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseIDParam(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member, err := h.teamMemberRepo.FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team member", "team member", err))
			return
		}
		if member == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("team member not found"))
			return
		}

		h.responder.WriteJSON(w, member)
	}
}

// createMember creates a new team member. When an email is supplied, an
// explicit pre-check names the member who already owns it; the unique index
// is the backstop for races.
// @Summary Create team member
// @Tags Team
// @Accept json
// @Produce json
// @Param member body models.TeamMember true "Team member data"
// @Success 201 {object} models.TeamMember "Created team member"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing name/role or duplicate email"
// @Router /api/team [post]
func (h teamHandler) createMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var member models.TeamMember
		if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode team member request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(member.Name) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Name is required"))
			return
		}
		if strings.TrimSpace(member.Role) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Role is required"))
			return
		}

		if member.Email != nil && *member.Email != "" {
			existing, err := h.teamMemberRepo.FindByEmail(*member.Email)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("check email", "team member", err))
				return
			}
			if existing != nil {
				h.responder.WriteError(w, errs.NewBadRequestError(
					fmt.Sprintf("A team member with this email already exists: %s", existing.Name)))
				return
			}
		}

		if err := h.teamMemberRepo.Add(&member); err != nil {
			if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "23505") ||
				strings.Contains(err.Error(), "UNIQUE constraint") {
				h.responder.WriteError(w, errs.NewBadRequestError(
					"A team member with this email already exists"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create team member", "team member", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, member)
	}
}

// updateMember updates a team member, merging only the provided keys
func (h teamHandler) updateMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseIDParam(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.teamMemberRepo.FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team member", "team member", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("team member not found"))
			return
		}

		var payload teamMemberUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode team member request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Email != nil && *payload.Email != "" {
			owner, err := h.teamMemberRepo.FindByEmail(*payload.Email)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("check email", "team member", err))
				return
			}
			if owner != nil && owner.ID != memberID {
				h.responder.WriteError(w, errs.NewBadRequestError(
					fmt.Sprintf("A team member with this email already exists: %s", owner.Name)))
				return
			}
		}

		if err := h.teamMemberRepo.UpdateFields(memberID, payload.fields()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update team member", "team member", err))
			return
		}

		updated, err := h.teamMemberRepo.FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated team member", "team member", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteMember deletes a team member by ID
func (h teamHandler) deleteMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseIDParam(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.teamMemberRepo.Delete(memberID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete team member", "team member", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
