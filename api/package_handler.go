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

type packageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	packageRepo *database.PackageRepo
}

func newPackageHandler(packageRepo *database.PackageRepo) packageHandler {
	logger := log.With().Str("handlerName", "packageHandler").Logger()

	return packageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		packageRepo: packageRepo,
	}
}

// PackageCollection represents the package list response
type PackageCollection struct {
	Packages []*models.Package `json:"packages"`
	Total    int               `json:"total"`
}

type packageUpdatePayload struct {
	Name          *string                  `json:"name"`
	Price         *string                  `json:"price"`
	Description   *string                  `json:"description"`
	Features      *[]models.PackageFeature `json:"features"`
	SortOrder     *int                     `json:"sort_order"`
	IsActive      *bool                    `json:"is_active"`
	IsRecommended *bool                    `json:"is_recommended"`
}

func (p packageUpdatePayload) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Price != nil {
		fields["price"] = *p.Price
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
	if p.IsRecommended != nil {
		fields["is_recommended"] = *p.IsRecommended
	}
	return fields
}

// getPublicPackages serves active packages in display order
func (h packageHandler) getPublicPackages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := h.packageRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find packages", "packages", err))
			return
		}

		h.responder.WriteJSON(w, PackageCollection{
			Packages: packages,
			Total:    len(packages),
		})
	}
}

// getAllPackages serves every package for the admin panel
func (h packageHandler) getAllPackages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := h.packageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find packages", "packages", err))
			return
		}

		h.responder.WriteJSON(w, PackageCollection{
			Packages: packages,
			Total:    len(packages),
		})
	}
}

// getPackage retrieves a package by ID
func (h packageHandler) getPackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packageID, err := parseIDParam(r, "packageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		pkg, err := h.packageRepo.FindByID(packageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find package", "package", err))
			return
		}
		if pkg == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("package not found"))
			return
		}

		h.responder.WriteJSON(w, pkg)
	}
}

// createPackage creates a new package
func (h packageHandler) createPackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// New packages are active unless the caller says otherwise
		var payload struct {
			models.Package
			IsActive *bool `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode package request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		pkg := payload.Package
		pkg.IsActive = payload.IsActive == nil || *payload.IsActive

		if strings.TrimSpace(pkg.Name) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Name is required"))
			return
		}
		if strings.TrimSpace(pkg.Price) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Price is required"))
			return
		}

		if err := h.packageRepo.Add(&pkg); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create package", "package", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, &pkg)
	}
}

// updatePackage updates a package, merging only the provided keys
func (h packageHandler) updatePackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packageID, err := parseIDParam(r, "packageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.packageRepo.FindByID(packageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find package", "package", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("package not found"))
			return
		}

		var payload packageUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode package request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.packageRepo.UpdateFields(packageID, payload.fields()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update package", "package", err))
			return
		}

		updated, err := h.packageRepo.FindByID(packageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated package", "package", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deletePackage deletes a package by ID
func (h packageHandler) deletePackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packageID, err := parseIDParam(r, "packageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.packageRepo.Delete(packageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete package", "package", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
