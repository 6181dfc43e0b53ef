package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	"github.com/shawndjkidd/aletrail-platform/api/validators"
	"github.com/shawndjkidd/aletrail-platform/internal/breweries"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
)

// BreweryList returns the active breweries for a trail, ordered by position.
func BreweryList(svc breweries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "brewery service unavailable"))
			return
		}

		subdomain, err := validators.RequireQuery(r, "trail")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListByTrail(r.Context(), subdomain)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// BreweryDetail returns a single active brewery by ID.
func BreweryDetail(svc breweries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "brewery service unavailable"))
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "breweryId"))
		if idParam == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "brewery id is required"))
			return
		}

		id, err := uuid.Parse(idParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid brewery id"))
			return
		}

		brewery, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, brewery)
	}
}
