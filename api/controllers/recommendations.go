package controllers

import (
	"net/http"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	"github.com/shawndjkidd/aletrail-platform/internal/recommendations"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
)

// UserRecommendations returns up to three unvisited breweries ranked by
// flavor overlap with the user's past ratings.
func UserRecommendations(svc recommendations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "recommendation service unavailable"))
			return
		}

		userID, err := parseIDParam(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ForUser(r.Context(), userID, r.URL.Query().Get("trail"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
