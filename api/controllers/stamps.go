package controllers

import (
	"net/http"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	"github.com/shawndjkidd/aletrail-platform/internal/stamps"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
)

// UserStamps returns a user's collected stamps, newest first. An optional
// trail query narrows the list to one trail.
func UserStamps(svc stamps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stamp service unavailable"))
			return
		}

		userID, err := parseIDParam(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListForUser(r.Context(), userID, r.URL.Query().Get("trail"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := struct {
			Stamps []stamps.StampDTO `json:"stamps"`
			Total  int               `json:"total"`
		}{
			Stamps: list,
			Total:  len(list),
		}
		responses.WriteSuccess(w, resp)
	}
}
