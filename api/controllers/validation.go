package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	"github.com/shawndjkidd/aletrail-platform/api/validators"
	"github.com/shawndjkidd/aletrail-platform/internal/validation"
	"github.com/shawndjkidd/aletrail-platform/pkg/enums"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
)

type validateCodeRequest struct {
	BreweryID string  `json:"breweryId"`
	Code      string  `json:"code"`
	UserID    *string `json:"userId,omitempty" validate:"omitempty,uuid"`
	Method    string  `json:"method,omitempty"`
}

type validateCodeResponse struct {
	Valid        bool   `json:"valid"`
	Message      string `json:"message"`
	StampCreated bool   `json:"stampCreated"`
	BreweryID    string `json:"breweryId"`
}

// ValidateCode checks a submitted secret code against the brewery and, for a
// known user, collects the stamp.
func ValidateCode(svc validation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "validation service unavailable"))
			return
		}

		var payload validateCodeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if strings.TrimSpace(payload.BreweryID) == "" || strings.TrimSpace(payload.Code) == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Brewery ID and code required"))
			return
		}

		breweryID, err := uuid.Parse(payload.BreweryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid brewery id"))
			return
		}

		req := validation.Request{
			BreweryID: breweryID,
			Code:      payload.Code,
		}
		if payload.UserID != nil {
			userID, err := uuid.Parse(*payload.UserID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
				return
			}
			req.UserID = &userID
		}
		if payload.Method != "" {
			if method, err := enums.ParseValidationMethod(payload.Method); err == nil {
				req.Method = method
			}
		}

		result, err := svc.ValidateCode(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, validateCodeResponse{
			Valid:        result.Valid,
			Message:      result.Message,
			StampCreated: result.StampCreated,
			BreweryID:    result.BreweryID.String(),
		})
	}
}
