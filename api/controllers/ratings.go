package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	"github.com/shawndjkidd/aletrail-platform/api/validators"
	"github.com/shawndjkidd/aletrail-platform/internal/ratings"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
	"github.com/shawndjkidd/aletrail-platform/pkg/pagination"
)

type submitRatingRequest struct {
	UserID         string   `json:"userId"`
	BreweryID      string   `json:"breweryId"`
	BeerID         *string  `json:"beerId,omitempty" validate:"omitempty,uuid"`
	Rating         int      `json:"rating"`
	Review         *string  `json:"review,omitempty"`
	FlavorsEnjoyed []string `json:"flavorsEnjoyed,omitempty"`
}

func (req submitRatingRequest) toInput() (ratings.SubmitInput, error) {
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.BreweryID) == "" {
		return ratings.SubmitInput{}, pkgerrors.New(pkgerrors.CodeValidation, "userId, breweryId, and rating required")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return ratings.SubmitInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
	}
	breweryID, err := uuid.Parse(req.BreweryID)
	if err != nil {
		return ratings.SubmitInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid brewery id")
	}

	input := ratings.SubmitInput{
		UserID:         userID,
		BreweryID:      breweryID,
		Rating:         req.Rating,
		Review:         req.Review,
		FlavorsEnjoyed: req.FlavorsEnjoyed,
	}
	if req.BeerID != nil {
		beerID, err := uuid.Parse(*req.BeerID)
		if err != nil {
			return ratings.SubmitInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid beer id")
		}
		input.BeerID = &beerID
	}
	return input, nil
}

// RatingSubmit upserts a visitor's rating for a brewery or beer.
func RatingSubmit(svc ratings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rating service unavailable"))
			return
		}

		var payload submitRatingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rating, err := svc.Submit(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, rating)
	}
}

// UserRatings returns a user's rating history, newest first, cursor paginated.
func UserRatings(svc ratings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rating service unavailable"))
			return
		}

		userID, err := parseIDParam(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListByUser(r.Context(), userID, pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// BreweryRatings returns a brewery's ratings with the average and the 1..5
// distribution.
func BreweryRatings(svc ratings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rating service unavailable"))
			return
		}

		breweryID, err := parseIDParam(r, "breweryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.BreweryRatings(r.Context(), breweryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, name+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name)
	}
	return id, nil
}
