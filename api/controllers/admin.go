package controllers

import (
	"net/http"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	"github.com/shawndjkidd/aletrail-platform/api/validators"
	"github.com/shawndjkidd/aletrail-platform/internal/analytics"
	"github.com/shawndjkidd/aletrail-platform/internal/trails"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
)

const (
	defaultReportDays = 30
	maxReportDays     = 365
)

// AdminTrails lists every trail, active or not.
func AdminTrails(svc trails.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trail service unavailable"))
			return
		}

		list, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// AdminReport returns the activity report for a trail over the requested
// window, defaulting to the last 30 days.
func AdminReport(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		trailID, err := parseIDParam(r, "trailId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		days, err := validators.ParseQueryInt(r, "days", defaultReportDays, 1, maxReportDays)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Report(r.Context(), trailID, days)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
