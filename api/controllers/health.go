package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	"github.com/shawndjkidd/aletrail-platform/pkg/config"
	"github.com/shawndjkidd/aletrail-platform/pkg/db"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
	"github.com/shawndjkidd/aletrail-platform/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-AleTrail-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the datastores before reporting ready. A failed ping
// surfaces as a dependency error so orchestrators keep the pod out of
// rotation.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-AleTrail-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not ready"))
				return
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
