package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shawndjkidd/aletrail-platform/api/controllers"
	"github.com/shawndjkidd/aletrail-platform/api/middleware"
	"github.com/shawndjkidd/aletrail-platform/internal/analytics"
	"github.com/shawndjkidd/aletrail-platform/internal/breweries"
	"github.com/shawndjkidd/aletrail-platform/internal/ratings"
	"github.com/shawndjkidd/aletrail-platform/internal/recommendations"
	"github.com/shawndjkidd/aletrail-platform/internal/stamps"
	"github.com/shawndjkidd/aletrail-platform/internal/trails"
	"github.com/shawndjkidd/aletrail-platform/internal/validation"
	"github.com/shawndjkidd/aletrail-platform/pkg/config"
	"github.com/shawndjkidd/aletrail-platform/pkg/db"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
	"github.com/shawndjkidd/aletrail-platform/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	trailService trails.Service,
	breweryService breweries.Service,
	validationService validation.Service,
	stampService stamps.Service,
	ratingService ratings.Service,
	recommendationService recommendations.Service,
	analyticsService analytics.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	validatePolicy := middleware.PolicyFromConfig(cfg.ValidateRate)

	var redisPinger redis.Pinger
	if redisClient != nil {
		redisPinger = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/trails", func(r chi.Router) {
			r.Get("/{subdomain}", controllers.TrailDetail(trailService, logg))
			r.Get("/{subdomain}/stats", controllers.TrailStats(trailService, logg))
		})

		r.Route("/breweries", func(r chi.Router) {
			r.Get("/", controllers.BreweryList(breweryService, logg))
			r.Get("/{breweryId}", controllers.BreweryDetail(breweryService, logg))
		})

		r.Route("/validate", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if redisClient != nil {
					r.Use(middleware.ValidateRateLimit(validatePolicy, redisClient, logg))
				}
				r.Post("/", controllers.ValidateCode(validationService, logg))
			})
			r.Get("/stamps/{userId}", controllers.UserStamps(stampService, logg))
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Post("/", controllers.RatingSubmit(ratingService, logg))
			r.Get("/user/{userId}", controllers.UserRatings(ratingService, logg))
			r.Get("/brewery/{breweryId}", controllers.BreweryRatings(ratingService, logg))
		})

		r.Get("/recommendations/{userId}", controllers.UserRecommendations(recommendationService, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminKey(cfg.Admin.Key, logg))
			r.Get("/trails", controllers.AdminTrails(trailService, logg))
			r.Get("/analytics/{trailId}", controllers.AdminReport(analyticsService, logg))
		})
	})

	return r
}
