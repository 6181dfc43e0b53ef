package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// APIMetrics records counters for the trail API's write paths.
type APIMetrics struct {
	validations *prometheus.CounterVec
	stamps      prometheus.Counter
	ratings     prometheus.Counter
}

// NewAPIMetrics registers the API metrics on the provided registerer.
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	if reg == nil {
		return &APIMetrics{}
	}
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "code_validation_attempts",
		Help: "Secret code validation attempts by outcome.",
	}, []string{"outcome"})
	stamps := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stamps_collected",
		Help: "Stamps persisted after a successful validation.",
	})
	ratings := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ratings_submitted",
		Help: "Ratings created or updated.",
	})
	reg.MustRegister(validations, stamps, ratings)
	return &APIMetrics{
		validations: validations,
		stamps:      stamps,
		ratings:     ratings,
	}
}

// IncValidation increments the validation counter for the given outcome.
func (m *APIMetrics) IncValidation(outcome string) {
	if m == nil || m.validations == nil {
		return
	}
	m.validations.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncStampCollected increments the stamp counter.
func (m *APIMetrics) IncStampCollected() {
	if m == nil || m.stamps == nil {
		return
	}
	m.stamps.Inc()
}

// IncRatingSubmitted increments the rating counter.
func (m *APIMetrics) IncRatingSubmitted() {
	if m == nil || m.ratings == nil {
		return
	}
	m.ratings.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
