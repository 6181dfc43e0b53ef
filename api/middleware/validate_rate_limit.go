package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	"github.com/shawndjkidd/aletrail-platform/pkg/config"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
)

type rateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// ValidateRateLimitPolicy throttles secret-code guessing. It counts attempts
// per client IP and per target brewery so neither a single client nor a
// brute-force spread across clients can walk the code space.
type ValidateRateLimitPolicy struct {
	window       time.Duration
	ipLimit      int
	breweryLimit int
}

// NewValidateRateLimitPolicy builds a policy with the supplied window and limits.
func NewValidateRateLimitPolicy(window time.Duration, ipLimit, breweryLimit int) ValidateRateLimitPolicy {
	return ValidateRateLimitPolicy{
		window:       window,
		ipLimit:      ipLimit,
		breweryLimit: breweryLimit,
	}
}

// PolicyFromConfig maps the env-driven settings onto a policy.
func PolicyFromConfig(cfg config.ValidateRateLimitConfig) ValidateRateLimitPolicy {
	return NewValidateRateLimitPolicy(cfg.Window, cfg.IPLimit, cfg.BreweryLimit)
}

func (p ValidateRateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.breweryLimit > 0)
}

// Scopes are namespaced by the store (at:rate_limit:<scope>), so the policy
// only names what is being counted.
func (p ValidateRateLimitPolicy) ipScope(ip string) string {
	if ip == "" {
		return ""
	}
	return fmt.Sprintf("validate:ip:%s", ip)
}

func (p ValidateRateLimitPolicy) breweryScope(breweryID string) string {
	if breweryID == "" {
		return ""
	}
	return fmt.Sprintf("validate:brewery:%s", breweryID)
}

// ValidateRateLimit enforces per-IP and per-brewery counters for the code
// validation endpoint.
func ValidateRateLimit(policy ValidateRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			if policy.ipLimit > 0 {
				if scope := policy.ipScope(ip); scope != "" {
					if allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(policy.ipLimit), policy.window); err != nil {
						responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
						return
					} else if !allowed {
						respondRateLimited(ctx, logg, w, policy, "ip", ip, count, policy.ipLimit)
						return
					}
				}
			}

			if policy.breweryLimit > 0 {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))

				breweryID := extractBreweryID(body)
				if scope := policy.breweryScope(breweryID); scope != "" {
					if allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(policy.breweryLimit), policy.window); err != nil {
						responses.WriteError(ctx, nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
						return
					} else if !allowed {
						respondRateLimited(ctx, logg, w, policy, "brewery", breweryID, count, policy.breweryLimit)
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondRateLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, policy ValidateRateLimitPolicy, scope, subject string, count int64, limit int) {
	if logg != nil {
		fields := map[string]any{
			"scope":          scope,
			"attempts":       count,
			"limit":          limit,
			"window_seconds": int(policy.window.Seconds()),
		}
		if subject != "" {
			fields[scope] = subject
		}
		logCtx := logg.WithFields(ctx, fields)
		logg.Warn(logCtx, "validate.rate_limit.blocked")
	}
	err := pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded")
	responses.WriteError(ctx, nil, w, err)
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func extractBreweryID(payload []byte) string {
	var body struct {
		BreweryID string `json:"breweryId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.BreweryID)
}
