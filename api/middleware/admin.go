package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/shawndjkidd/aletrail-platform/api/responses"
	pkgerrors "github.com/shawndjkidd/aletrail-platform/pkg/errors"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKey guards the admin surface with a shared-secret header check.
func AdminKey(expected string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			supplied := strings.TrimSpace(r.Header.Get(adminKeyHeader))
			if expected == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(expected)) != 1 {
				if logg != nil {
					logg.Warn(ctx, "admin.key_rejected")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeForbidden, "unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
