package middleware

import (
	"net/http"
	"strings"

	"github.com/vuapod/orderstats-backend/api/responses"
	pkgAuth "github.com/vuapod/orderstats-backend/pkg/auth"
	"github.com/vuapod/orderstats-backend/pkg/config"
	pkgerrors "github.com/vuapod/orderstats-backend/pkg/errors"
	"github.com/vuapod/orderstats-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the claims.
// Tokens are self-contained; expiry is enforced at parse time.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithUsername(r.Context(), claims.Username)
			if logg != nil {
				ctx = logg.WithField(ctx, "username", claims.Username)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
