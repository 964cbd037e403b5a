package middlewares

import (
	"context"
	"net/http"
	"strings"

	"aura-service/internal/pkg/constvars"
	"aura-service/internal/pkg/exceptions"
	"aura-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authentication parses the bearer token and stores the principal's identity,
// role and clinic affiliation on the request context.
func (m *Middlewares) Authentication(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get(constvars.HeaderAuthorization)
			if authHeader == "" {
				utils.BuildErrorResponse(logger, w, exceptions.ErrTokenMissing(nil))
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := utils.ParseUserJWT(token, m.InternalConfig.JWT.Secret)
			if err != nil {
				utils.BuildErrorResponse(logger, w, err)
				return
			}

			ctx := context.WithValue(r.Context(), constvars.ContextUserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, constvars.ContextUserRoleKey, claims.Role)
			ctx = context.WithValue(ctx, constvars.ContextClinicIDKey, claims.ClinicID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles gates an endpoint to the given roles. Must run after
// Authentication.
func (m *Middlewares) RequireRoles(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(constvars.ContextUserRoleKey).(string)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(logger, w, exceptions.ErrNotMatchRoleType(nil))
		})
	}
}
