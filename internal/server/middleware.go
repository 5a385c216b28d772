package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/prasetia/todo-auth-backend/internal/auth"
)

type contextKey string

// claimsContextKey is where requireAuth stores the verified session claims.
const claimsContextKey contextKey = "sessionClaims"

// requireAuth gates protected routes. Three outcomes: no or malformed bearer
// header → 401, present but unverifiable token → 403, valid → claims go into
// the request context and the chain continues.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "token not found")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			respondError(w, http.StatusUnauthorized, "token not found")
			return
		}

		claims, err := s.tokens.Verify(tokenString)
		if err != nil {
			respondError(w, http.StatusForbidden, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFromContext returns the session claims requireAuth stored, or nil if
// the request never went through the middleware.
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}
