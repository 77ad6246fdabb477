package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/inkwell-api/inkwell/internal/api/shared"
	"github.com/inkwell-api/inkwell/internal/service/auth"
)

// AuthMiddleware gates routes behind bearer-token authentication and,
// optionally, the admin role.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates an AuthMiddleware around the JWT service.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth validates the bearer token from the authorization header
// and attaches the decoded identity to the request context. A missing
// header short-circuits with 401, a header that isn't a bearer token
// with 400, and a failing verification with 401 — all before any
// business logic runs.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			shared.RespondWithErrors(w, r, http.StatusUnauthorized,
				[]string{"You must be logged in to access this route."})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithErrors(w, r, http.StatusBadRequest,
				[]string{"Invalid JWT token."})
			return
		}

		identity, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			message := "Invalid JWT token."
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "The token has expired."
			}
			shared.RespondWithErrors(w, r, http.StatusUnauthorized, []string{message})
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects authenticated callers that lack the admin flag.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromRequest(r)
		if !ok || !identity.IsAdmin {
			shared.RespondWithErrors(w, r, http.StatusUnauthorized,
				[]string{"You must be an administrator to access this route."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromRequest extracts the authenticated identity placed in the
// context by RequireAuth.
func IdentityFromRequest(r *http.Request) (*auth.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(*auth.Identity)
	return identity, ok
}
