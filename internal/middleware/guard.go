package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/janidumadawa/GameStore/internal/models"
	"github.com/janidumadawa/GameStore/internal/services"

	"github.com/rs/zerolog"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

// Capability is the access level a route declares. The guard checks it
// uniformly before the handler runs.
type Capability string

const (
	CapabilityPublic        Capability = "public"
	CapabilityAuthenticated Capability = "authenticated"
	CapabilityAdmin         Capability = "admin"
)

type TokenValidator interface {
	ValidateToken(token string) (*services.Claims, error)
}

// Guard authenticates bearer tokens and enforces per-route role policy.
type Guard struct {
	tokens TokenValidator
	logger zerolog.Logger
}

func NewGuard(tokens TokenValidator, logger zerolog.Logger) *Guard {
	return &Guard{
		tokens: tokens,
		logger: logger,
	}
}

// Protect wraps a handler with the declared capability. Public routes pass
// through untouched; everything else requires a valid bearer token, and
// admin routes additionally require the admin role. The decoded identity is
// attached to the request context for the handler.
func (g *Guard) Protect(capability Capability, next http.HandlerFunc) http.HandlerFunc {
	if capability == CapabilityPublic {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "unauthenticated", "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondWithError(w, http.StatusUnauthorized, "unauthenticated", "Invalid authorization header format")
			return
		}

		claims, err := g.tokens.ValidateToken(parts[1])
		if err != nil {
			g.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Invalid token")
			respondWithError(w, http.StatusUnauthorized, "unauthenticated", "Invalid or expired token")
			return
		}

		if capability == CapabilityAdmin && claims.Role != string(models.RoleAdmin) {
			respondWithError(w, http.StatusForbidden, "forbidden", "Admin only access")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserRoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func GetUserID(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	return userID, ok
}

func GetUserRole(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(UserRoleKey).(string)
	return role, ok
}
