package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/jwt"
)

// Context keys for the authenticated caller
const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
)

// AuthMiddleware validates bearer tokens on protected routes
type AuthMiddleware struct {
	tokens *jwt.Manager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the JWT token and stores the caller identity
// on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"error": "Missing authorization token",
			})
		}

		claims, err := m.tokens.ValidateAccessToken(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"error": "Invalid or expired token",
			})
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, entities.UserRole(claims.Role))
		return next(c)
	}
}

// RequireRole checks that the authenticated caller has one of the roles
func (m *AuthMiddleware) RequireRole(roles ...entities.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(UserRoleKey).(entities.UserRole)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error": "User not authenticated",
				})
			}
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"error": "Insufficient permissions",
			})
		}
	}
}

// UserIDFromContext returns the authenticated user id, if any
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(UserIDKey).(uuid.UUID)
	return id, ok
}

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
