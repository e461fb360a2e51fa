package middleware

import (
	"net/http"
	"strings"

	"horeca/internal/domain/service"
	"horeca/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key under which Authenticate stores
// the authenticated user's ID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authz    usecase.AuthorizationUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authz usecase.AuthorizationUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authz: authz}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// RequirePlatformAdmin gates a route group to platform personnel holding the
// super_admin override. It must be used AFTER the Authenticate middleware.
// The resolver fails closed, so an internal error reads as "not an admin".
func (m *AuthMiddleware) RequirePlatformAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := CurrentUserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		}

		if !m.authz.IsPlatformAdmin(c.Request().Context(), userID) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: platform administrator required"})
		}

		return next(c)
	}
}

// CurrentUserID extracts the authenticated user's ID set by Authenticate.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
