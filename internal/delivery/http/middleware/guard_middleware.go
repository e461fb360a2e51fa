package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"horeca/config"
	"horeca/internal/domain/constants"
	"horeca/internal/domain/service"
	"horeca/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultLoginURL        = "/login"
	defaultGuardCookieName = "console_pa"
	defaultGuardCookieTTL  = 5 * time.Minute

	// sessionCookieName carries the access token for browser page requests,
	// where no Authorization header is available.
	sessionCookieName = "access_token"
)

// GuardMiddleware intercepts page requests before rendering. Dashboard paths
// require a session; admin paths additionally require the platform-admin
// override. Denied requests are redirected to the login page.
//
// Both the unauthenticated and the authenticated-but-not-admin cases redirect
// to the same login destination. Distinguishing them is a known improvement,
// deliberately not made here.
type GuardMiddleware struct {
	tokenSvc service.TokenService
	authz    usecase.AuthorizationUsecase
	signer   service.GuardCookieSigner
	logger   *slog.Logger

	loginURL   string
	cookieName string
	cookieTTL  time.Duration
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(
	tokenSvc service.TokenService,
	authz usecase.AuthorizationUsecase,
	signer service.GuardCookieSigner,
	cfg *config.Config,
	logger *slog.Logger,
) *GuardMiddleware {
	m := &GuardMiddleware{
		tokenSvc:   tokenSvc,
		authz:      authz,
		signer:     signer,
		logger:     logger,
		loginURL:   defaultLoginURL,
		cookieName: defaultGuardCookieName,
		cookieTTL:  defaultGuardCookieTTL,
	}

	if guard := cfg.Guard; guard != nil {
		if guard.LoginURL != "" {
			m.loginURL = guard.LoginURL
		}
		if guard.CookieName != "" {
			m.cookieName = guard.CookieName
		}
		if guard.CookieTTL > 0 {
			m.cookieTTL = guard.CookieTTL
		}
	}

	return m
}

// Guard applies the route-guard state machine to matching path prefixes.
// Paths outside the guarded prefixes pass through untouched.
func (m *GuardMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		needsAdmin := hasPathPrefix(path, constants.AdminPathPrefix)
		needsSession := needsAdmin || hasPathPrefix(path, constants.DashboardPathPrefix)
		if !needsSession {
			return next(c)
		}

		userID, ok := m.sessionUserID(c)
		if !ok {
			return c.Redirect(http.StatusFound, m.loginURL)
		}
		c.Set(ContextKeyUserID, userID)

		if !needsAdmin {
			return next(c)
		}

		if m.isPlatformAdmin(c, userID) {
			return next(c)
		}

		return c.Redirect(http.StatusFound, m.loginURL)
	}
}

// sessionUserID resolves the requesting identity from the Authorization
// header or, for plain browser navigation, the access token cookie.
func (m *GuardMiddleware) sessionUserID(c echo.Context) (uuid.UUID, bool) {
	tokenString := ""
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	} else if cookie, err := c.Cookie(sessionCookieName); err == nil {
		tokenString = cookie.Value
	}

	if tokenString == "" {
		return uuid.Nil, false
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// isPlatformAdmin answers the admin-prefix check, advisory cookie first.
// The cookie is a pure performance cache: signed server-side, trusted only
// until its own expiry, then re-validated through the resolver.
func (m *GuardMiddleware) isPlatformAdmin(c echo.Context, userID uuid.UUID) bool {
	if cookie, err := c.Cookie(m.cookieName); err == nil {
		verdict, verifyErr := m.signer.Verify(cookie.Value)
		if verifyErr == nil && verdict.UserID == userID {
			return verdict.PlatformAdmin
		}
	}

	// Cookie missing, stale or for another identity: ask the resolver and
	// re-issue the advisory cookie with the fresh verdict.
	isAdmin := m.authz.IsPlatformAdmin(c.Request().Context(), userID)

	token, err := m.signer.Sign(userID, isAdmin)
	if err != nil {
		m.logger.Warn("failed to sign guard cookie", slog.Any("error", err))

		return isAdmin
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return isAdmin
}

func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}

	// "/admin" and "/admin/..." match, "/administration" does not.
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
