package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/flexmobile/shop/internal/adapters/http"
)

// headerAdminCode carries the admin access code as an alternative to
// the ?code= query parameter
const headerAdminCode = "X-Admin-Code"

// requireAccessCode gates the admin login surface behind the shared
// access code. The code is read fresh from the config collection on
// every request so a rotation takes effect immediately. A mismatch
// presents as 404, hiding the surface from unauthorized probes.
func (s *Server) requireAccessCode(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		code := c.QueryParam("code")
		if code == "" {
			code = c.Request().Header.Get(headerAdminCode)
		}

		cfg, err := s.configRepo.Get(c.Request().Context())
		if err != nil {
			s.logger.Error("Failed to load site config for access check", "error", err)
			return echo.ErrNotFound
		}

		if code == "" || cfg.AdminAccessCode == "" ||
			subtle.ConstantTimeCompare([]byte(code), []byte(cfg.AdminAccessCode)) != 1 {
			s.logger.LogSecurityEvent("admin_access_code_rejected", "", c.RealIP(), map[string]interface{}{
				"endpoint": c.Request().URL.Path,
			})
			return echo.ErrNotFound
		}

		return next(c)
	}
}

// requireSession admits only requests carrying a valid session token.
// The token binds the session to a user id, which is placed on the
// request context for handlers.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
		}

		userID, err := s.sessions.Verify(token)
		if err != nil {
			s.logger.LogSecurityEvent("invalid_session", "", c.RealIP(), map[string]interface{}{
				"error": err.Error(),
			})
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid session")
		}

		c.Set(httpHandlers.UserIDContextKey, userID)

		return next(c)
	}
}
