package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flexmobile/shop/internal/application/services"
	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/ports"
)

// UserIDContextKey is where the session middleware stores the
// authenticated user's id on the request context
const UserIDContextKey = "user_id"

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	auth   *services.AuthService
	logger *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// Login handles admin login behind the access-code gate
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.Error("Login failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	return c.JSON(http.StatusOK, resp)
}

// Logout handles admin logout
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, _ := c.Get(UserIDContextKey).(string)
	h.auth.Logout(c.Request().Context(), userID)

	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}
