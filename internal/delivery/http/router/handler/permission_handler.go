package handler

import (
	"log/slog"
	"net/http"

	"horeca/internal/delivery/http/middleware"
	"horeca/internal/delivery/http/response"
	"horeca/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PermissionHandlerParams holds dependencies for PermissionHandler, injected by Fx.
type PermissionHandlerParams struct {
	fx.In

	PermissionUC usecase.PermissionUsecase
	Logger       *slog.Logger
}

// PermissionHandler serves the client-facing permission projection.
type PermissionHandler struct {
	permissionUC usecase.PermissionUsecase
	logger       *slog.Logger
}

// NewPermissionHandler is the constructor for PermissionHandler
func NewPermissionHandler(params PermissionHandlerParams) *PermissionHandler {
	return &PermissionHandler{
		permissionUC: params.PermissionUC,
		logger:       params.Logger,
	}
}

// GetMyPermissions returns the authenticated user's permission snapshot.
// The snapshot drives conditional rendering only; every mutating endpoint
// re-validates server-side.
func (h *PermissionHandler) GetMyPermissions(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	permissions, err := h.permissionUC.GetUserPermissions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, permissions, "Permissions retrieved successfully")
}
