package handler

import (
	"log/slog"
	"net/http"

	"horeca/internal/delivery/http/middleware"
	"horeca/internal/delivery/http/response"
	"horeca/internal/domain/entity"
	"horeca/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InvitationHandlerParams holds dependencies for InvitationHandler, injected by Fx.
type InvitationHandlerParams struct {
	fx.In

	InvitationUC usecase.InvitationUsecase
	Logger       *slog.Logger
}

// InvitationHandler holds dependencies for invitation-related handlers
type InvitationHandler struct {
	invitationUC usecase.InvitationUsecase
	logger       *slog.Logger
}

// NewInvitationHandler is the constructor for InvitationHandler
func NewInvitationHandler(params InvitationHandlerParams) *InvitationHandler {
	return &InvitationHandler{
		invitationUC: params.InvitationUC,
		logger:       params.Logger,
	}
}

// CreateInvitationRequest represents the request body for inviting a member
type CreateInvitationRequest struct {
	Email          string      `json:"email" validate:"required,email"`
	Role           string      `json:"role" validate:"required,oneof=owner admin manager"`
	LocationAccess []uuid.UUID `json:"location_access,omitempty"`
}

// AcceptInvitationRequest represents the request body for accepting an invitation
type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// CreateInvitation handles issuing a membership invitation.
func (h *InvitationHandler) CreateInvitation(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	var req CreateInvitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	invitation, err := h.invitationUC.CreateInvitation(c.Request().Context(), actorID, merchantID, &usecase.CreateInvitationInput{
		Email:          req.Email,
		Role:           entity.MerchantRole(req.Role),
		LocationAccess: req.LocationAccess,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, invitation, "Invitation created successfully")
}

// ListInvitations handles retrieving a merchant's invitations, newest first.
func (h *InvitationHandler) ListInvitations(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	invitations, err := h.invitationUC.ListInvitations(c.Request().Context(), actorID, merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invitations, "Invitations retrieved successfully")
}

// GetInvitationQR renders the invitation's acceptance link as a PNG QR code.
func (h *InvitationHandler) GetInvitationQR(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	invitationID, err := uuid.Parse(c.Param("invitationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invitation ID")
	}

	png, err := h.invitationUC.GetInvitationQR(c.Request().Context(), actorID, merchantID, invitationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AcceptInvitation handles consuming an invitation token, creating the membership.
func (h *InvitationHandler) AcceptInvitation(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AcceptInvitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	membership, err := h.invitationUC.AcceptInvitation(c.Request().Context(), userID, req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, membership, "Invitation accepted successfully")
}
