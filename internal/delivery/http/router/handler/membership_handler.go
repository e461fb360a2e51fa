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

// MembershipHandlerParams holds dependencies for MembershipHandler, injected by Fx.
type MembershipHandlerParams struct {
	fx.In

	MembershipUC usecase.MembershipUsecase
	Logger       *slog.Logger
}

// MembershipHandler holds dependencies for staff membership handlers
type MembershipHandler struct {
	membershipUC usecase.MembershipUsecase
	logger       *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler
func NewMembershipHandler(params MembershipHandlerParams) *MembershipHandler {
	return &MembershipHandler{
		membershipUC: params.MembershipUC,
		logger:       params.Logger,
	}
}

// UpdateMembershipRequest represents the request body for updating a member
type UpdateMembershipRequest struct {
	Role           *string         `json:"role,omitempty" validate:"omitempty,oneof=owner admin manager"`
	LocationAccess *[]uuid.UUID    `json:"location_access,omitempty"`
	Permissions    map[string]bool `json:"permissions,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// ListMembers handles retrieving every membership of a merchant.
func (h *MembershipHandler) ListMembers(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	members, err := h.membershipUC.ListMembers(c.Request().Context(), actorID, merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members, "Members retrieved successfully")
}

// GetMyMemberships handles retrieving the actor's own memberships.
func (h *MembershipHandler) GetMyMemberships(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	memberships, err := h.membershipUC.GetMyMemberships(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, memberships, "Memberships retrieved successfully")
}

// UpdateMembership handles changing a member's role, access set or status.
func (h *MembershipHandler) UpdateMembership(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	membershipID, err := uuid.Parse(c.Param("membershipID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid membership ID")
	}

	var req UpdateMembershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid membership input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateMembershipInput{
		LocationAccess: req.LocationAccess,
		Permissions:    req.Permissions,
		IsActive:       req.IsActive,
	}
	if req.Role != nil {
		role := entity.MerchantRole(*req.Role)
		input.Role = &role
	}

	membership, err := h.membershipUC.UpdateMembership(c.Request().Context(), actorID, merchantID, membershipID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, membership, "Membership updated successfully")
}

// RemoveMembership handles removing a member from a merchant.
func (h *MembershipHandler) RemoveMembership(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	membershipID, err := uuid.Parse(c.Param("membershipID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid membership ID")
	}

	if err := h.membershipUC.RemoveMembership(c.Request().Context(), actorID, merchantID, membershipID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Membership removed successfully"}, "Membership removed successfully")
}
