package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"horeca/internal/delivery/http/middleware"
	"horeca/internal/delivery/http/response"
	"horeca/internal/domain/entity"
	"horeca/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MerchantHandlerParams holds dependencies for MerchantHandler, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	MerchantUC usecase.MerchantUsecase
	Logger     *slog.Logger
}

// MerchantHandler holds dependencies for merchant-related handlers
type MerchantHandler struct {
	merchantUC usecase.MerchantUsecase
	logger     *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		merchantUC: params.MerchantUC,
		logger:     params.Logger,
	}
}

// CreateMerchantRequest represents the request body for creating a merchant
type CreateMerchantRequest struct {
	Name         string `json:"name" validate:"required"`
	LegalName    string `json:"legal_name"`
	KBONumber    string `json:"kbo_number"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	BusinessType string `json:"business_type"`
	Timezone     string `json:"timezone"`
	Currency     string `json:"currency"`

	// FirstLocation is the merchant's initial venue, created atomically with
	// the merchant itself.
	FirstLocation CreateLocationRequest `json:"first_location" validate:"required"`
}

// UpdateMerchantRequest represents the request body for updating a merchant
type UpdateMerchantRequest struct {
	Name         *string `json:"name,omitempty"`
	LegalName    *string `json:"legal_name,omitempty"`
	KBONumber    *string `json:"kbo_number,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	BusinessType *string `json:"business_type,omitempty"`
	Status       *string `json:"status,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
	Currency     *string `json:"currency,omitempty"`
}

// CreateMerchant handles creating a merchant with its first location.
func (h *MerchantHandler) CreateMerchant(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateMerchantInput{
		Name:          req.Name,
		LegalName:     req.LegalName,
		KBONumber:     req.KBONumber,
		ContactEmail:  req.ContactEmail,
		Phone:         req.Phone,
		Address:       req.Address,
		BusinessType:  entity.BusinessType(req.BusinessType),
		Timezone:      req.Timezone,
		Currency:      req.Currency,
		FirstLocation: req.FirstLocation.toInput(),
	}

	merchant, err := h.merchantUC.CreateMerchant(c.Request().Context(), actorID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, merchant, "Merchant created successfully")
}

// GetMerchant handles retrieving a single merchant.
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	merchant, err := h.merchantUC.GetMerchant(c.Request().Context(), actorID, merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchant, "Merchant retrieved successfully")
}

// ListMerchants handles paging through all merchants. Platform admin only.
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	merchants, err := h.merchantUC.ListMerchants(c.Request().Context(), actorID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchants, "Merchants retrieved successfully")
}

// SearchMerchants handles matching merchants by name. Platform admin only.
func (h *MerchantHandler) SearchMerchants(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	query := c.QueryParam("q")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	merchants, err := h.merchantUC.SearchMerchants(c.Request().Context(), actorID, query, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchants, "Merchants retrieved successfully")
}

// UpdateMerchant handles updating a merchant's profile.
func (h *MerchantHandler) UpdateMerchant(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	var req UpdateMerchantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateMerchantInput{
		Name:         req.Name,
		LegalName:    req.LegalName,
		KBONumber:    req.KBONumber,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
		Timezone:     req.Timezone,
		Currency:     req.Currency,
	}
	if req.BusinessType != nil {
		businessType := entity.BusinessType(*req.BusinessType)
		input.BusinessType = &businessType
	}
	if req.Status != nil {
		status := entity.MerchantStatus(*req.Status)
		input.Status = &status
	}

	merchant, err := h.merchantUC.UpdateMerchant(c.Request().Context(), actorID, merchantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, merchant, "Merchant updated successfully")
}

// DeleteMerchant handles deleting a merchant and everything it owns.
func (h *MerchantHandler) DeleteMerchant(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	if err := h.merchantUC.DeleteMerchant(c.Request().Context(), actorID, merchantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Merchant deleted successfully"}, "Merchant deleted successfully")
}
