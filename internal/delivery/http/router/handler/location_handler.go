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

// maxAssetSize bounds a single logo/banner upload.
const maxAssetSize = 5 << 20 // 5 MiB

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// CreateLocationRequest represents the request body for opening a location
type CreateLocationRequest struct {
	Name         string                   `json:"name" validate:"required"`
	Address      string                   `json:"address"`
	PostalCode   string                   `json:"postal_code"`
	City         string                   `json:"city"`
	Latitude     *float64                 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64                 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Phone        string                   `json:"phone"`
	Email        string                   `json:"email" validate:"omitempty,email"`
	Status       string                   `json:"status"`
	OpeningHours map[string]string        `json:"opening_hours,omitempty"`
	Settings     *entity.LocationSettings `json:"settings,omitempty"`
}

func (r CreateLocationRequest) toInput() usecase.CreateLocationInput {
	return usecase.CreateLocationInput{
		Name:         r.Name,
		Address:      r.Address,
		PostalCode:   r.PostalCode,
		City:         r.City,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Phone:        r.Phone,
		Email:        r.Email,
		Status:       entity.LocationStatus(r.Status),
		OpeningHours: r.OpeningHours,
		Settings:     r.Settings,
	}
}

// UpdateLocationRequest represents the request body for updating a location
type UpdateLocationRequest struct {
	Name         *string                  `json:"name,omitempty"`
	Address      *string                  `json:"address,omitempty"`
	PostalCode   *string                  `json:"postal_code,omitempty"`
	City         *string                  `json:"city,omitempty"`
	Latitude     *float64                 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64                 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Phone        *string                  `json:"phone,omitempty"`
	Email        *string                  `json:"email,omitempty" validate:"omitempty,email"`
	Status       *string                  `json:"status,omitempty"`
	OpeningHours map[string]string        `json:"opening_hours,omitempty"`
	Settings     *entity.LocationSettings `json:"settings,omitempty"`
}

// ListLocations handles retrieving the merchant's locations visible to the actor.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	locations, err := h.locationUC.ListLocations(c.Request().Context(), actorID, merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// GetLocation handles retrieving a single location.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	locationID, err := uuid.Parse(c.Param("locationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), actorID, locationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// AddLocation handles opening a new location for a merchant.
func (h *LocationHandler) AddLocation(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	merchantID, err := uuid.Parse(c.Param("merchantID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := req.toInput()

	location, err := h.locationUC.AddLocation(c.Request().Context(), actorID, merchantID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// UpdateLocation handles updating a location.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	locationID, err := uuid.Parse(c.Param("locationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Name:         req.Name,
		Address:      req.Address,
		PostalCode:   req.PostalCode,
		City:         req.City,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Phone:        req.Phone,
		Email:        req.Email,
		OpeningHours: req.OpeningHours,
		Settings:     req.Settings,
	}
	if req.Status != nil {
		status := entity.LocationStatus(*req.Status)
		input.Status = &status
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), actorID, locationID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// DeleteLocation handles closing a location permanently.
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	locationID, err := uuid.Parse(c.Param("locationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), actorID, locationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted successfully"}, "Location deleted successfully")
}

// UploadLocationAsset handles a multipart logo/banner upload for a location.
// Form fields: "kind" ("logo" or "banner") and "file" (the image).
func (h *LocationHandler) UploadLocationAsset(c echo.Context) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	locationID, err := uuid.Parse(c.Param("locationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	kind := usecase.AssetKind(c.FormValue("kind"))
	if !kind.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Asset kind must be 'logo' or 'banner'")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing asset file")
	}
	if fileHeader.Size > maxAssetSize {
		return response.BadRequest(c, "ASSET_TOO_LARGE", "Asset exceeds the maximum allowed size")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded asset")
	}
	defer file.Close()

	url, err := h.locationUC.UploadLocationAsset(c.Request().Context(), actorID, locationID, &usecase.UploadAssetInput{
		Kind:        kind,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Asset uploaded successfully")
}
