package handler

import (
	"log/slog"
	"net/http"

	"aquatrace/internal/delivery/http/response"
	"aquatrace/internal/domain/entity"
	"aquatrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestingPointHandlerParams holds dependencies for TestingPointHandler, injected by Fx.
type TestingPointHandlerParams struct {
	fx.In

	TestingPointUC usecase.TestingPointUsecase
	Logger         *slog.Logger
}

// TestingPointHandler holds dependencies for sampling-point handlers
type TestingPointHandler struct {
	testingPointUC usecase.TestingPointUsecase
	logger         *slog.Logger
}

// NewTestingPointHandler is the constructor for TestingPointHandler
func NewTestingPointHandler(params TestingPointHandlerParams) *TestingPointHandler {
	return &TestingPointHandler{
		testingPointUC: params.TestingPointUC,
		logger:         params.Logger,
	}
}

// CreateTestingPointRequest represents the request body for registering a sampling point
type CreateTestingPointRequest struct {
	OrganizationID      string             `json:"organizationId" validate:"required"`
	PointName           string             `json:"pointName" validate:"required"`
	PointType           string             `json:"pointType"`
	ZoneID              string             `json:"zoneId"`
	LocationDescription string             `json:"locationDescription"`
	Street              string             `json:"street"`
	Coordinates         entity.Coordinates `json:"coordinates"`
}

// UpdateTestingPointRequest represents the request body for updating a sampling point
type UpdateTestingPointRequest struct {
	PointName           string             `json:"pointName" validate:"required"`
	PointType           string             `json:"pointType"`
	ZoneID              string             `json:"zoneId"`
	LocationDescription string             `json:"locationDescription"`
	Street              string             `json:"street"`
	Coordinates         entity.Coordinates `json:"coordinates"`
}

// GetAll handles listing every sampling point
func (h *TestingPointHandler) GetAll(c echo.Context) error {
	points, err := h.testingPointUC.GetAll(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points, "Testing points retrieved successfully")
}

// GetAllActive handles listing the sampling points in service
func (h *TestingPointHandler) GetAllActive(c echo.Context) error {
	points, err := h.testingPointUC.GetAllActive(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points, "Active testing points retrieved successfully")
}

// GetAllInactive handles listing the sampling points out of service
func (h *TestingPointHandler) GetAllInactive(c echo.Context) error {
	points, err := h.testingPointUC.GetAllInactive(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points, "Inactive testing points retrieved successfully")
}

// GetByID handles retrieving one sampling point
func (h *TestingPointHandler) GetByID(c echo.Context) error {
	point, err := h.testingPointUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, point, "Testing point retrieved successfully")
}

// Create handles registering a sampling point
func (h *TestingPointHandler) Create(c echo.Context) error {
	var req CreateTestingPointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid testing point input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateTestingPointInput{
		OrganizationID:      req.OrganizationID,
		PointName:           req.PointName,
		PointType:           req.PointType,
		ZoneID:              req.ZoneID,
		LocationDescription: req.LocationDescription,
		Street:              req.Street,
		Coordinates:         req.Coordinates,
	}

	point, err := h.testingPointUC.Create(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, point, "Testing point created successfully")
}

// Update handles updating a sampling point
func (h *TestingPointHandler) Update(c echo.Context) error {
	var req UpdateTestingPointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid testing point input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateTestingPointInput{
		PointName:           req.PointName,
		PointType:           req.PointType,
		ZoneID:              req.ZoneID,
		LocationDescription: req.LocationDescription,
		Street:              req.Street,
		Coordinates:         req.Coordinates,
	}

	point, err := h.testingPointUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, point, "Testing point updated successfully")
}

// Delete handles removing a sampling point
func (h *TestingPointHandler) Delete(c echo.Context) error {
	if err := h.testingPointUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Testing point deleted successfully")
}

// Activate handles putting a sampling point back in service
func (h *TestingPointHandler) Activate(c echo.Context) error {
	point, err := h.testingPointUC.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, point, "Testing point activated successfully")
}

// Deactivate handles taking a sampling point out of service
func (h *TestingPointHandler) Deactivate(c echo.Context) error {
	point, err := h.testingPointUC.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, point, "Testing point deactivated successfully")
}
