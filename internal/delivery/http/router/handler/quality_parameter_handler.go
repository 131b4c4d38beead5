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

// QualityParameterHandlerParams holds dependencies for QualityParameterHandler, injected by Fx.
type QualityParameterHandlerParams struct {
	fx.In

	QualityParameterUC usecase.QualityParameterUsecase
	Logger             *slog.Logger
}

// QualityParameterHandler holds dependencies for quality-parameter handlers
type QualityParameterHandler struct {
	qualityParameterUC usecase.QualityParameterUsecase
	logger             *slog.Logger
}

// NewQualityParameterHandler is the constructor for QualityParameterHandler
func NewQualityParameterHandler(params QualityParameterHandlerParams) *QualityParameterHandler {
	return &QualityParameterHandler{
		qualityParameterUC: params.QualityParameterUC,
		logger:             params.Logger,
	}
}

// CreateQualityParameterRequest represents the request body for registering a quality parameter
type CreateQualityParameterRequest struct {
	OrganizationID string              `json:"organizationId" validate:"required"`
	ParameterName  string              `json:"parameterName" validate:"required"`
	UnitOfMeasure  string              `json:"unitOfMeasure"`
	MinAcceptable  float64             `json:"minAcceptable"`
	MaxAcceptable  float64             `json:"maxAcceptable"`
	OptimalRange   entity.OptimalRange `json:"optimalRange"`
	TestFrequency  string              `json:"testFrequency"`
}

// UpdateQualityParameterRequest represents the request body for updating a quality parameter
type UpdateQualityParameterRequest struct {
	ParameterName string              `json:"parameterName" validate:"required"`
	UnitOfMeasure string              `json:"unitOfMeasure"`
	MinAcceptable float64             `json:"minAcceptable"`
	MaxAcceptable float64             `json:"maxAcceptable"`
	OptimalRange  entity.OptimalRange `json:"optimalRange"`
	TestFrequency string              `json:"testFrequency"`
}

// GetAll handles listing every quality parameter
func (h *QualityParameterHandler) GetAll(c echo.Context) error {
	params, err := h.qualityParameterUC.GetAll(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, params, "Quality parameters retrieved successfully")
}

// GetAllActive handles listing the parameters currently monitored
func (h *QualityParameterHandler) GetAllActive(c echo.Context) error {
	params, err := h.qualityParameterUC.GetAllActive(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, params, "Active quality parameters retrieved successfully")
}

// GetAllInactive handles listing the parameters no longer monitored
func (h *QualityParameterHandler) GetAllInactive(c echo.Context) error {
	params, err := h.qualityParameterUC.GetAllInactive(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, params, "Inactive quality parameters retrieved successfully")
}

// GetByID handles retrieving one quality parameter
func (h *QualityParameterHandler) GetByID(c echo.Context) error {
	param, err := h.qualityParameterUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, param, "Quality parameter retrieved successfully")
}

// Create handles registering a quality parameter
func (h *QualityParameterHandler) Create(c echo.Context) error {
	var req CreateQualityParameterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quality parameter input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateQualityParameterInput{
		OrganizationID: req.OrganizationID,
		ParameterName:  req.ParameterName,
		UnitOfMeasure:  req.UnitOfMeasure,
		MinAcceptable:  req.MinAcceptable,
		MaxAcceptable:  req.MaxAcceptable,
		OptimalRange:   req.OptimalRange,
		TestFrequency:  req.TestFrequency,
	}

	param, err := h.qualityParameterUC.Create(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, param, "Quality parameter created successfully")
}

// Update handles updating a quality parameter
func (h *QualityParameterHandler) Update(c echo.Context) error {
	var req UpdateQualityParameterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quality parameter input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateQualityParameterInput{
		ParameterName: req.ParameterName,
		UnitOfMeasure: req.UnitOfMeasure,
		MinAcceptable: req.MinAcceptable,
		MaxAcceptable: req.MaxAcceptable,
		OptimalRange:  req.OptimalRange,
		TestFrequency: req.TestFrequency,
	}

	param, err := h.qualityParameterUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, param, "Quality parameter updated successfully")
}

// Delete handles removing a quality parameter
func (h *QualityParameterHandler) Delete(c echo.Context) error {
	if err := h.qualityParameterUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Quality parameter deleted successfully")
}

// Activate handles resuming monitoring of a parameter
func (h *QualityParameterHandler) Activate(c echo.Context) error {
	param, err := h.qualityParameterUC.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, param, "Quality parameter activated successfully")
}

// Deactivate handles suspending monitoring of a parameter
func (h *QualityParameterHandler) Deactivate(c echo.Context) error {
	param, err := h.qualityParameterUC.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, param, "Quality parameter deactivated successfully")
}
