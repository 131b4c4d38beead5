package handler

import (
	"log/slog"
	"net/http"
	"time"

	"aquatrace/internal/delivery/http/response"
	"aquatrace/internal/domain/entity"
	"aquatrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QualityTestHandlerParams holds dependencies for QualityTestHandler, injected by Fx.
type QualityTestHandlerParams struct {
	fx.In

	QualityTestUC usecase.QualityTestUsecase
	Logger        *slog.Logger
}

// QualityTestHandler holds dependencies for quality-test handlers
type QualityTestHandler struct {
	qualityTestUC usecase.QualityTestUsecase
	logger        *slog.Logger
}

// NewQualityTestHandler is the constructor for QualityTestHandler
func NewQualityTestHandler(params QualityTestHandlerParams) *QualityTestHandler {
	return &QualityTestHandler{
		qualityTestUC: params.QualityTestUC,
		logger:        params.Logger,
	}
}

// QualityTestRequest represents the request body for recording or updating a quality test
type QualityTestRequest struct {
	OrganizationID      string              `json:"organizationId" validate:"required"`
	TestingPointIDs     []string            `json:"testingPointIds"`
	TestDate            time.Time           `json:"testDate" validate:"required"`
	TestType            string              `json:"testType"`
	TestedByUserID      string              `json:"testedByUserId"`
	WeatherConditions   string              `json:"weatherConditions"`
	WaterTemperature    float64             `json:"waterTemperature"`
	GeneralObservations string              `json:"generalObservations"`
	Results             []entity.TestResult `json:"results"`
}

// GetAll handles listing quality tests, optionally scoped to one organization
func (h *QualityTestHandler) GetAll(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID := c.QueryParam("organizationId")
	if organizationID != "" {
		tests, err := h.qualityTestUC.GetAllByOrganization(ctx, organizationID)
		if err != nil {
			return handleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, tests, "Quality tests retrieved successfully")
	}

	tests, err := h.qualityTestUC.GetAll(ctx)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tests, "Quality tests retrieved successfully")
}

// GetByID handles retrieving one quality test
func (h *QualityTestHandler) GetByID(c echo.Context) error {
	ctx := c.Request().Context()

	organizationID := c.QueryParam("organizationId")
	if organizationID != "" {
		test, err := h.qualityTestUC.GetByIDScoped(ctx, c.Param("id"), organizationID)
		if err != nil {
			return handleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, test, "Quality test retrieved successfully")
	}

	test, err := h.qualityTestUC.GetByID(ctx, c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, test, "Quality test retrieved successfully")
}

// Create handles recording a quality test
func (h *QualityTestHandler) Create(c echo.Context) error {
	var req QualityTestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quality test input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	test, err := h.qualityTestUC.Create(c.Request().Context(), &usecase.CreateQualityTestInput{
		OrganizationID:      req.OrganizationID,
		TestingPointIDs:     req.TestingPointIDs,
		TestDate:            req.TestDate,
		TestType:            req.TestType,
		TestedByUserID:      req.TestedByUserID,
		WeatherConditions:   req.WeatherConditions,
		WaterTemperature:    req.WaterTemperature,
		GeneralObservations: req.GeneralObservations,
		Results:             req.Results,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, test, "Quality test created successfully")
}

// Update handles overwriting a quality test
func (h *QualityTestHandler) Update(c echo.Context) error {
	var req QualityTestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quality test input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	test, err := h.qualityTestUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateQualityTestInput{
		OrganizationID:      req.OrganizationID,
		TestingPointIDs:     req.TestingPointIDs,
		TestDate:            req.TestDate,
		TestType:            req.TestType,
		TestedByUserID:      req.TestedByUserID,
		WeatherConditions:   req.WeatherConditions,
		WaterTemperature:    req.WaterTemperature,
		GeneralObservations: req.GeneralObservations,
		Results:             req.Results,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, test, "Quality test updated successfully")
}

// Delete handles the logical deletion of a quality test
func (h *QualityTestHandler) Delete(c echo.Context) error {
	if err := h.qualityTestUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Quality test deleted successfully")
}

// DeletePhysically handles the permanent removal of a quality test
func (h *QualityTestHandler) DeletePhysically(c echo.Context) error {
	if err := h.qualityTestUC.DeletePhysically(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Quality test permanently deleted")
}

// Restore handles clearing the tombstone of a deleted quality test
func (h *QualityTestHandler) Restore(c echo.Context) error {
	test, err := h.qualityTestUC.Restore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, test, "Quality test restored successfully")
}
