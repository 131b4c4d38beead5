package handler

import (
	"log/slog"
	"net/http"
	"time"

	"aquatrace/internal/delivery/http/response"
	"aquatrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DailyRecordHandlerParams holds dependencies for DailyRecordHandler, injected by Fx.
type DailyRecordHandlerParams struct {
	fx.In

	DailyRecordUC usecase.DailyRecordUsecase
	Logger        *slog.Logger
}

// DailyRecordHandler holds dependencies for daily-record handlers
type DailyRecordHandler struct {
	dailyRecordUC usecase.DailyRecordUsecase
	logger        *slog.Logger
}

// NewDailyRecordHandler is the constructor for DailyRecordHandler
func NewDailyRecordHandler(params DailyRecordHandlerParams) *DailyRecordHandler {
	return &DailyRecordHandler{
		dailyRecordUC: params.DailyRecordUC,
		logger:        params.Logger,
	}
}

// CreateDailyRecordRequest represents the request body for recording a daily measurement
type CreateDailyRecordRequest struct {
	OrganizationID   string    `json:"organizationId" validate:"required"`
	RecordType       string    `json:"recordType" validate:"required"`
	TestingPointIDs  []string  `json:"testingPointIds"`
	RecordDate       time.Time `json:"recordDate" validate:"required"`
	Level            float64   `json:"level"`
	Acceptable       bool      `json:"acceptable"`
	ActionRequired   bool      `json:"actionRequired"`
	RecordedByUserID string    `json:"recordedByUserId"`
	Observations     string    `json:"observations"`
	Amount           float64   `json:"amount"`
}

// UpdateDailyRecordRequest represents the request body for updating a daily record
type UpdateDailyRecordRequest struct {
	OrganizationID   string    `json:"organizationId" validate:"required"`
	TestingPointIDs  []string  `json:"testingPointIds"`
	RecordDate       time.Time `json:"recordDate" validate:"required"`
	Level            float64   `json:"level"`
	Acceptable       bool      `json:"acceptable"`
	ActionRequired   bool      `json:"actionRequired"`
	RecordedByUserID string    `json:"recordedByUserId"`
	Observations     string    `json:"observations"`
	Amount           float64   `json:"amount"`
}

// GetAll handles listing daily records
func (h *DailyRecordHandler) GetAll(c echo.Context) error {
	records, err := h.dailyRecordUC.GetAll(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Daily records retrieved successfully")
}

// GetByID handles retrieving one daily record
func (h *DailyRecordHandler) GetByID(c echo.Context) error {
	record, err := h.dailyRecordUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Daily record retrieved successfully")
}

// Create handles recording a daily measurement
func (h *DailyRecordHandler) Create(c echo.Context) error {
	var req CreateDailyRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid daily record input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.dailyRecordUC.Create(c.Request().Context(), &usecase.CreateDailyRecordInput{
		OrganizationID:   req.OrganizationID,
		RecordType:       req.RecordType,
		TestingPointIDs:  req.TestingPointIDs,
		RecordDate:       req.RecordDate,
		Level:            req.Level,
		Acceptable:       req.Acceptable,
		ActionRequired:   req.ActionRequired,
		RecordedByUserID: req.RecordedByUserID,
		Observations:     req.Observations,
		Amount:           req.Amount,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "Daily record created successfully")
}

// Update handles overwriting a daily record
func (h *DailyRecordHandler) Update(c echo.Context) error {
	var req UpdateDailyRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid daily record input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.dailyRecordUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateDailyRecordInput{
		OrganizationID:   req.OrganizationID,
		TestingPointIDs:  req.TestingPointIDs,
		RecordDate:       req.RecordDate,
		Level:            req.Level,
		Acceptable:       req.Acceptable,
		ActionRequired:   req.ActionRequired,
		RecordedByUserID: req.RecordedByUserID,
		Observations:     req.Observations,
		Amount:           req.Amount,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Daily record updated successfully")
}

// Delete handles the logical deletion of a daily record
func (h *DailyRecordHandler) Delete(c echo.Context) error {
	if err := h.dailyRecordUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Daily record deleted successfully")
}

// DeletePhysically handles the permanent removal of a daily record
func (h *DailyRecordHandler) DeletePhysically(c echo.Context) error {
	if err := h.dailyRecordUC.DeletePhysically(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Daily record permanently deleted")
}

// Restore handles clearing the tombstone of a deleted daily record
func (h *DailyRecordHandler) Restore(c echo.Context) error {
	record, err := h.dailyRecordUC.Restore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Daily record restored successfully")
}
