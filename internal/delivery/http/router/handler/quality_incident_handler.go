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

// QualityIncidentHandlerParams holds dependencies for QualityIncidentHandler, injected by Fx.
type QualityIncidentHandlerParams struct {
	fx.In

	QualityIncidentUC usecase.QualityIncidentUsecase
	Logger            *slog.Logger
}

// QualityIncidentHandler holds dependencies for quality-incident handlers
type QualityIncidentHandler struct {
	qualityIncidentUC usecase.QualityIncidentUsecase
	logger            *slog.Logger
}

// NewQualityIncidentHandler is the constructor for QualityIncidentHandler
func NewQualityIncidentHandler(params QualityIncidentHandlerParams) *QualityIncidentHandler {
	return &QualityIncidentHandler{
		qualityIncidentUC: params.QualityIncidentUC,
		logger:            params.Logger,
	}
}

// CreateQualityIncidentRequest represents the request body for reporting an incident
type CreateQualityIncidentRequest struct {
	OrganizationID   string    `json:"organizationId" validate:"required"`
	IncidentType     string    `json:"incidentType" validate:"required"`
	TestingPointID   string    `json:"testingPointId"`
	DetectionDate    time.Time `json:"detectionDate" validate:"required"`
	Severity         string    `json:"severity"`
	Description      string    `json:"description"`
	AffectedZones    []string  `json:"affectedZones"`
	ImmediateActions string    `json:"immediateActions"`
	ReportedByUserID string    `json:"reportedByUserId"`

	CorrectiveActions string     `json:"correctiveActions"`
	Resolved          bool       `json:"resolved"`
	ResolutionDate    *time.Time `json:"resolutionDate"`
	ResolvedByUserID  string     `json:"resolvedByUserId"`
}

// UpdateQualityIncidentRequest represents the request body for updating an incident
type UpdateQualityIncidentRequest struct {
	IncidentType      string     `json:"incidentType" validate:"required"`
	TestingPointID    string     `json:"testingPointId"`
	DetectionDate     time.Time  `json:"detectionDate" validate:"required"`
	Severity          string     `json:"severity"`
	Description       string     `json:"description"`
	AffectedZones     []string   `json:"affectedZones"`
	ImmediateActions  string     `json:"immediateActions"`
	CorrectiveActions string     `json:"correctiveActions"`
	Resolved          bool       `json:"resolved"`
	ResolutionDate    *time.Time `json:"resolutionDate"`
	ResolvedByUserID  string     `json:"resolvedByUserId"`
}

// GetAll handles listing quality incidents
func (h *QualityIncidentHandler) GetAll(c echo.Context) error {
	incidents, err := h.qualityIncidentUC.GetAll(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incidents, "Quality incidents retrieved successfully")
}

// GetResolved handles listing the incidents already closed
func (h *QualityIncidentHandler) GetResolved(c echo.Context) error {
	incidents, err := h.qualityIncidentUC.GetResolved(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incidents, "Resolved quality incidents retrieved successfully")
}

// GetUnresolved handles listing the incidents still open
func (h *QualityIncidentHandler) GetUnresolved(c echo.Context) error {
	incidents, err := h.qualityIncidentUC.GetUnresolved(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incidents, "Unresolved quality incidents retrieved successfully")
}

// GetByID handles retrieving one quality incident
func (h *QualityIncidentHandler) GetByID(c echo.Context) error {
	incident, err := h.qualityIncidentUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incident, "Quality incident retrieved successfully")
}

// Create handles reporting a quality incident
func (h *QualityIncidentHandler) Create(c echo.Context) error {
	var req CreateQualityIncidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quality incident input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	incident, err := h.qualityIncidentUC.Create(c.Request().Context(), &usecase.CreateQualityIncidentInput{
		OrganizationID:   req.OrganizationID,
		IncidentType:     req.IncidentType,
		TestingPointID:   req.TestingPointID,
		DetectionDate:    req.DetectionDate,
		Severity:         req.Severity,
		Description:      req.Description,
		AffectedZones:    req.AffectedZones,
		ImmediateActions: req.ImmediateActions,
		ReportedByUserID: req.ReportedByUserID,

		CorrectiveActions: req.CorrectiveActions,
		Resolved:          req.Resolved,
		ResolutionDate:    req.ResolutionDate,
		ResolvedByUserID:  req.ResolvedByUserID,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, incident, "Quality incident created successfully")
}

// Update handles updating a quality incident
func (h *QualityIncidentHandler) Update(c echo.Context) error {
	var req UpdateQualityIncidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quality incident input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	incident, err := h.qualityIncidentUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateQualityIncidentInput{
		IncidentType:      req.IncidentType,
		TestingPointID:    req.TestingPointID,
		DetectionDate:     req.DetectionDate,
		Severity:          req.Severity,
		Description:       req.Description,
		AffectedZones:     req.AffectedZones,
		ImmediateActions:  req.ImmediateActions,
		CorrectiveActions: req.CorrectiveActions,
		Resolved:          req.Resolved,
		ResolutionDate:    req.ResolutionDate,
		ResolvedByUserID:  req.ResolvedByUserID,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incident, "Quality incident updated successfully")
}

// Delete handles the logical deletion of a quality incident
func (h *QualityIncidentHandler) Delete(c echo.Context) error {
	if err := h.qualityIncidentUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Quality incident deleted successfully")
}

// DeletePhysically handles the permanent removal of a quality incident
func (h *QualityIncidentHandler) DeletePhysically(c echo.Context) error {
	if err := h.qualityIncidentUC.DeletePhysically(c.Request().Context(), c.Param("id")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Quality incident permanently deleted")
}

// Restore handles clearing the tombstone of a deleted quality incident
func (h *QualityIncidentHandler) Restore(c echo.Context) error {
	incident, err := h.qualityIncidentUC.Restore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, incident, "Quality incident restored successfully")
}
