package usecase

import (
	"context"
	"time"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/service"
)

// CreateQualityIncidentInput represents the input for reporting a quality incident
type CreateQualityIncidentInput struct {
	OrganizationID   string    `json:"organizationId" validate:"required"`
	IncidentType     string    `json:"incidentType" validate:"required"`
	TestingPointID   string    `json:"testingPointId"`
	DetectionDate    time.Time `json:"detectionDate" validate:"required"`
	Severity         string    `json:"severity"`
	Description      string    `json:"description"`
	AffectedZones    []string  `json:"affectedZones"`
	ImmediateActions string    `json:"immediateActions"`
	ReportedByUserID string    `json:"reportedByUserId"`

	// Incidents may be reported already closed.
	CorrectiveActions string     `json:"correctiveActions"`
	Resolved          bool       `json:"resolved"`
	ResolutionDate    *time.Time `json:"resolutionDate"`
	ResolvedByUserID  string     `json:"resolvedByUserId"`
}

// UpdateQualityIncidentInput represents the input for updating a quality incident
type UpdateQualityIncidentInput struct {
	IncidentType      string     `json:"incidentType"`
	TestingPointID    string     `json:"testingPointId"`
	DetectionDate     time.Time  `json:"detectionDate"`
	Severity          string     `json:"severity"`
	Description       string     `json:"description"`
	AffectedZones     []string   `json:"affectedZones"`
	ImmediateActions  string     `json:"immediateActions"`
	CorrectiveActions string     `json:"correctiveActions"`
	Resolved          bool       `json:"resolved"`
	ResolutionDate    *time.Time `json:"resolutionDate"`
	ResolvedByUserID  string     `json:"resolvedByUserId"`
}

// QualityIncidentResponse is a quality incident joined with its organization
// and the reporting user.
type QualityIncidentResponse struct {
	entity.QualityIncident
	Organization service.Organization `json:"organization"`
	ReportedBy   service.User         `json:"reportedBy"`
}

// QualityIncidentUsecase defines the interface for quality-incident management use cases
type QualityIncidentUsecase interface {
	GetAll(ctx context.Context) ([]*QualityIncidentResponse, error)
	GetResolved(ctx context.Context) ([]*QualityIncidentResponse, error)
	GetUnresolved(ctx context.Context) ([]*QualityIncidentResponse, error)
	GetByID(ctx context.Context, id string) (*QualityIncidentResponse, error)
	Create(ctx context.Context, input *CreateQualityIncidentInput) (*QualityIncidentResponse, error)

	// Update keeps the stored code and creation timestamp.
	Update(ctx context.Context, id string, input *UpdateQualityIncidentInput) (*QualityIncidentResponse, error)

	// Delete sets the tombstone; the record stays restorable.
	Delete(ctx context.Context, id string) error

	// DeletePhysically removes the record outright.
	DeletePhysically(ctx context.Context, id string) error

	// Restore clears the tombstone; conflict if the record is not deleted.
	Restore(ctx context.Context, id string) (*QualityIncidentResponse, error)
}
