package usecase

import (
	"context"
	"time"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/service"
)

// CreateDailyRecordInput represents the input for recording a daily chemical measurement
type CreateDailyRecordInput struct {
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

// UpdateDailyRecordInput represents the input for updating a daily record.
// RecordType is immutable; the regenerated code keeps the stored type's prefix.
type UpdateDailyRecordInput struct {
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

// DailyRecordResponse is a daily record joined with its organization, the
// recording user and the resolved testing points.
type DailyRecordResponse struct {
	entity.DailyRecord
	Organization  service.Organization   `json:"organization"`
	RecordedBy    service.User           `json:"recordedBy"`
	TestingPoints []*entity.TestingPoint `json:"testingPoints"`
}

// DailyRecordUsecase defines the interface for daily-record management use cases
type DailyRecordUsecase interface {
	GetAll(ctx context.Context) ([]*DailyRecordResponse, error)
	GetByID(ctx context.Context, id string) (*DailyRecordResponse, error)
	Create(ctx context.Context, input *CreateDailyRecordInput) (*DailyRecordResponse, error)

	// Update overwrites the record and regenerates its code using the
	// stored record type.
	Update(ctx context.Context, id string, input *UpdateDailyRecordInput) (*DailyRecordResponse, error)

	// Delete sets the tombstone; the record stays restorable.
	Delete(ctx context.Context, id string) error

	// DeletePhysically removes the record outright.
	DeletePhysically(ctx context.Context, id string) error

	// Restore clears the tombstone; conflict if the record is not deleted.
	Restore(ctx context.Context, id string) (*DailyRecordResponse, error)
}
