package usecase

import (
	"context"
	"time"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/service"
)

// CreateQualityTestInput represents the input for recording a quality test
type CreateQualityTestInput struct {
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

// UpdateQualityTestInput represents the input for updating a quality test
type UpdateQualityTestInput struct {
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

// QualityTestResponse is a quality test joined with its organization, the
// testing user and the resolved testing points. External fields hold zero
// values when the reference services are unavailable; testing points that
// fail to resolve are dropped from the list.
type QualityTestResponse struct {
	entity.QualityTest
	Organization  service.Organization   `json:"organization"`
	TestedBy      service.User           `json:"testedBy"`
	TestingPoints []*entity.TestingPoint `json:"testingPoints"`
}

// QualityTestUsecase defines the interface for quality-test management use cases
type QualityTestUsecase interface {
	GetAll(ctx context.Context) ([]*QualityTestResponse, error)
	GetAllByOrganization(ctx context.Context, organizationID string) ([]*QualityTestResponse, error)
	GetByID(ctx context.Context, id string) (*QualityTestResponse, error)

	// GetByIDScoped resolves a test only when it belongs to the given
	// organization.
	GetByIDScoped(ctx context.Context, id, organizationID string) (*QualityTestResponse, error)

	Create(ctx context.Context, input *CreateQualityTestInput) (*QualityTestResponse, error)

	// Update overwrites the test and regenerates its code.
	Update(ctx context.Context, id string, input *UpdateQualityTestInput) (*QualityTestResponse, error)

	// Delete sets the tombstone; the record stays restorable.
	Delete(ctx context.Context, id string) error

	// DeletePhysically removes the record outright.
	DeletePhysically(ctx context.Context, id string) error

	// Restore clears the tombstone; conflict if the record is not deleted.
	Restore(ctx context.Context, id string) (*QualityTestResponse, error)
}
