package usecase

import (
	"context"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/service"
)

// CreateQualityParameterInput represents the input for registering a quality parameter
type CreateQualityParameterInput struct {
	OrganizationID string              `json:"organizationId" validate:"required"`
	ParameterName  string              `json:"parameterName" validate:"required"`
	UnitOfMeasure  string              `json:"unitOfMeasure"`
	MinAcceptable  float64             `json:"minAcceptable"`
	MaxAcceptable  float64             `json:"maxAcceptable"`
	OptimalRange   entity.OptimalRange `json:"optimalRange"`
	TestFrequency  string              `json:"testFrequency"`
}

// UpdateQualityParameterInput represents the input for updating a quality parameter.
// Status is not part of the input; it changes only through Activate/Deactivate.
type UpdateQualityParameterInput struct {
	ParameterName string              `json:"parameterName"`
	UnitOfMeasure string              `json:"unitOfMeasure"`
	MinAcceptable float64             `json:"minAcceptable"`
	MaxAcceptable float64             `json:"maxAcceptable"`
	OptimalRange  entity.OptimalRange `json:"optimalRange"`
	TestFrequency string              `json:"testFrequency"`
}

// QualityParameterResponse is a quality parameter joined with its
// organization reference data.
type QualityParameterResponse struct {
	entity.QualityParameter
	Organization service.Organization `json:"organization"`
}

// QualityParameterUsecase defines the interface for quality-parameter management use cases
type QualityParameterUsecase interface {
	GetAll(ctx context.Context) ([]*QualityParameterResponse, error)
	GetAllActive(ctx context.Context) ([]*QualityParameterResponse, error)
	GetAllInactive(ctx context.Context) ([]*QualityParameterResponse, error)
	GetByID(ctx context.Context, id string) (*QualityParameterResponse, error)
	Create(ctx context.Context, input *CreateQualityParameterInput) (*QualityParameterResponse, error)
	Update(ctx context.Context, id string, input *UpdateQualityParameterInput) (*QualityParameterResponse, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*QualityParameterResponse, error)
	Deactivate(ctx context.Context, id string) (*QualityParameterResponse, error)
}
