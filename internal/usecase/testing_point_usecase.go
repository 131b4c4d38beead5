// Package usecase defines the application service interfaces and their
// input/output types.
package usecase

import (
	"context"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/service"
)

// CreateTestingPointInput represents the input for registering a sampling point
type CreateTestingPointInput struct {
	OrganizationID      string             `json:"organizationId" validate:"required"`
	PointName           string             `json:"pointName" validate:"required"`
	PointType           string             `json:"pointType"`
	ZoneID              string             `json:"zoneId"`
	LocationDescription string             `json:"locationDescription"`
	Street              string             `json:"street"`
	Coordinates         entity.Coordinates `json:"coordinates"`
}

// UpdateTestingPointInput represents the input for updating a sampling point.
// Status is not part of the input; it changes only through Activate/Deactivate.
type UpdateTestingPointInput struct {
	PointName           string             `json:"pointName"`
	PointType           string             `json:"pointType"`
	ZoneID              string             `json:"zoneId"`
	LocationDescription string             `json:"locationDescription"`
	Street              string             `json:"street"`
	Coordinates         entity.Coordinates `json:"coordinates"`
}

// TestingPointResponse is a testing point joined with its organization
// reference data. Organization is a zero value when the reference service
// is unavailable.
type TestingPointResponse struct {
	entity.TestingPoint
	Organization service.Organization `json:"organization"`
}

// TestingPointUsecase defines the interface for sampling-point management use cases
type TestingPointUsecase interface {
	GetAll(ctx context.Context) ([]*TestingPointResponse, error)
	GetAllActive(ctx context.Context) ([]*TestingPointResponse, error)
	GetAllInactive(ctx context.Context) ([]*TestingPointResponse, error)
	GetByID(ctx context.Context, id string) (*TestingPointResponse, error)
	Create(ctx context.Context, input *CreateTestingPointInput) (*TestingPointResponse, error)
	Update(ctx context.Context, id string, input *UpdateTestingPointInput) (*TestingPointResponse, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*TestingPointResponse, error)
	Deactivate(ctx context.Context, id string) (*TestingPointResponse, error)
}
