package repository

import (
	"context"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/errors"
)

// ErrQualityParameterNotFound is returned when a quality parameter is not found.
var ErrQualityParameterNotFound = errors.New("quality parameter not found")

// QualityParameterRepository defines the interface for quality-parameter collection access.
type QualityParameterRepository interface {
	Create(ctx context.Context, param *entity.QualityParameter) error

	// FindByID returns ErrQualityParameterNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.QualityParameter, error)

	FindAll(ctx context.Context) ([]*entity.QualityParameter, error)

	FindAllByStatus(ctx context.Context, status entity.Status) ([]*entity.QualityParameter, error)

	FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.QualityParameter, error)

	Update(ctx context.Context, param *entity.QualityParameter) error

	// DeleteByID returns ErrQualityParameterNotFound when no row matched.
	DeleteByID(ctx context.Context, id string) error
}
