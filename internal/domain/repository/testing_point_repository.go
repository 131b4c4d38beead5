// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/errors"
)

// Domain-specific errors for testing point persistence.
var (
	// ErrTestingPointNotFound is returned when a testing point is not found.
	ErrTestingPointNotFound = errors.New("testing point not found")
)

// TestingPointRepository defines the interface for testing-point collection access.
type TestingPointRepository interface {
	// Create persists a new testing point and assigns its id.
	Create(ctx context.Context, point *entity.TestingPoint) error

	// FindByID retrieves a testing point by its unique ID.
	// Returns ErrTestingPointNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.TestingPoint, error)

	// FindAll retrieves every testing point in insertion order.
	FindAll(ctx context.Context) ([]*entity.TestingPoint, error)

	// FindAllByStatus retrieves testing points filtered by lifecycle status.
	FindAllByStatus(ctx context.Context, status entity.Status) ([]*entity.TestingPoint, error)

	// FindAllByOrganizationID retrieves testing points scoped to an organization.
	FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.TestingPoint, error)

	// Update overwrites an existing testing point record.
	Update(ctx context.Context, point *entity.TestingPoint) error

	// DeleteByID removes a testing point outright.
	// Returns ErrTestingPointNotFound when no row matched.
	DeleteByID(ctx context.Context, id string) error
}
