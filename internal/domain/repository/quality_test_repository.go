package repository

import (
	"context"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/errors"
)

// ErrQualityTestNotFound is returned when a quality test is not found.
var ErrQualityTestNotFound = errors.New("quality test not found")

// QualityTestRepository defines the interface for quality-test collection access.
// FindByID resolves tombstoned records too, so that restore and physical
// delete can address them; the listing methods exclude them.
type QualityTestRepository interface {
	Create(ctx context.Context, test *entity.QualityTest) error

	// FindByID returns ErrQualityTestNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.QualityTest, error)

	// FindAll retrieves non-deleted quality tests in insertion order.
	FindAll(ctx context.Context) ([]*entity.QualityTest, error)

	// FindAllIncludingDeleted retrieves every quality test, tombstoned ones
	// included: the code generator must see every code ever issued.
	FindAllIncludingDeleted(ctx context.Context) ([]*entity.QualityTest, error)

	// FindAllByOrganizationID retrieves non-deleted quality tests scoped to an organization.
	FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.QualityTest, error)

	Update(ctx context.Context, test *entity.QualityTest) error

	// DeleteByID removes the record physically.
	// Returns ErrQualityTestNotFound when no row matched.
	DeleteByID(ctx context.Context, id string) error
}
