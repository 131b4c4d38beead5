package repository

import (
	"context"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/errors"
)

// ErrQualityIncidentNotFound is returned when a quality incident is not found.
var ErrQualityIncidentNotFound = errors.New("quality incident not found")

// QualityIncidentRepository defines the interface for quality-incident collection access.
type QualityIncidentRepository interface {
	Create(ctx context.Context, incident *entity.QualityIncident) error

	// FindByID resolves tombstoned records too.
	// Returns ErrQualityIncidentNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.QualityIncident, error)

	// FindAll retrieves non-deleted incidents in insertion order.
	FindAll(ctx context.Context) ([]*entity.QualityIncident, error)

	// FindAllIncludingDeleted retrieves every incident, tombstoned ones
	// included: the code generator must see every code ever issued.
	FindAllIncludingDeleted(ctx context.Context) ([]*entity.QualityIncident, error)

	// FindAllByResolved retrieves non-deleted incidents filtered by resolution state.
	FindAllByResolved(ctx context.Context, resolved bool) ([]*entity.QualityIncident, error)

	FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.QualityIncident, error)

	Update(ctx context.Context, incident *entity.QualityIncident) error

	// DeleteByID removes the record physically.
	// Returns ErrQualityIncidentNotFound when no row matched.
	DeleteByID(ctx context.Context, id string) error
}
