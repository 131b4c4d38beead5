package repository

import (
	"context"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/errors"
)

// ErrDailyRecordNotFound is returned when a daily record is not found.
var ErrDailyRecordNotFound = errors.New("daily record not found")

// DailyRecordRepository defines the interface for daily-record collection access.
type DailyRecordRepository interface {
	Create(ctx context.Context, record *entity.DailyRecord) error

	// FindByID resolves tombstoned records too.
	// Returns ErrDailyRecordNotFound if absent.
	FindByID(ctx context.Context, id string) (*entity.DailyRecord, error)

	// FindAll retrieves non-deleted daily records in insertion order.
	FindAll(ctx context.Context) ([]*entity.DailyRecord, error)

	// FindAllByRecordType retrieves records of one chemical type, deleted
	// included: the code generator must see every code ever issued.
	FindAllByRecordType(ctx context.Context, recordType string) ([]*entity.DailyRecord, error)

	FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.DailyRecord, error)

	Update(ctx context.Context, record *entity.DailyRecord) error

	// DeleteByID removes the record physically.
	// Returns ErrDailyRecordNotFound when no row matched.
	DeleteByID(ctx context.Context, id string) error
}
