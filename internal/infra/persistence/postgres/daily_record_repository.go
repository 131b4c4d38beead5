package postgres

import (
	"context"
	"encoding/json"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/repository"
	"aquatrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dailyRecordRepository implements the repository.DailyRecordRepository interface.
type dailyRecordRepository struct {
	db *gorm.DB
}

// NewDailyRecordRepository is the constructor for dailyRecordRepository.
func NewDailyRecordRepository(db *gorm.DB) repository.DailyRecordRepository {
	return &dailyRecordRepository{
		db: db,
	}
}

// Create persists a new daily record and assigns its id.
func (repo *dailyRecordRepository) Create(ctx context.Context, record *entity.DailyRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	recordM, err := fromDailyRecordDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to create daily record")
	}

	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindByID retrieves a daily record by its unique ID, tombstoned or not.
func (repo *dailyRecordRepository) FindByID(ctx context.Context, id string) (*entity.DailyRecord, error) {
	var recordM model.DailyRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDailyRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find daily record by ID")
	}

	return toDailyRecordDomain(&recordM)
}

// FindAll retrieves non-deleted daily records in insertion order.
func (repo *dailyRecordRepository) FindAll(ctx context.Context) ([]*entity.DailyRecord, error) {
	var recordModels []*model.DailyRecordModel

	if err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find daily records")
	}

	return toDailyRecordDomainList(recordModels)
}

// FindAllByRecordType retrieves records of one chemical type, tombstoned
// ones included.
func (repo *dailyRecordRepository) FindAllByRecordType(ctx context.Context, recordType string) ([]*entity.DailyRecord, error) {
	var recordModels []*model.DailyRecordModel

	if err := repo.db.WithContext(ctx).
		Where("record_type = ?", recordType).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find daily records by type")
	}

	return toDailyRecordDomainList(recordModels)
}

// FindAllByOrganizationID retrieves non-deleted daily records scoped to an organization.
func (repo *dailyRecordRepository) FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.DailyRecord, error) {
	var recordModels []*model.DailyRecordModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ? AND deleted_at IS NULL", organizationID).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find daily records by organization")
	}

	return toDailyRecordDomainList(recordModels)
}

// Update overwrites an existing daily record.
func (repo *dailyRecordRepository) Update(ctx context.Context, record *entity.DailyRecord) error {
	recordM, err := fromDailyRecordDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to update daily record")
	}

	return nil
}

// DeleteByID removes a daily record outright.
func (repo *dailyRecordRepository) DeleteByID(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DailyRecordModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete daily record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDailyRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDailyRecordDomain(data *model.DailyRecordModel) (*entity.DailyRecord, error) {
	if data == nil {
		return nil, nil
	}

	var pointIDs []string
	if data.TestingPointIDs != "" {
		if err := json.Unmarshal([]byte(data.TestingPointIDs), &pointIDs); err != nil {
			return nil, errors.Wrap(err, "failed to decode testing point ids")
		}
	}

	return &entity.DailyRecord{
		ID:               data.ID,
		OrganizationID:   data.OrganizationID,
		RecordCode:       data.RecordCode,
		RecordType:       data.RecordType,
		TestingPointIDs:  pointIDs,
		RecordDate:       data.RecordDate,
		Level:            data.Level,
		Acceptable:       data.Acceptable,
		ActionRequired:   data.ActionRequired,
		RecordedByUserID: data.RecordedByUserID,
		Observations:     data.Observations,
		Amount:           data.Amount,
		CreatedAt:        data.CreatedAt,
		DeletedAt:        data.DeletedAt,
	}, nil
}

func toDailyRecordDomainList(models []*model.DailyRecordModel) ([]*entity.DailyRecord, error) {
	records := make([]*entity.DailyRecord, 0, len(models))
	for _, recordM := range models {
		record, err := toDailyRecordDomain(recordM)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

func fromDailyRecordDomain(data *entity.DailyRecord) (*model.DailyRecordModel, error) {
	if data == nil {
		return nil, nil
	}

	pointIDs, err := json.Marshal(data.TestingPointIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode testing point ids")
	}

	return &model.DailyRecordModel{
		ID:               data.ID,
		OrganizationID:   data.OrganizationID,
		RecordCode:       data.RecordCode,
		RecordType:       data.RecordType,
		TestingPointIDs:  string(pointIDs),
		RecordDate:       data.RecordDate,
		Level:            data.Level,
		Acceptable:       data.Acceptable,
		ActionRequired:   data.ActionRequired,
		RecordedByUserID: data.RecordedByUserID,
		Observations:     data.Observations,
		Amount:           data.Amount,
		CreatedAt:        data.CreatedAt,
		DeletedAt:        data.DeletedAt,
	}, nil
}
