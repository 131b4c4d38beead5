package postgres

import (
	"context"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/repository"
	"aquatrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// qualityParameterRepository implements the repository.QualityParameterRepository interface.
type qualityParameterRepository struct {
	db *gorm.DB
}

// NewQualityParameterRepository is the constructor for qualityParameterRepository.
func NewQualityParameterRepository(db *gorm.DB) repository.QualityParameterRepository {
	return &qualityParameterRepository{
		db: db,
	}
}

// Create persists a new quality parameter and assigns its id.
func (repo *qualityParameterRepository) Create(ctx context.Context, param *entity.QualityParameter) error {
	if param.ID == "" {
		param.ID = uuid.NewString()
	}
	paramM := fromQualityParameterDomain(param)

	if err := repo.db.WithContext(ctx).Create(paramM).Error; err != nil {
		return errors.Wrap(err, "failed to create quality parameter")
	}

	param.CreatedAt = paramM.CreatedAt
	param.UpdatedAt = paramM.UpdatedAt

	return nil
}

// FindByID retrieves a quality parameter by its unique ID.
func (repo *qualityParameterRepository) FindByID(ctx context.Context, id string) (*entity.QualityParameter, error) {
	var paramM model.QualityParameterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paramM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQualityParameterNotFound
		}

		return nil, errors.Wrap(err, "failed to find quality parameter by ID")
	}

	return toQualityParameterDomain(&paramM), nil
}

// FindAll retrieves every quality parameter in insertion order.
func (repo *qualityParameterRepository) FindAll(ctx context.Context) ([]*entity.QualityParameter, error) {
	var paramModels []*model.QualityParameterModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&paramModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quality parameters")
	}

	return toQualityParameterDomainList(paramModels), nil
}

// FindAllByStatus retrieves quality parameters filtered by lifecycle status.
func (repo *qualityParameterRepository) FindAllByStatus(ctx context.Context, status entity.Status) ([]*entity.QualityParameter, error) {
	var paramModels []*model.QualityParameterModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&paramModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quality parameters by status")
	}

	return toQualityParameterDomainList(paramModels), nil
}

// FindAllByOrganizationID retrieves quality parameters scoped to an organization.
func (repo *qualityParameterRepository) FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.QualityParameter, error) {
	var paramModels []*model.QualityParameterModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
		Find(&paramModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quality parameters by organization")
	}

	return toQualityParameterDomainList(paramModels), nil
}

// Update overwrites an existing quality parameter record.
func (repo *qualityParameterRepository) Update(ctx context.Context, param *entity.QualityParameter) error {
	paramM := fromQualityParameterDomain(param)

	if err := repo.db.WithContext(ctx).Save(paramM).Error; err != nil {
		return errors.Wrap(err, "failed to update quality parameter")
	}

	param.UpdatedAt = paramM.UpdatedAt

	return nil
}

// DeleteByID removes a quality parameter outright.
func (repo *qualityParameterRepository) DeleteByID(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QualityParameterModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete quality parameter")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQualityParameterNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toQualityParameterDomain(data *model.QualityParameterModel) *entity.QualityParameter {
	if data == nil {
		return nil
	}

	return &entity.QualityParameter{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		ParameterCode:  data.ParameterCode,
		ParameterName:  data.ParameterName,
		UnitOfMeasure:  data.UnitOfMeasure,
		MinAcceptable:  data.MinAcceptable,
		MaxAcceptable:  data.MaxAcceptable,
		OptimalRange: entity.OptimalRange{
			Min: data.OptimalMin,
			Max: data.OptimalMax,
		},
		TestFrequency: data.TestFrequency,
		Status:        entity.Status(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toQualityParameterDomainList(models []*model.QualityParameterModel) []*entity.QualityParameter {
	params := make([]*entity.QualityParameter, 0, len(models))
	for _, paramM := range models {
		params = append(params, toQualityParameterDomain(paramM))
	}

	return params
}

func fromQualityParameterDomain(data *entity.QualityParameter) *model.QualityParameterModel {
	if data == nil {
		return nil
	}

	return &model.QualityParameterModel{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		ParameterCode:  data.ParameterCode,
		ParameterName:  data.ParameterName,
		UnitOfMeasure:  data.UnitOfMeasure,
		MinAcceptable:  data.MinAcceptable,
		MaxAcceptable:  data.MaxAcceptable,
		OptimalMin:     data.OptimalRange.Min,
		OptimalMax:     data.OptimalRange.Max,
		TestFrequency:  data.TestFrequency,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
