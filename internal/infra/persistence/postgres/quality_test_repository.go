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

// qualityTestRepository implements the repository.QualityTestRepository interface.
type qualityTestRepository struct {
	db *gorm.DB
}

// NewQualityTestRepository is the constructor for qualityTestRepository.
func NewQualityTestRepository(db *gorm.DB) repository.QualityTestRepository {
	return &qualityTestRepository{
		db: db,
	}
}

// Create persists a new quality test and assigns its id.
func (repo *qualityTestRepository) Create(ctx context.Context, test *entity.QualityTest) error {
	if test.ID == "" {
		test.ID = uuid.NewString()
	}

	testM, err := fromQualityTestDomain(test)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(testM).Error; err != nil {
		return errors.Wrap(err, "failed to create quality test")
	}

	test.CreatedAt = testM.CreatedAt

	return nil
}

// FindByID retrieves a quality test by its unique ID, tombstoned or not.
func (repo *qualityTestRepository) FindByID(ctx context.Context, id string) (*entity.QualityTest, error) {
	var testM model.QualityTestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&testM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQualityTestNotFound
		}

		return nil, errors.Wrap(err, "failed to find quality test by ID")
	}

	return toQualityTestDomain(&testM)
}

// FindAll retrieves non-deleted quality tests in insertion order.
func (repo *qualityTestRepository) FindAll(ctx context.Context) ([]*entity.QualityTest, error) {
	var testModels []*model.QualityTestModel

	if err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		Find(&testModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quality tests")
	}

	return toQualityTestDomainList(testModels)
}

// FindAllIncludingDeleted retrieves every quality test, tombstoned ones included.
func (repo *qualityTestRepository) FindAllIncludingDeleted(ctx context.Context) ([]*entity.QualityTest, error) {
	var testModels []*model.QualityTestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&testModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all quality tests")
	}

	return toQualityTestDomainList(testModels)
}

// FindAllByOrganizationID retrieves non-deleted quality tests scoped to an organization.
func (repo *qualityTestRepository) FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.QualityTest, error) {
	var testModels []*model.QualityTestModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ? AND deleted_at IS NULL", organizationID).
		Order("created_at ASC").
		Find(&testModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quality tests by organization")
	}

	return toQualityTestDomainList(testModels)
}

// Update overwrites an existing quality test record.
func (repo *qualityTestRepository) Update(ctx context.Context, test *entity.QualityTest) error {
	testM, err := fromQualityTestDomain(test)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(testM).Error; err != nil {
		return errors.Wrap(err, "failed to update quality test")
	}

	return nil
}

// DeleteByID removes a quality test outright.
func (repo *qualityTestRepository) DeleteByID(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QualityTestModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete quality test")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQualityTestNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toQualityTestDomain(data *model.QualityTestModel) (*entity.QualityTest, error) {
	if data == nil {
		return nil, nil
	}

	var pointIDs []string
	if data.TestingPointIDs != "" {
		if err := json.Unmarshal([]byte(data.TestingPointIDs), &pointIDs); err != nil {
			return nil, errors.Wrap(err, "failed to decode testing point ids")
		}
	}

	var results []entity.TestResult
	if data.Results != "" {
		if err := json.Unmarshal([]byte(data.Results), &results); err != nil {
			return nil, errors.Wrap(err, "failed to decode test results")
		}
	}

	return &entity.QualityTest{
		ID:                  data.ID,
		OrganizationID:      data.OrganizationID,
		TestCode:            data.TestCode,
		TestingPointIDs:     pointIDs,
		TestDate:            data.TestDate,
		TestType:            data.TestType,
		TestedByUserID:      data.TestedByUserID,
		WeatherConditions:   data.WeatherConditions,
		WaterTemperature:    data.WaterTemperature,
		GeneralObservations: data.GeneralObservations,
		Status:              data.Status,
		Results:             results,
		CreatedAt:           data.CreatedAt,
		DeletedAt:           data.DeletedAt,
	}, nil
}

func toQualityTestDomainList(models []*model.QualityTestModel) ([]*entity.QualityTest, error) {
	tests := make([]*entity.QualityTest, 0, len(models))
	for _, testM := range models {
		test, err := toQualityTestDomain(testM)
		if err != nil {
			return nil, err
		}

		tests = append(tests, test)
	}

	return tests, nil
}

func fromQualityTestDomain(data *entity.QualityTest) (*model.QualityTestModel, error) {
	if data == nil {
		return nil, nil
	}

	pointIDs, err := json.Marshal(data.TestingPointIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode testing point ids")
	}

	results, err := json.Marshal(data.Results)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode test results")
	}

	return &model.QualityTestModel{
		ID:                  data.ID,
		OrganizationID:      data.OrganizationID,
		TestCode:            data.TestCode,
		TestingPointIDs:     string(pointIDs),
		TestDate:            data.TestDate,
		TestType:            data.TestType,
		TestedByUserID:      data.TestedByUserID,
		WeatherConditions:   data.WeatherConditions,
		WaterTemperature:    data.WaterTemperature,
		GeneralObservations: data.GeneralObservations,
		Status:              data.Status,
		Results:             string(results),
		CreatedAt:           data.CreatedAt,
		DeletedAt:           data.DeletedAt,
	}, nil
}
