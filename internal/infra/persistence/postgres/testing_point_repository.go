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

// testingPointRepository implements the repository.TestingPointRepository interface.
type testingPointRepository struct {
	db *gorm.DB
}

// NewTestingPointRepository is the constructor for testingPointRepository.
func NewTestingPointRepository(db *gorm.DB) repository.TestingPointRepository {
	return &testingPointRepository{
		db: db,
	}
}

// Create persists a new testing point and assigns its id.
func (repo *testingPointRepository) Create(ctx context.Context, point *entity.TestingPoint) error {
	if point.ID == "" {
		point.ID = uuid.NewString()
	}
	pointM := fromTestingPointDomain(point)

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		return errors.Wrap(err, "failed to create testing point")
	}

	point.CreatedAt = pointM.CreatedAt
	point.UpdatedAt = pointM.UpdatedAt

	return nil
}

// FindByID retrieves a testing point by its unique ID.
func (repo *testingPointRepository) FindByID(ctx context.Context, id string) (*entity.TestingPoint, error) {
	var pointM model.TestingPointModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTestingPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find testing point by ID")
	}

	return toTestingPointDomain(&pointM), nil
}

// FindAll retrieves every testing point in insertion order.
func (repo *testingPointRepository) FindAll(ctx context.Context) ([]*entity.TestingPoint, error) {
	var pointModels []*model.TestingPointModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find testing points")
	}

	return toTestingPointDomainList(pointModels), nil
}

// FindAllByStatus retrieves testing points filtered by lifecycle status.
func (repo *testingPointRepository) FindAllByStatus(ctx context.Context, status entity.Status) ([]*entity.TestingPoint, error) {
	var pointModels []*model.TestingPointModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find testing points by status")
	}

	return toTestingPointDomainList(pointModels), nil
}

// FindAllByOrganizationID retrieves testing points scoped to an organization.
func (repo *testingPointRepository) FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.TestingPoint, error) {
	var pointModels []*model.TestingPointModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find testing points by organization")
	}

	return toTestingPointDomainList(pointModels), nil
}

// Update overwrites an existing testing point record.
func (repo *testingPointRepository) Update(ctx context.Context, point *entity.TestingPoint) error {
	pointM := fromTestingPointDomain(point)

	if err := repo.db.WithContext(ctx).Save(pointM).Error; err != nil {
		return errors.Wrap(err, "failed to update testing point")
	}

	point.UpdatedAt = pointM.UpdatedAt

	return nil
}

// DeleteByID removes a testing point outright.
func (repo *testingPointRepository) DeleteByID(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TestingPointModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete testing point")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTestingPointNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTestingPointDomain converts a GORM TestingPointModel to a domain TestingPoint entity.
func toTestingPointDomain(data *model.TestingPointModel) *entity.TestingPoint {
	if data == nil {
		return nil
	}

	return &entity.TestingPoint{
		ID:                  data.ID,
		OrganizationID:      data.OrganizationID,
		PointCode:           data.PointCode,
		PointName:           data.PointName,
		PointType:           data.PointType,
		ZoneID:              data.ZoneID,
		LocationDescription: data.LocationDescription,
		Street:              data.Street,
		Coordinates: entity.Coordinates{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		Status:    entity.Status(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toTestingPointDomainList(models []*model.TestingPointModel) []*entity.TestingPoint {
	points := make([]*entity.TestingPoint, 0, len(models))
	for _, pointM := range models {
		points = append(points, toTestingPointDomain(pointM))
	}

	return points
}

// fromTestingPointDomain converts a domain TestingPoint entity to a GORM TestingPointModel.
func fromTestingPointDomain(data *entity.TestingPoint) *model.TestingPointModel {
	if data == nil {
		return nil
	}

	return &model.TestingPointModel{
		ID:                  data.ID,
		OrganizationID:      data.OrganizationID,
		PointCode:           data.PointCode,
		PointName:           data.PointName,
		PointType:           data.PointType,
		ZoneID:              data.ZoneID,
		LocationDescription: data.LocationDescription,
		Street:              data.Street,
		Latitude:            data.Coordinates.Latitude,
		Longitude:           data.Coordinates.Longitude,
		Status:              string(data.Status),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
