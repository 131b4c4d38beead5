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

// qualityIncidentRepository implements the repository.QualityIncidentRepository interface.
type qualityIncidentRepository struct {
	db *gorm.DB
}

// NewQualityIncidentRepository is the constructor for qualityIncidentRepository.
func NewQualityIncidentRepository(db *gorm.DB) repository.QualityIncidentRepository {
	return &qualityIncidentRepository{
		db: db,
	}
}

// Create persists a new quality incident and assigns its id.
func (repo *qualityIncidentRepository) Create(ctx context.Context, incident *entity.QualityIncident) error {
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}

	incidentM, err := fromQualityIncidentDomain(incident)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(incidentM).Error; err != nil {
		return errors.Wrap(err, "failed to create quality incident")
	}

	incident.CreatedAt = incidentM.CreatedAt

	return nil
}

// FindByID retrieves a quality incident by its unique ID, tombstoned or not.
func (repo *qualityIncidentRepository) FindByID(ctx context.Context, id string) (*entity.QualityIncident, error) {
	var incidentM model.QualityIncidentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&incidentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQualityIncidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find quality incident by ID")
	}

	return toQualityIncidentDomain(&incidentM)
}

// FindAll retrieves non-deleted incidents in insertion order.
func (repo *qualityIncidentRepository) FindAll(ctx context.Context) ([]*entity.QualityIncident, error) {
	var incidentModels []*model.QualityIncidentModel

	if err := repo.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		Find(&incidentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quality incidents")
	}

	return toQualityIncidentDomainList(incidentModels)
}

// FindAllIncludingDeleted retrieves every incident, tombstoned ones included.
func (repo *qualityIncidentRepository) FindAllIncludingDeleted(ctx context.Context) ([]*entity.QualityIncident, error) {
	var incidentModels []*model.QualityIncidentModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&incidentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all quality incidents")
	}

	return toQualityIncidentDomainList(incidentModels)
}

// FindAllByResolved retrieves non-deleted incidents filtered by resolution state.
func (repo *qualityIncidentRepository) FindAllByResolved(ctx context.Context, resolved bool) ([]*entity.QualityIncident, error) {
	var incidentModels []*model.QualityIncidentModel

	if err := repo.db.WithContext(ctx).
		Where("resolved = ? AND deleted_at IS NULL", resolved).
		Order("created_at ASC").
		Find(&incidentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quality incidents by resolution")
	}

	return toQualityIncidentDomainList(incidentModels)
}

// FindAllByOrganizationID retrieves non-deleted incidents scoped to an organization.
func (repo *qualityIncidentRepository) FindAllByOrganizationID(ctx context.Context, organizationID string) ([]*entity.QualityIncident, error) {
	var incidentModels []*model.QualityIncidentModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ? AND deleted_at IS NULL", organizationID).
		Order("created_at ASC").
		Find(&incidentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quality incidents by organization")
	}

	return toQualityIncidentDomainList(incidentModels)
}

// Update overwrites an existing quality incident record.
func (repo *qualityIncidentRepository) Update(ctx context.Context, incident *entity.QualityIncident) error {
	incidentM, err := fromQualityIncidentDomain(incident)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(incidentM).Error; err != nil {
		return errors.Wrap(err, "failed to update quality incident")
	}

	return nil
}

// DeleteByID removes a quality incident outright.
func (repo *qualityIncidentRepository) DeleteByID(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QualityIncidentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete quality incident")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQualityIncidentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toQualityIncidentDomain(data *model.QualityIncidentModel) (*entity.QualityIncident, error) {
	if data == nil {
		return nil, nil
	}

	var zones []string
	if data.AffectedZones != "" {
		if err := json.Unmarshal([]byte(data.AffectedZones), &zones); err != nil {
			return nil, errors.Wrap(err, "failed to decode affected zones")
		}
	}

	return &entity.QualityIncident{
		ID:                data.ID,
		OrganizationID:    data.OrganizationID,
		IncidentCode:      data.IncidentCode,
		IncidentType:      data.IncidentType,
		TestingPointID:    data.TestingPointID,
		DetectionDate:     data.DetectionDate,
		Severity:          data.Severity,
		Description:       data.Description,
		AffectedZones:     zones,
		ImmediateActions:  data.ImmediateActions,
		CorrectiveActions: data.CorrectiveActions,
		Resolved:          data.Resolved,
		ResolutionDate:    data.ResolutionDate,
		ReportedByUserID:  data.ReportedByUserID,
		ResolvedByUserID:  data.ResolvedByUserID,
		CreatedAt:         data.CreatedAt,
		DeletedAt:         data.DeletedAt,
	}, nil
}

func toQualityIncidentDomainList(models []*model.QualityIncidentModel) ([]*entity.QualityIncident, error) {
	incidents := make([]*entity.QualityIncident, 0, len(models))
	for _, incidentM := range models {
		incident, err := toQualityIncidentDomain(incidentM)
		if err != nil {
			return nil, err
		}

		incidents = append(incidents, incident)
	}

	return incidents, nil
}

func fromQualityIncidentDomain(data *entity.QualityIncident) (*model.QualityIncidentModel, error) {
	if data == nil {
		return nil, nil
	}

	zones, err := json.Marshal(data.AffectedZones)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode affected zones")
	}

	return &model.QualityIncidentModel{
		ID:                data.ID,
		OrganizationID:    data.OrganizationID,
		IncidentCode:      data.IncidentCode,
		IncidentType:      data.IncidentType,
		TestingPointID:    data.TestingPointID,
		DetectionDate:     data.DetectionDate,
		Severity:          data.Severity,
		Description:       data.Description,
		AffectedZones:     string(zones),
		ImmediateActions:  data.ImmediateActions,
		CorrectiveActions: data.CorrectiveActions,
		Resolved:          data.Resolved,
		ResolutionDate:    data.ResolutionDate,
		ReportedByUserID:  data.ReportedByUserID,
		ResolvedByUserID:  data.ResolvedByUserID,
		CreatedAt:         data.CreatedAt,
		DeletedAt:         data.DeletedAt,
	}, nil
}
