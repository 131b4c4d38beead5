package impl

import (
	"context"
	"fmt"
	"time"

	"aquatrace/config"
	"aquatrace/internal/domain/entity"
	domainerrors "aquatrace/internal/domain/errors"
	"aquatrace/internal/domain/repository"
	"aquatrace/internal/domain/service"
	"aquatrace/internal/errors"
	"aquatrace/internal/usecase"
)

type qualityIncidentService struct {
	incidentRepo repository.QualityIncidentRepository
	enricher     *enricher
}

// NewQualityIncidentService creates a new quality incident service instance
func NewQualityIncidentService(
	incidentRepo repository.QualityIncidentRepository,
	pointRepo repository.TestingPointRepository,
	refClient service.ReferenceClient,
	cfg *config.Config,
) usecase.QualityIncidentUsecase {
	return &qualityIncidentService{
		incidentRepo: incidentRepo,
		enricher:     newEnricher(refClient, pointRepo, cfg.Enrichment.Fanout),
	}
}

// GetAll retrieves every non-deleted incident, enriched
func (s *qualityIncidentService) GetAll(ctx context.Context) ([]*usecase.QualityIncidentResponse, error) {
	incidents, err := s.incidentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find quality incidents: %w", err)
	}

	return s.toResponseList(ctx, incidents), nil
}

// GetResolved retrieves the non-deleted incidents already closed
func (s *qualityIncidentService) GetResolved(ctx context.Context) ([]*usecase.QualityIncidentResponse, error) {
	incidents, err := s.incidentRepo.FindAllByResolved(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to find resolved quality incidents: %w", err)
	}

	return s.toResponseList(ctx, incidents), nil
}

// GetUnresolved retrieves the non-deleted incidents still open
func (s *qualityIncidentService) GetUnresolved(ctx context.Context) ([]*usecase.QualityIncidentResponse, error) {
	incidents, err := s.incidentRepo.FindAllByResolved(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find unresolved quality incidents: %w", err)
	}

	return s.toResponseList(ctx, incidents), nil
}

// GetByID retrieves one incident, tombstoned or not
func (s *qualityIncidentService) GetByID(ctx context.Context, id string) (*usecase.QualityIncidentResponse, error) {
	incident, err := s.findIncident(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, incident), nil
}

// Create reports an incident and assigns the next sequential INC code
func (s *qualityIncidentService) Create(ctx context.Context, input *usecase.CreateQualityIncidentInput) (*usecase.QualityIncidentResponse, error) {
	if input.OrganizationID == "" || input.IncidentType == "" || input.DetectionDate.IsZero() {
		return nil, domainerrors.NewValidation("organizationId, incidentType, detectionDate")
	}

	code, err := s.nextIncidentCode(ctx)
	if err != nil {
		return nil, err
	}

	incident := &entity.QualityIncident{
		OrganizationID:   input.OrganizationID,
		IncidentCode:     code,
		IncidentType:     input.IncidentType,
		TestingPointID:   input.TestingPointID,
		DetectionDate:    input.DetectionDate,
		Severity:         input.Severity,
		Description:      input.Description,
		AffectedZones:    normalizeIDs(input.AffectedZones),
		ImmediateActions: input.ImmediateActions,
		ReportedByUserID: input.ReportedByUserID,

		CorrectiveActions: input.CorrectiveActions,
		Resolved:          input.Resolved,
		ResolutionDate:    input.ResolutionDate,
		ResolvedByUserID:  input.ResolvedByUserID,

		CreatedAt: time.Now(),
	}

	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("failed to create quality incident: %w", err)
	}

	return s.toResponse(ctx, incident), nil
}

// Update overwrites an incident's mutable fields. The stored code and
// creation timestamp are kept.
func (s *qualityIncidentService) Update(ctx context.Context, id string, input *usecase.UpdateQualityIncidentInput) (*usecase.QualityIncidentResponse, error) {
	incident, err := s.findIncident(ctx, id)
	if err != nil {
		return nil, err
	}

	incident.IncidentType = input.IncidentType
	incident.TestingPointID = input.TestingPointID
	incident.DetectionDate = input.DetectionDate
	incident.Severity = input.Severity
	incident.Description = input.Description
	incident.AffectedZones = normalizeIDs(input.AffectedZones)
	incident.ImmediateActions = input.ImmediateActions
	incident.CorrectiveActions = input.CorrectiveActions
	incident.Resolved = input.Resolved
	incident.ResolutionDate = input.ResolutionDate
	incident.ResolvedByUserID = input.ResolvedByUserID

	if err := s.incidentRepo.Update(ctx, incident); err != nil {
		return nil, fmt.Errorf("failed to update quality incident: %w", err)
	}

	return s.toResponse(ctx, incident), nil
}

// Delete sets the tombstone on an incident
func (s *qualityIncidentService) Delete(ctx context.Context, id string) error {
	incident, err := s.findIncident(ctx, id)
	if err != nil {
		return err
	}

	if incident.Deleted() {
		return nil
	}

	now := time.Now()
	incident.DeletedAt = &now

	if err := s.incidentRepo.Update(ctx, incident); err != nil {
		return fmt.Errorf("failed to delete quality incident: %w", err)
	}

	return nil
}

// DeletePhysically removes an incident outright
func (s *qualityIncidentService) DeletePhysically(ctx context.Context, id string) error {
	if err := s.incidentRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrQualityIncidentNotFound) {
			return domainerrors.NewNotFound("quality incident", id)
		}

		return fmt.Errorf("failed to physically delete quality incident: %w", err)
	}

	return nil
}

// Restore clears the tombstone on a deleted incident
func (s *qualityIncidentService) Restore(ctx context.Context, id string) (*usecase.QualityIncidentResponse, error) {
	incident, err := s.findIncident(ctx, id)
	if err != nil {
		return nil, err
	}

	if !incident.Deleted() {
		return nil, domainerrors.ErrRestoreNotNeeded
	}

	incident.DeletedAt = nil

	if err := s.incidentRepo.Update(ctx, incident); err != nil {
		return nil, fmt.Errorf("failed to restore quality incident: %w", err)
	}

	return s.toResponse(ctx, incident), nil
}

func (s *qualityIncidentService) findIncident(ctx context.Context, id string) (*entity.QualityIncident, error) {
	incident, err := s.incidentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQualityIncidentNotFound) {
			return nil, domainerrors.NewNotFound("quality incident", id)
		}

		return nil, fmt.Errorf("failed to find quality incident by ID: %w", err)
	}

	return incident, nil
}

// nextIncidentCode scans every code ever issued, tombstoned records
// included, so a code is never reused.
func (s *qualityIncidentService) nextIncidentCode(ctx context.Context) (string, error) {
	incidents, err := s.incidentRepo.FindAllIncludingDeleted(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to scan quality incident codes: %w", err)
	}

	codes := make([]string, 0, len(incidents))
	for _, incident := range incidents {
		codes = append(codes, incident.IncidentCode)
	}

	return nextCode(codes, prefixQualityIncident), nil
}

func (s *qualityIncidentService) toResponse(ctx context.Context, incident *entity.QualityIncident) *usecase.QualityIncidentResponse {
	org, user := s.enricher.organizationAndUser(ctx, incident.OrganizationID, incident.ReportedByUserID)

	return &usecase.QualityIncidentResponse{
		QualityIncident: *incident,
		Organization:    org,
		ReportedBy:      user,
	}
}

func (s *qualityIncidentService) toResponseList(ctx context.Context, incidents []*entity.QualityIncident) []*usecase.QualityIncidentResponse {
	return mapConcurrent(ctx, s.enricher.fanout, incidents, s.toResponse)
}
