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

type qualityParameterService struct {
	paramRepo repository.QualityParameterRepository
	enricher  *enricher
}

// NewQualityParameterService creates a new quality parameter service instance
func NewQualityParameterService(
	paramRepo repository.QualityParameterRepository,
	pointRepo repository.TestingPointRepository,
	refClient service.ReferenceClient,
	cfg *config.Config,
) usecase.QualityParameterUsecase {
	return &qualityParameterService{
		paramRepo: paramRepo,
		enricher:  newEnricher(refClient, pointRepo, cfg.Enrichment.Fanout),
	}
}

// GetAll retrieves every quality parameter with organization data attached
func (s *qualityParameterService) GetAll(ctx context.Context) ([]*usecase.QualityParameterResponse, error) {
	params, err := s.paramRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find quality parameters: %w", err)
	}

	return s.toResponseList(ctx, params), nil
}

// GetAllActive retrieves the parameters currently monitored
func (s *qualityParameterService) GetAllActive(ctx context.Context) ([]*usecase.QualityParameterResponse, error) {
	params, err := s.paramRepo.FindAllByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to find active quality parameters: %w", err)
	}

	return s.toResponseList(ctx, params), nil
}

// GetAllInactive retrieves the parameters no longer monitored
func (s *qualityParameterService) GetAllInactive(ctx context.Context) ([]*usecase.QualityParameterResponse, error) {
	params, err := s.paramRepo.FindAllByStatus(ctx, entity.StatusInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to find inactive quality parameters: %w", err)
	}

	return s.toResponseList(ctx, params), nil
}

// GetByID retrieves one quality parameter
func (s *qualityParameterService) GetByID(ctx context.Context, id string) (*usecase.QualityParameterResponse, error) {
	param, err := s.findParameter(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, param), nil
}

// Create registers a quality parameter and assigns the next sequential PRM code
func (s *qualityParameterService) Create(ctx context.Context, input *usecase.CreateQualityParameterInput) (*usecase.QualityParameterResponse, error) {
	if input.OrganizationID == "" || input.ParameterName == "" {
		return nil, domainerrors.NewValidation("organizationId, parameterName")
	}

	code, err := s.nextParameterCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	param := &entity.QualityParameter{
		OrganizationID: input.OrganizationID,
		ParameterCode:  code,
		ParameterName:  input.ParameterName,
		UnitOfMeasure:  input.UnitOfMeasure,
		MinAcceptable:  input.MinAcceptable,
		MaxAcceptable:  input.MaxAcceptable,
		OptimalRange:   input.OptimalRange,
		TestFrequency:  input.TestFrequency,
		Status:         entity.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.paramRepo.Create(ctx, param); err != nil {
		return nil, fmt.Errorf("failed to create quality parameter: %w", err)
	}

	return s.toResponse(ctx, param), nil
}

// Update overwrites a quality parameter's mutable fields. The stored code is kept.
func (s *qualityParameterService) Update(ctx context.Context, id string, input *usecase.UpdateQualityParameterInput) (*usecase.QualityParameterResponse, error) {
	param, err := s.findParameter(ctx, id)
	if err != nil {
		return nil, err
	}

	param.ParameterName = input.ParameterName
	param.UnitOfMeasure = input.UnitOfMeasure
	param.MinAcceptable = input.MinAcceptable
	param.MaxAcceptable = input.MaxAcceptable
	param.OptimalRange = input.OptimalRange
	param.TestFrequency = input.TestFrequency
	param.UpdatedAt = time.Now()

	if err := s.paramRepo.Update(ctx, param); err != nil {
		return nil, fmt.Errorf("failed to update quality parameter: %w", err)
	}

	return s.toResponse(ctx, param), nil
}

// Delete removes a quality parameter outright
func (s *qualityParameterService) Delete(ctx context.Context, id string) error {
	if err := s.paramRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrQualityParameterNotFound) {
			return domainerrors.NewNotFound("quality parameter", id)
		}

		return fmt.Errorf("failed to delete quality parameter: %w", err)
	}

	return nil
}

// Activate resumes monitoring a parameter. Idempotent.
func (s *qualityParameterService) Activate(ctx context.Context, id string) (*usecase.QualityParameterResponse, error) {
	return s.setStatus(ctx, id, entity.StatusActive)
}

// Deactivate stops monitoring a parameter. Idempotent.
func (s *qualityParameterService) Deactivate(ctx context.Context, id string) (*usecase.QualityParameterResponse, error) {
	return s.setStatus(ctx, id, entity.StatusInactive)
}

func (s *qualityParameterService) setStatus(ctx context.Context, id string, status entity.Status) (*usecase.QualityParameterResponse, error) {
	param, err := s.findParameter(ctx, id)
	if err != nil {
		return nil, err
	}

	if param.Status != status {
		param.Status = status
		param.UpdatedAt = time.Now()

		if err := s.paramRepo.Update(ctx, param); err != nil {
			return nil, fmt.Errorf("failed to update quality parameter status: %w", err)
		}
	}

	return s.toResponse(ctx, param), nil
}

func (s *qualityParameterService) findParameter(ctx context.Context, id string) (*entity.QualityParameter, error) {
	param, err := s.paramRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQualityParameterNotFound) {
			return nil, domainerrors.NewNotFound("quality parameter", id)
		}

		return nil, fmt.Errorf("failed to find quality parameter by ID: %w", err)
	}

	return param, nil
}

func (s *qualityParameterService) nextParameterCode(ctx context.Context) (string, error) {
	params, err := s.paramRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to scan quality parameter codes: %w", err)
	}

	codes := make([]string, 0, len(params))
	for _, param := range params {
		codes = append(codes, param.ParameterCode)
	}

	return nextCode(codes, prefixQualityParameter), nil
}

func (s *qualityParameterService) toResponse(ctx context.Context, param *entity.QualityParameter) *usecase.QualityParameterResponse {
	org, _ := s.enricher.organizationAndUser(ctx, param.OrganizationID, "")

	return &usecase.QualityParameterResponse{
		QualityParameter: *param,
		Organization:     org,
	}
}

func (s *qualityParameterService) toResponseList(ctx context.Context, params []*entity.QualityParameter) []*usecase.QualityParameterResponse {
	return mapConcurrent(ctx, s.enricher.fanout, params, s.toResponse)
}
