// Package impl contains the application service implementations.
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

type testingPointService struct {
	pointRepo repository.TestingPointRepository
	enricher  *enricher
}

// NewTestingPointService creates a new testing point service instance
func NewTestingPointService(
	pointRepo repository.TestingPointRepository,
	refClient service.ReferenceClient,
	cfg *config.Config,
) usecase.TestingPointUsecase {
	return &testingPointService{
		pointRepo: pointRepo,
		enricher:  newEnricher(refClient, pointRepo, cfg.Enrichment.Fanout),
	}
}

// GetAll retrieves every sampling point with organization data attached
func (s *testingPointService) GetAll(ctx context.Context) ([]*usecase.TestingPointResponse, error) {
	points, err := s.pointRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find testing points: %w", err)
	}

	return s.toResponseList(ctx, points), nil
}

// GetAllActive retrieves the sampling points currently in service
func (s *testingPointService) GetAllActive(ctx context.Context) ([]*usecase.TestingPointResponse, error) {
	points, err := s.pointRepo.FindAllByStatus(ctx, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to find active testing points: %w", err)
	}

	return s.toResponseList(ctx, points), nil
}

// GetAllInactive retrieves the sampling points taken out of service
func (s *testingPointService) GetAllInactive(ctx context.Context) ([]*usecase.TestingPointResponse, error) {
	points, err := s.pointRepo.FindAllByStatus(ctx, entity.StatusInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to find inactive testing points: %w", err)
	}

	return s.toResponseList(ctx, points), nil
}

// GetByID retrieves one sampling point
func (s *testingPointService) GetByID(ctx context.Context, id string) (*usecase.TestingPointResponse, error) {
	point, err := s.findPoint(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, point), nil
}

// Create registers a sampling point and assigns the next sequential code
// for its point type
func (s *testingPointService) Create(ctx context.Context, input *usecase.CreateTestingPointInput) (*usecase.TestingPointResponse, error) {
	if input.OrganizationID == "" || input.PointName == "" {
		return nil, domainerrors.NewValidation("organizationId, pointName")
	}

	code, err := s.nextPointCode(ctx, input.PointType)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	point := &entity.TestingPoint{
		OrganizationID:      input.OrganizationID,
		PointCode:           code,
		PointName:           input.PointName,
		PointType:           input.PointType,
		ZoneID:              input.ZoneID,
		LocationDescription: input.LocationDescription,
		Street:              input.Street,
		Coordinates:         input.Coordinates,
		Status:              entity.StatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.pointRepo.Create(ctx, point); err != nil {
		return nil, fmt.Errorf("failed to create testing point: %w", err)
	}

	return s.toResponse(ctx, point), nil
}

// Update overwrites a sampling point's mutable fields. The stored code is kept.
func (s *testingPointService) Update(ctx context.Context, id string, input *usecase.UpdateTestingPointInput) (*usecase.TestingPointResponse, error) {
	point, err := s.findPoint(ctx, id)
	if err != nil {
		return nil, err
	}

	point.PointName = input.PointName
	point.PointType = input.PointType
	point.ZoneID = input.ZoneID
	point.LocationDescription = input.LocationDescription
	point.Street = input.Street
	point.Coordinates = input.Coordinates
	point.UpdatedAt = time.Now()

	if err := s.pointRepo.Update(ctx, point); err != nil {
		return nil, fmt.Errorf("failed to update testing point: %w", err)
	}

	return s.toResponse(ctx, point), nil
}

// Delete removes a sampling point outright
func (s *testingPointService) Delete(ctx context.Context, id string) error {
	if err := s.pointRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTestingPointNotFound) {
			return domainerrors.NewNotFound("testing point", id)
		}

		return fmt.Errorf("failed to delete testing point: %w", err)
	}

	return nil
}

// Activate puts a sampling point back in service. Idempotent.
func (s *testingPointService) Activate(ctx context.Context, id string) (*usecase.TestingPointResponse, error) {
	return s.setStatus(ctx, id, entity.StatusActive)
}

// Deactivate takes a sampling point out of service. Idempotent.
func (s *testingPointService) Deactivate(ctx context.Context, id string) (*usecase.TestingPointResponse, error) {
	return s.setStatus(ctx, id, entity.StatusInactive)
}

func (s *testingPointService) setStatus(ctx context.Context, id string, status entity.Status) (*usecase.TestingPointResponse, error) {
	point, err := s.findPoint(ctx, id)
	if err != nil {
		return nil, err
	}

	if point.Status != status {
		point.Status = status
		point.UpdatedAt = time.Now()

		if err := s.pointRepo.Update(ctx, point); err != nil {
			return nil, fmt.Errorf("failed to update testing point status: %w", err)
		}
	}

	return s.toResponse(ctx, point), nil
}

func (s *testingPointService) findPoint(ctx context.Context, id string) (*entity.TestingPoint, error) {
	point, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTestingPointNotFound) {
			return nil, domainerrors.NewNotFound("testing point", id)
		}

		return nil, fmt.Errorf("failed to find testing point by ID: %w", err)
	}

	return point, nil
}

// nextPointCode scans every stored code and derives the next one for the
// point type's prefix.
func (s *testingPointService) nextPointCode(ctx context.Context, pointType string) (string, error) {
	points, err := s.pointRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to scan testing point codes: %w", err)
	}

	codes := make([]string, 0, len(points))
	for _, point := range points {
		codes = append(codes, point.PointCode)
	}

	return nextCode(codes, testingPointPrefix(pointType)), nil
}

func (s *testingPointService) toResponse(ctx context.Context, point *entity.TestingPoint) *usecase.TestingPointResponse {
	org, _ := s.enricher.organizationAndUser(ctx, point.OrganizationID, "")

	return &usecase.TestingPointResponse{
		TestingPoint: *point,
		Organization: org,
	}
}

func (s *testingPointService) toResponseList(ctx context.Context, points []*entity.TestingPoint) []*usecase.TestingPointResponse {
	return mapConcurrent(ctx, s.enricher.fanout, points, s.toResponse)
}
