package impl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aquatrace/config"
	"aquatrace/internal/domain/entity"
	domainerrors "aquatrace/internal/domain/errors"
	"aquatrace/internal/domain/repository"
	"aquatrace/internal/domain/service"
	"aquatrace/internal/errors"
	"aquatrace/internal/usecase"
)

type qualityTestService struct {
	testRepo repository.QualityTestRepository
	enricher *enricher
}

// NewQualityTestService creates a new quality test service instance
func NewQualityTestService(
	testRepo repository.QualityTestRepository,
	pointRepo repository.TestingPointRepository,
	refClient service.ReferenceClient,
	cfg *config.Config,
) usecase.QualityTestUsecase {
	return &qualityTestService{
		testRepo: testRepo,
		enricher: newEnricher(refClient, pointRepo, cfg.Enrichment.Fanout),
	}
}

// GetAll retrieves every non-deleted quality test, enriched
func (s *qualityTestService) GetAll(ctx context.Context) ([]*usecase.QualityTestResponse, error) {
	tests, err := s.testRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find quality tests: %w", err)
	}

	return s.toResponseList(ctx, tests), nil
}

// GetAllByOrganization retrieves the non-deleted quality tests of one organization
func (s *qualityTestService) GetAllByOrganization(ctx context.Context, organizationID string) ([]*usecase.QualityTestResponse, error) {
	if organizationID == "" {
		return nil, domainerrors.NewValidation("organizationId")
	}

	tests, err := s.testRepo.FindAllByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find quality tests by organization: %w", err)
	}

	return s.toResponseList(ctx, tests), nil
}

// GetByID retrieves one quality test, tombstoned or not
func (s *qualityTestService) GetByID(ctx context.Context, id string) (*usecase.QualityTestResponse, error) {
	test, err := s.findTest(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, test), nil
}

// GetByIDScoped retrieves one quality test only when it belongs to the
// given organization
func (s *qualityTestService) GetByIDScoped(ctx context.Context, id, organizationID string) (*usecase.QualityTestResponse, error) {
	test, err := s.findTest(ctx, id)
	if err != nil {
		return nil, err
	}

	if test.OrganizationID != organizationID {
		return nil, domainerrors.NewNotFound("quality test", id)
	}

	return s.toResponse(ctx, test), nil
}

// Create records a quality test and assigns the next sequential ANL code
func (s *qualityTestService) Create(ctx context.Context, input *usecase.CreateQualityTestInput) (*usecase.QualityTestResponse, error) {
	if input.OrganizationID == "" || input.TestDate.IsZero() {
		return nil, domainerrors.NewValidation("organizationId, testDate")
	}

	code, err := s.nextTestCode(ctx)
	if err != nil {
		return nil, err
	}

	test := &entity.QualityTest{
		OrganizationID:      input.OrganizationID,
		TestCode:            code,
		TestingPointIDs:     normalizeIDs(input.TestingPointIDs),
		TestDate:            input.TestDate,
		TestType:            input.TestType,
		TestedByUserID:      input.TestedByUserID,
		WeatherConditions:   input.WeatherConditions,
		WaterTemperature:    input.WaterTemperature,
		GeneralObservations: input.GeneralObservations,
		Status:              "COMPLETED",
		Results:             normalizeResults(input.Results),
		CreatedAt:           time.Now(),
	}

	if err := s.testRepo.Create(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to create quality test: %w", err)
	}

	return s.toResponse(ctx, test), nil
}

// Update overwrites a quality test and regenerates its code
func (s *qualityTestService) Update(ctx context.Context, id string, input *usecase.UpdateQualityTestInput) (*usecase.QualityTestResponse, error) {
	if input.OrganizationID == "" || input.TestDate.IsZero() {
		return nil, domainerrors.NewValidation("organizationId, testDate")
	}

	test, err := s.findTest(ctx, id)
	if err != nil {
		return nil, err
	}

	code, err := s.nextTestCode(ctx)
	if err != nil {
		return nil, err
	}

	test.OrganizationID = input.OrganizationID
	test.TestCode = code
	test.TestingPointIDs = normalizeIDs(input.TestingPointIDs)
	test.TestDate = input.TestDate
	test.TestType = input.TestType
	test.TestedByUserID = input.TestedByUserID
	test.WeatherConditions = input.WeatherConditions
	test.WaterTemperature = input.WaterTemperature
	test.GeneralObservations = input.GeneralObservations
	test.Results = normalizeResults(input.Results)

	if err := s.testRepo.Update(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to update quality test: %w", err)
	}

	return s.toResponse(ctx, test), nil
}

// Delete sets the tombstone on a quality test
func (s *qualityTestService) Delete(ctx context.Context, id string) error {
	test, err := s.findTest(ctx, id)
	if err != nil {
		return err
	}

	if test.Deleted() {
		return nil
	}

	now := time.Now()
	test.DeletedAt = &now

	if err := s.testRepo.Update(ctx, test); err != nil {
		return fmt.Errorf("failed to delete quality test: %w", err)
	}

	return nil
}

// DeletePhysically removes a quality test outright
func (s *qualityTestService) DeletePhysically(ctx context.Context, id string) error {
	if err := s.testRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrQualityTestNotFound) {
			return domainerrors.NewNotFound("quality test", id)
		}

		return fmt.Errorf("failed to physically delete quality test: %w", err)
	}

	return nil
}

// Restore clears the tombstone on a deleted quality test
func (s *qualityTestService) Restore(ctx context.Context, id string) (*usecase.QualityTestResponse, error) {
	test, err := s.findTest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !test.Deleted() {
		return nil, domainerrors.ErrRestoreNotNeeded
	}

	test.DeletedAt = nil

	if err := s.testRepo.Update(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to restore quality test: %w", err)
	}

	return s.toResponse(ctx, test), nil
}

func (s *qualityTestService) findTest(ctx context.Context, id string) (*entity.QualityTest, error) {
	test, err := s.testRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQualityTestNotFound) {
			return nil, domainerrors.NewNotFound("quality test", id)
		}

		return nil, fmt.Errorf("failed to find quality test by ID: %w", err)
	}

	return test, nil
}

// nextTestCode scans every code ever issued, tombstoned records included,
// so a code is never reused.
func (s *qualityTestService) nextTestCode(ctx context.Context) (string, error) {
	tests, err := s.testRepo.FindAllIncludingDeleted(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to scan quality test codes: %w", err)
	}

	codes := make([]string, 0, len(tests))
	for _, test := range tests {
		codes = append(codes, test.TestCode)
	}

	return nextCode(codes, prefixQualityTest), nil
}

func (s *qualityTestService) toResponse(ctx context.Context, test *entity.QualityTest) *usecase.QualityTestResponse {
	var (
		org    service.Organization
		user   service.User
		points []*entity.TestingPoint
		wg     sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		org, user = s.enricher.organizationAndUser(ctx, test.OrganizationID, test.TestedByUserID)
	}()
	go func() {
		defer wg.Done()
		points = s.enricher.resolveTestingPoints(ctx, test.TestingPointIDs)
	}()
	wg.Wait()

	return &usecase.QualityTestResponse{
		QualityTest:   *test,
		Organization:  org,
		TestedBy:      user,
		TestingPoints: points,
	}
}

func (s *qualityTestService) toResponseList(ctx context.Context, tests []*entity.QualityTest) []*usecase.QualityTestResponse {
	return mapConcurrent(ctx, s.enricher.fanout, tests, s.toResponse)
}

func normalizeIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}

func normalizeResults(results []entity.TestResult) []entity.TestResult {
	if results == nil {
		return []entity.TestResult{}
	}

	return results
}
