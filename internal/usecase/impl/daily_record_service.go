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

type dailyRecordService struct {
	recordRepo repository.DailyRecordRepository
	enricher   *enricher
}

// NewDailyRecordService creates a new daily record service instance
func NewDailyRecordService(
	recordRepo repository.DailyRecordRepository,
	pointRepo repository.TestingPointRepository,
	refClient service.ReferenceClient,
	cfg *config.Config,
) usecase.DailyRecordUsecase {
	return &dailyRecordService{
		recordRepo: recordRepo,
		enricher:   newEnricher(refClient, pointRepo, cfg.Enrichment.Fanout),
	}
}

// GetAll retrieves every non-deleted daily record, enriched
func (s *dailyRecordService) GetAll(ctx context.Context) ([]*usecase.DailyRecordResponse, error) {
	records, err := s.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find daily records: %w", err)
	}

	return s.toResponseList(ctx, records), nil
}

// GetByID retrieves one daily record, tombstoned or not
func (s *dailyRecordService) GetByID(ctx context.Context, id string) (*usecase.DailyRecordResponse, error) {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, record), nil
}

// Create records a daily measurement and assigns the next sequential code
// for its chemical type
func (s *dailyRecordService) Create(ctx context.Context, input *usecase.CreateDailyRecordInput) (*usecase.DailyRecordResponse, error) {
	if input.OrganizationID == "" || input.RecordType == "" || input.RecordDate.IsZero() {
		return nil, domainerrors.NewValidation("organizationId, recordType, recordDate")
	}

	code, err := s.nextRecordCode(ctx, input.RecordType)
	if err != nil {
		return nil, err
	}

	record := &entity.DailyRecord{
		OrganizationID:   input.OrganizationID,
		RecordCode:       code,
		RecordType:       input.RecordType,
		TestingPointIDs:  normalizeIDs(input.TestingPointIDs),
		RecordDate:       input.RecordDate,
		Level:            input.Level,
		Acceptable:       input.Acceptable,
		ActionRequired:   input.ActionRequired,
		RecordedByUserID: input.RecordedByUserID,
		Observations:     input.Observations,
		Amount:           input.Amount,
		CreatedAt:        time.Now(),
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create daily record: %w", err)
	}

	return s.toResponse(ctx, record), nil
}

// Update overwrites a daily record and regenerates its code using the
// stored record type
func (s *dailyRecordService) Update(ctx context.Context, id string, input *usecase.UpdateDailyRecordInput) (*usecase.DailyRecordResponse, error) {
	if input.OrganizationID == "" || input.RecordDate.IsZero() {
		return nil, domainerrors.NewValidation("organizationId, recordDate")
	}

	record, err := s.findRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	code, err := s.nextRecordCode(ctx, record.RecordType)
	if err != nil {
		return nil, err
	}

	record.OrganizationID = input.OrganizationID
	record.RecordCode = code
	record.TestingPointIDs = normalizeIDs(input.TestingPointIDs)
	record.RecordDate = input.RecordDate
	record.Level = input.Level
	record.Acceptable = input.Acceptable
	record.ActionRequired = input.ActionRequired
	record.RecordedByUserID = input.RecordedByUserID
	record.Observations = input.Observations
	record.Amount = input.Amount

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update daily record: %w", err)
	}

	return s.toResponse(ctx, record), nil
}

// Delete sets the tombstone on a daily record
func (s *dailyRecordService) Delete(ctx context.Context, id string) error {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return err
	}

	if record.Deleted() {
		return nil
	}

	now := time.Now()
	record.DeletedAt = &now

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to delete daily record: %w", err)
	}

	return nil
}

// DeletePhysically removes a daily record outright
func (s *dailyRecordService) DeletePhysically(ctx context.Context, id string) error {
	if err := s.recordRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDailyRecordNotFound) {
			return domainerrors.NewNotFound("daily record", id)
		}

		return fmt.Errorf("failed to physically delete daily record: %w", err)
	}

	return nil
}

// Restore clears the tombstone on a deleted daily record
func (s *dailyRecordService) Restore(ctx context.Context, id string) (*usecase.DailyRecordResponse, error) {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if !record.Deleted() {
		return nil, domainerrors.ErrRestoreNotNeeded
	}

	record.DeletedAt = nil

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to restore daily record: %w", err)
	}

	return s.toResponse(ctx, record), nil
}

func (s *dailyRecordService) findRecord(ctx context.Context, id string) (*entity.DailyRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDailyRecordNotFound) {
			return nil, domainerrors.NewNotFound("daily record", id)
		}

		return nil, fmt.Errorf("failed to find daily record by ID: %w", err)
	}

	return record, nil
}

// nextRecordCode scans every code ever issued for the chemical type,
// tombstoned records included, so a code is never reused.
func (s *dailyRecordService) nextRecordCode(ctx context.Context, recordType string) (string, error) {
	records, err := s.recordRepo.FindAllByRecordType(ctx, recordType)
	if err != nil {
		return "", fmt.Errorf("failed to scan daily record codes: %w", err)
	}

	codes := make([]string, 0, len(records))
	for _, record := range records {
		codes = append(codes, record.RecordCode)
	}

	return nextCode(codes, dailyRecordPrefix(recordType)), nil
}

func (s *dailyRecordService) toResponse(ctx context.Context, record *entity.DailyRecord) *usecase.DailyRecordResponse {
	var (
		org    service.Organization
		user   service.User
		points []*entity.TestingPoint
		wg     sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		org, user = s.enricher.organizationAndUser(ctx, record.OrganizationID, record.RecordedByUserID)
	}()
	go func() {
		defer wg.Done()
		points = s.enricher.resolveTestingPoints(ctx, record.TestingPointIDs)
	}()
	wg.Wait()

	return &usecase.DailyRecordResponse{
		DailyRecord:   *record,
		Organization:  org,
		RecordedBy:    user,
		TestingPoints: points,
	}
}

func (s *dailyRecordService) toResponseList(ctx context.Context, records []*entity.DailyRecord) []*usecase.DailyRecordResponse {
	return mapConcurrent(ctx, s.enricher.fanout, records, s.toResponse)
}
