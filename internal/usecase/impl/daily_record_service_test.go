package impl

import (
	"context"
	"testing"
	"time"

	"aquatrace/internal/domain/entity"
	domainerrors "aquatrace/internal/domain/errors"
	"aquatrace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDailyRecordService() usecase.DailyRecordUsecase {
	return NewDailyRecordService(&fakeDailyRecordRepo{}, &fakeTestingPointRepo{}, &fakeReferenceClient{}, newTestConfig())
}

func recordDate() time.Time {
	return time.Date(2026, 7, 1, 6, 30, 0, 0, time.UTC)
}

func TestDailyRecordService_Create_SequencesPerRecordType(t *testing.T) {
	svc := newDailyRecordService()
	ctx := context.Background()

	chlorine, err := svc.Create(ctx, &usecase.CreateDailyRecordInput{
		OrganizationID: "org-1",
		RecordType:     entity.RecordTypeChlorine,
		RecordDate:     recordDate(),
		Level:          0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "CL001", chlorine.RecordCode)

	sulfate, err := svc.Create(ctx, &usecase.CreateDailyRecordInput{
		OrganizationID: "org-1",
		RecordType:     entity.RecordTypeSulfate,
		RecordDate:     recordDate(),
		Level:          110,
	})
	require.NoError(t, err)
	assert.Equal(t, "SA001", sulfate.RecordCode)

	second, err := svc.Create(ctx, &usecase.CreateDailyRecordInput{
		OrganizationID: "org-1",
		RecordType:     entity.RecordTypeChlorine,
		RecordDate:     recordDate(),
		Level:          0.6,
	})
	require.NoError(t, err)
	assert.Equal(t, "CL002", second.RecordCode)
}

func TestDailyRecordService_Create_ValidatesRequiredFields(t *testing.T) {
	svc := newDailyRecordService()

	_, err := svc.Create(context.Background(), &usecase.CreateDailyRecordInput{
		OrganizationID: "org-1",
		RecordDate:     recordDate(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDailyRecordService_Update_RegeneratesCodeWithStoredType(t *testing.T) {
	svc := newDailyRecordService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateDailyRecordInput{
		OrganizationID: "org-1",
		RecordType:     entity.RecordTypeChlorine,
		RecordDate:     recordDate(),
	})
	require.NoError(t, err)
	require.Equal(t, "CL001", created.RecordCode)

	updated, err := svc.Update(ctx, created.ID, &usecase.UpdateDailyRecordInput{
		OrganizationID: "org-1",
		RecordDate:     recordDate().Add(24 * time.Hour),
		Level:          0.8,
	})
	require.NoError(t, err)
	assert.Equal(t, "CL002", updated.RecordCode)
	assert.Equal(t, entity.RecordTypeChlorine, updated.RecordType)
}

func TestDailyRecordService_SoftDeleteRestore(t *testing.T) {
	svc := newDailyRecordService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateDailyRecordInput{
		OrganizationID: "org-1",
		RecordType:     entity.RecordTypeSulfate,
		RecordDate:     recordDate(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	visible, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, visible)

	restored, err := svc.Restore(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, restored.Deleted())

	_, err = svc.Restore(ctx, created.ID)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RESTORE_NOT_NEEDED", appErr.ErrorCode())
}

func TestDailyRecordService_CodesNeverReusedAfterSoftDelete(t *testing.T) {
	svc := newDailyRecordService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateDailyRecordInput{
		OrganizationID: "org-1",
		RecordType:     entity.RecordTypeChlorine,
		RecordDate:     recordDate(),
	})
	require.NoError(t, err)
	require.Equal(t, "CL001", created.RecordCode)
	require.NoError(t, svc.Delete(ctx, created.ID))

	next, err := svc.Create(ctx, &usecase.CreateDailyRecordInput{
		OrganizationID: "org-1",
		RecordType:     entity.RecordTypeChlorine,
		RecordDate:     recordDate(),
	})
	require.NoError(t, err)
	assert.Equal(t, "CL002", next.RecordCode)
}

func TestDailyRecordService_DeletePhysically_NotFound(t *testing.T) {
	svc := newDailyRecordService()

	err := svc.DeletePhysically(context.Background(), "missing")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}
