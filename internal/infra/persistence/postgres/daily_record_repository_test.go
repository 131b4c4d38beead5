package postgres

import (
	"context"
	"testing"
	"time"

	"aquatrace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyRecordRepository_FindAllByRecordType_IncludesTombstoned(t *testing.T) {
	repo := NewDailyRecordRepository(setupTestDB(t))
	ctx := context.Background()

	deletedAt := time.Now().UTC()
	records := []*entity.DailyRecord{
		{OrganizationID: "org-1", RecordCode: "CL001", RecordType: entity.RecordTypeChlorine, Level: 0.5},
		{OrganizationID: "org-1", RecordCode: "CL002", RecordType: entity.RecordTypeChlorine, Level: 0.7, DeletedAt: &deletedAt},
		{OrganizationID: "org-1", RecordCode: "SA001", RecordType: entity.RecordTypeSulfate, Level: 120},
	}
	for _, record := range records {
		require.NoError(t, repo.Create(ctx, record))
	}

	chlorine, err := repo.FindAllByRecordType(ctx, entity.RecordTypeChlorine)
	require.NoError(t, err)
	require.Len(t, chlorine, 2)
	assert.Equal(t, "CL001", chlorine[0].RecordCode)
	assert.Equal(t, "CL002", chlorine[1].RecordCode)

	visible, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestDailyRecordRepository_RoundTrip(t *testing.T) {
	repo := NewDailyRecordRepository(setupTestDB(t))
	ctx := context.Background()

	record := &entity.DailyRecord{
		OrganizationID:   "org-1",
		RecordCode:       "CL001",
		RecordType:       entity.RecordTypeChlorine,
		TestingPointIDs:  []string{"tp-1"},
		RecordDate:       time.Date(2026, 4, 2, 7, 30, 0, 0, time.UTC),
		Level:            0.45,
		Acceptable:       true,
		RecordedByUserID: "user-1",
		Amount:           2.5,
	}
	require.NoError(t, repo.Create(ctx, record))

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tp-1"}, found.TestingPointIDs)
	assert.Equal(t, 0.45, found.Level)
	assert.True(t, found.Acceptable)
	assert.False(t, found.ActionRequired)
}
