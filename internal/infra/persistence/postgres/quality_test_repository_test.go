package postgres

import (
	"context"
	"testing"
	"time"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityTestRepository_RoundTripResults(t *testing.T) {
	repo := NewQualityTestRepository(setupTestDB(t))
	ctx := context.Background()

	test := &entity.QualityTest{
		OrganizationID:  "org-1",
		TestCode:        "ANL001",
		TestingPointIDs: []string{"tp-1", "tp-2"},
		TestDate:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		TestType:        "RUTINARIO",
		TestedByUserID:  "user-1",
		Status:          "COMPLETED",
		Results: []entity.TestResult{
			{ParameterID: "prm-1", ParameterCode: "PRM001", MeasuredValue: 0.6, Unit: "mg/L", Status: entity.ResultAcceptable},
			{ParameterID: "prm-2", ParameterCode: "PRM002", MeasuredValue: 9.1, Unit: "NTU", Status: entity.ResultCritical, Observations: "turbidez elevada"},
		},
	}

	require.NoError(t, repo.Create(ctx, test))

	found, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tp-1", "tp-2"}, found.TestingPointIDs)
	require.Len(t, found.Results, 2)
	assert.Equal(t, entity.ResultCritical, found.Results[1].Status)
	assert.Equal(t, "turbidez elevada", found.Results[1].Observations)
}

func TestQualityTestRepository_FindAllExcludesTombstoned(t *testing.T) {
	repo := NewQualityTestRepository(setupTestDB(t))
	ctx := context.Background()

	live := &entity.QualityTest{OrganizationID: "org-1", TestCode: "ANL001", Status: "COMPLETED"}
	require.NoError(t, repo.Create(ctx, live))

	deletedAt := time.Now().UTC()
	dead := &entity.QualityTest{OrganizationID: "org-1", TestCode: "ANL002", Status: "COMPLETED", DeletedAt: &deletedAt}
	require.NoError(t, repo.Create(ctx, dead))

	visible, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "ANL001", visible[0].TestCode)

	all, err := repo.FindAllIncludingDeleted(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestQualityTestRepository_FindByID_ResolvesTombstoned(t *testing.T) {
	repo := NewQualityTestRepository(setupTestDB(t))
	ctx := context.Background()

	deletedAt := time.Now().UTC()
	test := &entity.QualityTest{OrganizationID: "org-1", TestCode: "ANL001", DeletedAt: &deletedAt}
	require.NoError(t, repo.Create(ctx, test))

	found, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	assert.True(t, found.Deleted())
}

func TestQualityTestRepository_UpdateClearsTombstone(t *testing.T) {
	repo := NewQualityTestRepository(setupTestDB(t))
	ctx := context.Background()

	deletedAt := time.Now().UTC()
	test := &entity.QualityTest{OrganizationID: "org-1", TestCode: "ANL001", DeletedAt: &deletedAt}
	require.NoError(t, repo.Create(ctx, test))

	test.DeletedAt = nil
	require.NoError(t, repo.Update(ctx, test))

	found, err := repo.FindByID(ctx, test.ID)
	require.NoError(t, err)
	assert.False(t, found.Deleted())
}

func TestQualityTestRepository_DeleteByID(t *testing.T) {
	repo := NewQualityTestRepository(setupTestDB(t))
	ctx := context.Background()

	test := &entity.QualityTest{OrganizationID: "org-1", TestCode: "ANL001"}
	require.NoError(t, repo.Create(ctx, test))

	require.NoError(t, repo.DeleteByID(ctx, test.ID))
	assert.ErrorIs(t, repo.DeleteByID(ctx, test.ID), repository.ErrQualityTestNotFound)
}
