package postgres

import (
	"context"
	"testing"

	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestingPointRepository_CreateAndFindByID(t *testing.T) {
	repo := NewTestingPointRepository(setupTestDB(t))
	ctx := context.Background()

	point := &entity.TestingPoint{
		OrganizationID:      "org-1",
		PointCode:           "PM001",
		PointName:           "Reservorio Central",
		PointType:           "RESERVORIO",
		ZoneID:              "zone-1",
		LocationDescription: "Entrada principal",
		Coordinates:         entity.Coordinates{Latitude: -12.05, Longitude: -77.03},
		Status:              entity.StatusActive,
	}

	require.NoError(t, repo.Create(ctx, point))
	require.NotEmpty(t, point.ID)

	found, err := repo.FindByID(ctx, point.ID)
	require.NoError(t, err)
	assert.Equal(t, "PM001", found.PointCode)
	assert.Equal(t, entity.Coordinates{Latitude: -12.05, Longitude: -77.03}, found.Coordinates)
	assert.Equal(t, entity.StatusActive, found.Status)
}

func TestTestingPointRepository_FindByID_NotFound(t *testing.T) {
	repo := NewTestingPointRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrTestingPointNotFound)
}

func TestTestingPointRepository_FindAllByStatus(t *testing.T) {
	repo := NewTestingPointRepository(setupTestDB(t))
	ctx := context.Background()

	active := &entity.TestingPoint{
		OrganizationID: "org-1",
		PointCode:      "PM001",
		PointName:      "Casa 12",
		PointType:      "DOMICILIO",
		Status:         entity.StatusActive,
	}
	inactive := &entity.TestingPoint{
		OrganizationID: "org-1",
		PointCode:      "PM002",
		PointName:      "Casa 13",
		PointType:      "DOMICILIO",
		Status:         entity.StatusInactive,
	}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	points, err := repo.FindAllByStatus(ctx, entity.StatusActive)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, active.ID, points[0].ID)
}

func TestTestingPointRepository_Update(t *testing.T) {
	repo := NewTestingPointRepository(setupTestDB(t))
	ctx := context.Background()

	point := &entity.TestingPoint{
		OrganizationID: "org-1",
		PointCode:      "PR001",
		PointName:      "Reservorio Norte",
		PointType:      "RESERVORIO",
		Status:         entity.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, point))

	point.Status = entity.StatusInactive
	point.PointName = "Reservorio Norte (fuera de servicio)"
	require.NoError(t, repo.Update(ctx, point))

	found, err := repo.FindByID(ctx, point.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, found.Status)
	assert.Equal(t, "Reservorio Norte (fuera de servicio)", found.PointName)
}

func TestTestingPointRepository_DeleteByID(t *testing.T) {
	repo := NewTestingPointRepository(setupTestDB(t))
	ctx := context.Background()

	point := &entity.TestingPoint{
		OrganizationID: "org-1",
		PointCode:      "PD001",
		PointName:      "Red Sur",
		PointType:      "RED_DISTRIBUCION",
		Status:         entity.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, point))

	require.NoError(t, repo.DeleteByID(ctx, point.ID))

	_, err := repo.FindByID(ctx, point.ID)
	assert.ErrorIs(t, err, repository.ErrTestingPointNotFound)

	assert.ErrorIs(t, repo.DeleteByID(ctx, point.ID), repository.ErrTestingPointNotFound)
}

func TestTestingPointRepository_FindAllByOrganizationID(t *testing.T) {
	repo := NewTestingPointRepository(setupTestDB(t))
	ctx := context.Background()

	for _, p := range []*entity.TestingPoint{
		{OrganizationID: "org-1", PointCode: "PM001", PointName: "a", PointType: "DOMICILIO", Status: entity.StatusActive},
		{OrganizationID: "org-2", PointCode: "PM001", PointName: "b", PointType: "DOMICILIO", Status: entity.StatusActive},
	} {
		require.NoError(t, repo.Create(ctx, p))
	}

	points, err := repo.FindAllByOrganizationID(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "org-1", points[0].OrganizationID)
}
