package postgres

import (
	"context"
	"testing"
	"time"

	"aquatrace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityIncidentRepository_FindAllByResolved(t *testing.T) {
	repo := NewQualityIncidentRepository(setupTestDB(t))
	ctx := context.Background()

	deletedAt := time.Now().UTC()
	resolvedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	incidents := []*entity.QualityIncident{
		{OrganizationID: "org-1", IncidentCode: "INC001", IncidentType: "CLORO_BAJO", Severity: entity.SeverityHigh},
		{OrganizationID: "org-1", IncidentCode: "INC002", IncidentType: "TURBIDEZ_ALTA", Severity: entity.SeverityMedium, Resolved: true, ResolutionDate: &resolvedAt, ResolvedByUserID: "user-2"},
		{OrganizationID: "org-1", IncidentCode: "INC003", IncidentType: "CONTAMINACION", Severity: entity.SeverityCritical, DeletedAt: &deletedAt},
	}
	for _, incident := range incidents {
		require.NoError(t, repo.Create(ctx, incident))
	}

	open, err := repo.FindAllByResolved(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "INC001", open[0].IncidentCode)

	resolved, err := repo.FindAllByResolved(ctx, true)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "INC002", resolved[0].IncidentCode)
	require.NotNil(t, resolved[0].ResolutionDate)
	assert.Equal(t, "user-2", resolved[0].ResolvedByUserID)

	all, err := repo.FindAllIncludingDeleted(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestQualityIncidentRepository_RoundTripZones(t *testing.T) {
	repo := NewQualityIncidentRepository(setupTestDB(t))
	ctx := context.Background()

	incident := &entity.QualityIncident{
		OrganizationID:   "org-1",
		IncidentCode:     "INC001",
		IncidentType:     "CONTAMINACION",
		TestingPointID:   "tp-1",
		DetectionDate:    time.Date(2026, 5, 3, 6, 0, 0, 0, time.UTC),
		Severity:         entity.SeverityCritical,
		Description:      "agua turbia en la zona norte",
		AffectedZones:    []string{"zone-1", "zone-2"},
		ImmediateActions: "corte de suministro",
		ReportedByUserID: "user-1",
	}
	require.NoError(t, repo.Create(ctx, incident))

	found, err := repo.FindByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"zone-1", "zone-2"}, found.AffectedZones)
	assert.False(t, found.Resolved)
	assert.Nil(t, found.ResolutionDate)
}
