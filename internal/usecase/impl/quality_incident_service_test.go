package impl

import (
	"context"
	"testing"
	"time"

	"aquatrace/internal/domain/entity"
	domainerrors "aquatrace/internal/domain/errors"
	"aquatrace/internal/domain/service"
	"aquatrace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQualityIncidentService(refClient service.ReferenceClient) usecase.QualityIncidentUsecase {
	return NewQualityIncidentService(&fakeQualityIncidentRepo{}, &fakeTestingPointRepo{}, refClient, newTestConfig())
}

func detectionDate() time.Time {
	return time.Date(2026, 8, 5, 14, 0, 0, 0, time.UTC)
}

func TestQualityIncidentService_Create_AssignsSequentialCodes(t *testing.T) {
	svc := newQualityIncidentService(&fakeReferenceClient{})
	ctx := context.Background()

	first, err := svc.Create(ctx, &usecase.CreateQualityIncidentInput{
		OrganizationID: "org-1",
		IncidentType:   "CLORO_BAJO",
		DetectionDate:  detectionDate(),
		Severity:       entity.SeverityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, "INC001", first.IncidentCode)
	assert.False(t, first.Resolved)

	second, err := svc.Create(ctx, &usecase.CreateQualityIncidentInput{
		OrganizationID: "org-1",
		IncidentType:   "TURBIDEZ_ALTA",
		DetectionDate:  detectionDate(),
	})
	require.NoError(t, err)
	assert.Equal(t, "INC002", second.IncidentCode)
}

func TestQualityIncidentService_Create_ValidatesRequiredFields(t *testing.T) {
	svc := newQualityIncidentService(&fakeReferenceClient{})

	_, err := svc.Create(context.Background(), &usecase.CreateQualityIncidentInput{
		OrganizationID: "org-1",
		DetectionDate:  detectionDate(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestQualityIncidentService_Update_KeepsCodeAndResolves(t *testing.T) {
	svc := newQualityIncidentService(&fakeReferenceClient{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateQualityIncidentInput{
		OrganizationID: "org-1",
		IncidentType:   "CLORO_BAJO",
		DetectionDate:  detectionDate(),
	})
	require.NoError(t, err)

	resolvedAt := detectionDate().Add(48 * time.Hour)
	updated, err := svc.Update(ctx, created.ID, &usecase.UpdateQualityIncidentInput{
		IncidentType:      "CLORO_BAJO",
		DetectionDate:     detectionDate(),
		CorrectiveActions: "recloracion del reservorio",
		Resolved:          true,
		ResolutionDate:    &resolvedAt,
		ResolvedByUserID:  "user-2",
	})
	require.NoError(t, err)
	assert.Equal(t, created.IncidentCode, updated.IncidentCode)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.Resolved)
}

func TestQualityIncidentService_ResolvedFilters(t *testing.T) {
	svc := newQualityIncidentService(&fakeReferenceClient{})
	ctx := context.Background()

	open, err := svc.Create(ctx, &usecase.CreateQualityIncidentInput{
		OrganizationID: "org-1",
		IncidentType:   "CLORO_BAJO",
		DetectionDate:  detectionDate(),
	})
	require.NoError(t, err)

	toClose, err := svc.Create(ctx, &usecase.CreateQualityIncidentInput{
		OrganizationID: "org-1",
		IncidentType:   "TURBIDEZ_ALTA",
		DetectionDate:  detectionDate(),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, toClose.ID, &usecase.UpdateQualityIncidentInput{
		IncidentType:  "TURBIDEZ_ALTA",
		DetectionDate: detectionDate(),
		Resolved:      true,
	})
	require.NoError(t, err)

	unresolved, err := svc.GetUnresolved(ctx)
	require.NoError(t, err)
	require.Len(t, unresolved, 1)
	assert.Equal(t, open.ID, unresolved[0].ID)

	resolved, err := svc.GetResolved(ctx)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, toClose.ID, resolved[0].ID)
}

func TestQualityIncidentService_Create_AcceptsResolvedIncident(t *testing.T) {
	svc := newQualityIncidentService(&fakeReferenceClient{})
	ctx := context.Background()

	resolutionDate := detectionDate().Add(48 * time.Hour)
	created, err := svc.Create(ctx, &usecase.CreateQualityIncidentInput{
		OrganizationID:    "org-1",
		IncidentType:      "CONTAMINACION",
		DetectionDate:     detectionDate(),
		CorrectiveActions: "Cloracion de emergencia",
		Resolved:          true,
		ResolutionDate:    &resolutionDate,
		ResolvedByUserID:  "user-2",
	})
	require.NoError(t, err)
	assert.True(t, created.Resolved)
	assert.Equal(t, "Cloracion de emergencia", created.CorrectiveActions)
	require.NotNil(t, created.ResolutionDate)
	assert.True(t, resolutionDate.Equal(*created.ResolutionDate))
	assert.Equal(t, "user-2", created.ResolvedByUserID)

	resolved, err := svc.GetResolved(ctx)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, created.ID, resolved[0].ID)

	unresolved, err := svc.GetUnresolved(ctx)
	require.NoError(t, err)
	assert.Empty(t, unresolved)
}

func TestQualityIncidentService_SoftDeleteRestore(t *testing.T) {
	svc := newQualityIncidentService(&fakeReferenceClient{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateQualityIncidentInput{
		OrganizationID: "org-1",
		IncidentType:   "CONTAMINACION",
		DetectionDate:  detectionDate(),
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

func TestQualityIncidentService_Enrichment(t *testing.T) {
	refClient := &fakeReferenceClient{
		organization: service.Organization{OrganizationID: "org-1", OrganizationName: "JASS Santa Rosa"},
		admins:       []service.User{{ID: "user-1", Name: "Juan"}},
	}
	svc := newQualityIncidentService(refClient)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateQualityIncidentInput{
		OrganizationID:   "org-1",
		IncidentType:     "CLORO_BAJO",
		DetectionDate:    detectionDate(),
		ReportedByUserID: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "JASS Santa Rosa", created.Organization.OrganizationName)
	assert.Equal(t, "Juan", created.ReportedBy.Name)
}
