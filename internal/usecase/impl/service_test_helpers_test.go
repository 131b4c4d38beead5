package impl

import (
	"context"

	"aquatrace/config"
	"aquatrace/internal/domain/entity"
	"aquatrace/internal/domain/repository"
	"aquatrace/internal/domain/service"

	"github.com/google/uuid"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Enrichment: &config.EnrichmentConfig{Fanout: 4},
	}
}

// fakeReferenceClient serves canned reference data; failing simulates an
// external service outage.
type fakeReferenceClient struct {
	organization service.Organization
	admins       []service.User
	failing      bool
}

func (c *fakeReferenceClient) GetOrganization(_ context.Context, organizationID string) service.Organization {
	if c.failing || organizationID == "" {
		return service.Organization{}
	}

	return c.organization
}

func (c *fakeReferenceClient) GetOrganizationAdmins(_ context.Context, organizationID string) []service.User {
	if c.failing || organizationID == "" {
		return nil
	}

	return c.admins
}

// --- Testing point fake ---

type fakeTestingPointRepo struct {
	points []entity.TestingPoint
}

func (r *fakeTestingPointRepo) Create(_ context.Context, point *entity.TestingPoint) error {
	if point.ID == "" {
		point.ID = uuid.NewString()
	}
	r.points = append(r.points, *point)

	return nil
}

func (r *fakeTestingPointRepo) FindByID(_ context.Context, id string) (*entity.TestingPoint, error) {
	for _, point := range r.points {
		if point.ID == id {
			found := point

			return &found, nil
		}
	}

	return nil, repository.ErrTestingPointNotFound
}

func (r *fakeTestingPointRepo) FindAll(_ context.Context) ([]*entity.TestingPoint, error) {
	out := make([]*entity.TestingPoint, 0, len(r.points))
	for i := range r.points {
		found := r.points[i]
		out = append(out, &found)
	}

	return out, nil
}

func (r *fakeTestingPointRepo) FindAllByStatus(_ context.Context, status entity.Status) ([]*entity.TestingPoint, error) {
	out := make([]*entity.TestingPoint, 0)
	for i := range r.points {
		if r.points[i].Status == status {
			found := r.points[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeTestingPointRepo) FindAllByOrganizationID(_ context.Context, organizationID string) ([]*entity.TestingPoint, error) {
	out := make([]*entity.TestingPoint, 0)
	for i := range r.points {
		if r.points[i].OrganizationID == organizationID {
			found := r.points[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeTestingPointRepo) Update(_ context.Context, point *entity.TestingPoint) error {
	for i := range r.points {
		if r.points[i].ID == point.ID {
			r.points[i] = *point

			return nil
		}
	}

	return repository.ErrTestingPointNotFound
}

func (r *fakeTestingPointRepo) DeleteByID(_ context.Context, id string) error {
	for i := range r.points {
		if r.points[i].ID == id {
			r.points = append(r.points[:i], r.points[i+1:]...)

			return nil
		}
	}

	return repository.ErrTestingPointNotFound
}

// --- Quality parameter fake ---

type fakeQualityParameterRepo struct {
	params []entity.QualityParameter
}

func (r *fakeQualityParameterRepo) Create(_ context.Context, param *entity.QualityParameter) error {
	if param.ID == "" {
		param.ID = uuid.NewString()
	}
	r.params = append(r.params, *param)

	return nil
}

func (r *fakeQualityParameterRepo) FindByID(_ context.Context, id string) (*entity.QualityParameter, error) {
	for _, param := range r.params {
		if param.ID == id {
			found := param

			return &found, nil
		}
	}

	return nil, repository.ErrQualityParameterNotFound
}

func (r *fakeQualityParameterRepo) FindAll(_ context.Context) ([]*entity.QualityParameter, error) {
	out := make([]*entity.QualityParameter, 0, len(r.params))
	for i := range r.params {
		found := r.params[i]
		out = append(out, &found)
	}

	return out, nil
}

func (r *fakeQualityParameterRepo) FindAllByStatus(_ context.Context, status entity.Status) ([]*entity.QualityParameter, error) {
	out := make([]*entity.QualityParameter, 0)
	for i := range r.params {
		if r.params[i].Status == status {
			found := r.params[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeQualityParameterRepo) FindAllByOrganizationID(_ context.Context, organizationID string) ([]*entity.QualityParameter, error) {
	out := make([]*entity.QualityParameter, 0)
	for i := range r.params {
		if r.params[i].OrganizationID == organizationID {
			found := r.params[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeQualityParameterRepo) Update(_ context.Context, param *entity.QualityParameter) error {
	for i := range r.params {
		if r.params[i].ID == param.ID {
			r.params[i] = *param

			return nil
		}
	}

	return repository.ErrQualityParameterNotFound
}

func (r *fakeQualityParameterRepo) DeleteByID(_ context.Context, id string) error {
	for i := range r.params {
		if r.params[i].ID == id {
			r.params = append(r.params[:i], r.params[i+1:]...)

			return nil
		}
	}

	return repository.ErrQualityParameterNotFound
}

// --- Quality test fake ---

type fakeQualityTestRepo struct {
	tests []entity.QualityTest
}

func (r *fakeQualityTestRepo) Create(_ context.Context, test *entity.QualityTest) error {
	if test.ID == "" {
		test.ID = uuid.NewString()
	}
	r.tests = append(r.tests, *test)

	return nil
}

func (r *fakeQualityTestRepo) FindByID(_ context.Context, id string) (*entity.QualityTest, error) {
	for _, test := range r.tests {
		if test.ID == id {
			found := test

			return &found, nil
		}
	}

	return nil, repository.ErrQualityTestNotFound
}

func (r *fakeQualityTestRepo) FindAll(_ context.Context) ([]*entity.QualityTest, error) {
	out := make([]*entity.QualityTest, 0)
	for i := range r.tests {
		if r.tests[i].DeletedAt == nil {
			found := r.tests[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeQualityTestRepo) FindAllIncludingDeleted(_ context.Context) ([]*entity.QualityTest, error) {
	out := make([]*entity.QualityTest, 0, len(r.tests))
	for i := range r.tests {
		found := r.tests[i]
		out = append(out, &found)
	}

	return out, nil
}

func (r *fakeQualityTestRepo) FindAllByOrganizationID(_ context.Context, organizationID string) ([]*entity.QualityTest, error) {
	out := make([]*entity.QualityTest, 0)
	for i := range r.tests {
		if r.tests[i].OrganizationID == organizationID && r.tests[i].DeletedAt == nil {
			found := r.tests[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeQualityTestRepo) Update(_ context.Context, test *entity.QualityTest) error {
	for i := range r.tests {
		if r.tests[i].ID == test.ID {
			r.tests[i] = *test

			return nil
		}
	}

	return repository.ErrQualityTestNotFound
}

func (r *fakeQualityTestRepo) DeleteByID(_ context.Context, id string) error {
	for i := range r.tests {
		if r.tests[i].ID == id {
			r.tests = append(r.tests[:i], r.tests[i+1:]...)

			return nil
		}
	}

	return repository.ErrQualityTestNotFound
}

// --- Daily record fake ---

type fakeDailyRecordRepo struct {
	records []entity.DailyRecord
}

func (r *fakeDailyRecordRepo) Create(_ context.Context, record *entity.DailyRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	r.records = append(r.records, *record)

	return nil
}

func (r *fakeDailyRecordRepo) FindByID(_ context.Context, id string) (*entity.DailyRecord, error) {
	for _, record := range r.records {
		if record.ID == id {
			found := record

			return &found, nil
		}
	}

	return nil, repository.ErrDailyRecordNotFound
}

func (r *fakeDailyRecordRepo) FindAll(_ context.Context) ([]*entity.DailyRecord, error) {
	out := make([]*entity.DailyRecord, 0)
	for i := range r.records {
		if r.records[i].DeletedAt == nil {
			found := r.records[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeDailyRecordRepo) FindAllByRecordType(_ context.Context, recordType string) ([]*entity.DailyRecord, error) {
	out := make([]*entity.DailyRecord, 0)
	for i := range r.records {
		if r.records[i].RecordType == recordType {
			found := r.records[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeDailyRecordRepo) FindAllByOrganizationID(_ context.Context, organizationID string) ([]*entity.DailyRecord, error) {
	out := make([]*entity.DailyRecord, 0)
	for i := range r.records {
		if r.records[i].OrganizationID == organizationID && r.records[i].DeletedAt == nil {
			found := r.records[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeDailyRecordRepo) Update(_ context.Context, record *entity.DailyRecord) error {
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record

			return nil
		}
	}

	return repository.ErrDailyRecordNotFound
}

func (r *fakeDailyRecordRepo) DeleteByID(_ context.Context, id string) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)

			return nil
		}
	}

	return repository.ErrDailyRecordNotFound
}

// --- Quality incident fake ---

type fakeQualityIncidentRepo struct {
	incidents []entity.QualityIncident
}

func (r *fakeQualityIncidentRepo) Create(_ context.Context, incident *entity.QualityIncident) error {
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	r.incidents = append(r.incidents, *incident)

	return nil
}

func (r *fakeQualityIncidentRepo) FindByID(_ context.Context, id string) (*entity.QualityIncident, error) {
	for _, incident := range r.incidents {
		if incident.ID == id {
			found := incident

			return &found, nil
		}
	}

	return nil, repository.ErrQualityIncidentNotFound
}

func (r *fakeQualityIncidentRepo) FindAll(_ context.Context) ([]*entity.QualityIncident, error) {
	out := make([]*entity.QualityIncident, 0)
	for i := range r.incidents {
		if r.incidents[i].DeletedAt == nil {
			found := r.incidents[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeQualityIncidentRepo) FindAllIncludingDeleted(_ context.Context) ([]*entity.QualityIncident, error) {
	out := make([]*entity.QualityIncident, 0, len(r.incidents))
	for i := range r.incidents {
		found := r.incidents[i]
		out = append(out, &found)
	}

	return out, nil
}

func (r *fakeQualityIncidentRepo) FindAllByResolved(_ context.Context, resolved bool) ([]*entity.QualityIncident, error) {
	out := make([]*entity.QualityIncident, 0)
	for i := range r.incidents {
		if r.incidents[i].Resolved == resolved && r.incidents[i].DeletedAt == nil {
			found := r.incidents[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeQualityIncidentRepo) FindAllByOrganizationID(_ context.Context, organizationID string) ([]*entity.QualityIncident, error) {
	out := make([]*entity.QualityIncident, 0)
	for i := range r.incidents {
		if r.incidents[i].OrganizationID == organizationID && r.incidents[i].DeletedAt == nil {
			found := r.incidents[i]
			out = append(out, &found)
		}
	}

	return out, nil
}

func (r *fakeQualityIncidentRepo) Update(_ context.Context, incident *entity.QualityIncident) error {
	for i := range r.incidents {
		if r.incidents[i].ID == incident.ID {
			r.incidents[i] = *incident

			return nil
		}
	}

	return repository.ErrQualityIncidentNotFound
}

func (r *fakeQualityIncidentRepo) DeleteByID(_ context.Context, id string) error {
	for i := range r.incidents {
		if r.incidents[i].ID == id {
			r.incidents = append(r.incidents[:i], r.incidents[i+1:]...)

			return nil
		}
	}

	return repository.ErrQualityIncidentNotFound
}
