package entity

import "time"

// TestResult is one measured parameter inside a quality test.
type TestResult struct {
	ParameterID   string  `json:"parameterId"`
	ParameterCode string  `json:"parameterCode"` // snapshot of the parameter code at test time
	MeasuredValue float64 `json:"measuredValue"`
	Unit          string  `json:"unit"`
	Status        string  `json:"status"` // ACCEPTABLE, WARNING, CRITICAL
	Observations  string  `json:"observations,omitempty"`
}

// QualityTest is a laboratory or field analysis performed over one or more
// testing points. Transactional entity: DeletedAt tombstone marks logical
// deletion; Status is the workflow state, independent of the tombstone.
type QualityTest struct {
	ID                  string       `json:"id"`
	OrganizationID      string       `json:"organizationId"`
	TestCode            string       `json:"testCode"` // generated, ANL###
	TestingPointIDs     []string     `json:"testingPointIds"`
	TestDate            time.Time    `json:"testDate"`
	TestType            string       `json:"testType"` // RUTINARIO, ESPECIAL, INCIDENCIA
	TestedByUserID      string       `json:"testedByUserId"`
	WeatherConditions   string       `json:"weatherConditions"`
	WaterTemperature    float64      `json:"waterTemperature"`
	GeneralObservations string       `json:"generalObservations"`
	Status              string       `json:"status"` // workflow state, e.g. COMPLETED
	Results             []TestResult `json:"results"`
	CreatedAt           time.Time    `json:"createdAt"`
	DeletedAt           *time.Time   `json:"deletedAt,omitempty"`
}

// Deleted reports whether the tombstone is set.
func (t *QualityTest) Deleted() bool {
	return t.DeletedAt != nil
}
