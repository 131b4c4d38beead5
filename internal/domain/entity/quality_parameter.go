package entity

import "time"

// OptimalRange is the preferred band inside the acceptable min/max window.
type OptimalRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// QualityParameter describes a measurable water-quality indicator (chlorine,
// turbidity, pH, ...) with its acceptable and optimal bounds. Reference
// entity: ACTIVE/INACTIVE status, hard delete.
type QualityParameter struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organizationId"`
	ParameterCode  string       `json:"parameterCode"` // generated, PRM###
	ParameterName  string       `json:"parameterName"`
	UnitOfMeasure  string       `json:"unitOfMeasure"`
	MinAcceptable  float64      `json:"minAcceptable"`
	MaxAcceptable  float64      `json:"maxAcceptable"`
	OptimalRange   OptimalRange `json:"optimalRange"`
	TestFrequency  string       `json:"testFrequency"` // DAILY, WEEKLY, MONTHLY
	Status         Status       `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
