package entity

import "time"

// QualityIncident is a reported water-quality anomaly (low chlorine, high
// turbidity, contamination) detected at a testing point. Transactional
// entity with a DeletedAt tombstone; Resolved tracks the investigation
// outcome independently of deletion.
type QualityIncident struct {
	ID                string     `json:"id"`
	OrganizationID    string     `json:"organizationId"`
	IncidentCode      string     `json:"incidentCode"` // generated, INC###
	IncidentType      string     `json:"incidentType"` // CLORO_BAJO, TURBIDEZ_ALTA, CONTAMINACION
	TestingPointID    string     `json:"testingPointId"`
	DetectionDate     time.Time  `json:"detectionDate"`
	Severity          string     `json:"severity"` // LOW, MEDIUM, HIGH, CRITICAL
	Description       string     `json:"description"`
	AffectedZones     []string   `json:"affectedZones"`
	ImmediateActions  string     `json:"immediateActions"`
	CorrectiveActions string     `json:"correctiveActions"`
	Resolved          bool       `json:"resolved"`
	ResolutionDate    *time.Time `json:"resolutionDate,omitempty"`
	ReportedByUserID  string     `json:"reportedByUserId"`
	ResolvedByUserID  string     `json:"resolvedByUserId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	DeletedAt         *time.Time `json:"deletedAt,omitempty"`
}

// Deleted reports whether the tombstone is set.
func (i *QualityIncident) Deleted() bool {
	return i.DeletedAt != nil
}
