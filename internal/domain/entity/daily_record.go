package entity

import "time"

// Daily record types. The type selects the code prefix (CL / SA).
const (
	RecordTypeChlorine = "CLORO"
	RecordTypeSulfate  = "SULFATO"
)

// DailyRecord is a daily chemical-dosing measurement (chlorine or sulfate
// level) taken at one or more testing points. Transactional entity with a
// DeletedAt tombstone.
type DailyRecord struct {
	ID               string     `json:"id"`
	OrganizationID   string     `json:"organizationId"`
	RecordCode       string     `json:"recordCode"` // generated, CL### or SA###
	RecordType       string     `json:"recordType"` // CLORO or SULFATO
	TestingPointIDs  []string   `json:"testingPointIds"`
	RecordDate       time.Time  `json:"recordDate"`
	Level            float64    `json:"level"`
	Acceptable       bool       `json:"acceptable"`
	ActionRequired   bool       `json:"actionRequired"`
	RecordedByUserID string     `json:"recordedByUserId"`
	Observations     string     `json:"observations"`
	Amount           float64    `json:"amount"`
	CreatedAt        time.Time  `json:"createdAt"`
	DeletedAt        *time.Time `json:"deletedAt,omitempty"`
}

// Deleted reports whether the tombstone is set.
func (r *DailyRecord) Deleted() bool {
	return r.DeletedAt != nil
}
