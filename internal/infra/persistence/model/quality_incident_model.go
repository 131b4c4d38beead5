package model

import "time"

// QualityIncidentModel is the GORM-specific struct for the 'quality_incidents' collection.
// AffectedZones holds a JSON-encoded list; the repository mappers own the encoding.
type QualityIncidentModel struct {
	ID                string `gorm:"type:varchar(36);primaryKey"`
	OrganizationID    string `gorm:"type:varchar(36);not null;index:idx_quality_incidents_on_org"`
	IncidentCode      string `gorm:"type:varchar(16);not null"`
	IncidentType      string `gorm:"type:varchar(64);not null"`
	TestingPointID    string `gorm:"type:varchar(36)"`
	DetectionDate     time.Time
	Severity          string `gorm:"type:varchar(16)"`
	Description       string `gorm:"type:text"`
	AffectedZones     string `gorm:"type:text"`
	ImmediateActions  string `gorm:"type:text"`
	CorrectiveActions string `gorm:"type:text"`
	Resolved          bool   `gorm:"index:idx_quality_incidents_on_resolved"`
	ResolutionDate    *time.Time
	ReportedByUserID  string `gorm:"type:varchar(36)"`
	ResolvedByUserID  string `gorm:"type:varchar(36)"`
	CreatedAt         time.Time
	DeletedAt         *time.Time `gorm:"index:idx_quality_incidents_on_deleted"`
}

// TableName explicitly sets the table name for GORM.
func (QualityIncidentModel) TableName() string {
	return "quality_incidents"
}
