package model

import "time"

// DailyRecordModel is the GORM-specific struct for the 'daily_records' collection.
// TestingPointIDs holds a JSON-encoded list; the repository mappers own the encoding.
type DailyRecordModel struct {
	ID               string `gorm:"type:varchar(36);primaryKey"`
	OrganizationID   string `gorm:"type:varchar(36);not null;index:idx_daily_records_on_org"`
	RecordCode       string `gorm:"type:varchar(16);not null"`
	RecordType       string `gorm:"type:varchar(32);not null;index:idx_daily_records_on_type"`
	TestingPointIDs  string `gorm:"type:text"`
	RecordDate       time.Time
	Level            float64
	Acceptable       bool
	ActionRequired   bool
	RecordedByUserID string `gorm:"type:varchar(36)"`
	Observations     string `gorm:"type:text"`
	Amount           float64
	CreatedAt        time.Time
	DeletedAt        *time.Time `gorm:"index:idx_daily_records_on_deleted"`
}

// TableName explicitly sets the table name for GORM.
func (DailyRecordModel) TableName() string {
	return "daily_records"
}
