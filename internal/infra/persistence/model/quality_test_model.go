package model

import "time"

// QualityTestModel is the GORM-specific struct for the 'quality_tests' collection.
// TestingPointIDs and Results hold JSON-encoded documents; the repository
// mappers own the encoding.
type QualityTestModel struct {
	ID                  string `gorm:"type:varchar(36);primaryKey"`
	OrganizationID      string `gorm:"type:varchar(36);not null;index:idx_quality_tests_on_org"`
	TestCode            string `gorm:"type:varchar(16);not null"`
	TestingPointIDs     string `gorm:"type:text"`
	TestDate            time.Time
	TestType            string `gorm:"type:varchar(64)"`
	TestedByUserID      string `gorm:"type:varchar(36)"`
	WeatherConditions   string `gorm:"type:varchar(255)"`
	WaterTemperature    float64
	GeneralObservations string `gorm:"type:text"`
	Status              string `gorm:"type:varchar(32)"`
	Results             string `gorm:"type:text"`
	CreatedAt           time.Time
	DeletedAt           *time.Time `gorm:"index:idx_quality_tests_on_deleted"`
}

// TableName explicitly sets the table name for GORM.
func (QualityTestModel) TableName() string {
	return "quality_tests"
}
