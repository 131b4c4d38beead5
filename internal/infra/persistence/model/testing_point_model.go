package model

import "time"

// TestingPointModel is the GORM-specific struct for the 'testing_points' collection.
type TestingPointModel struct {
	ID                  string `gorm:"type:varchar(36);primaryKey"`
	OrganizationID      string `gorm:"type:varchar(36);not null;index:idx_testing_points_on_org"`
	PointCode           string `gorm:"type:varchar(16);not null"`
	PointName           string `gorm:"type:varchar(255);not null"`
	PointType           string `gorm:"type:varchar(64);not null"`
	ZoneID              string `gorm:"type:varchar(36)"`
	LocationDescription string `gorm:"type:text"`
	Street              string `gorm:"type:varchar(255)"`
	Latitude            float64
	Longitude           float64
	Status              string `gorm:"type:varchar(16);not null;index:idx_testing_points_on_status"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (TestingPointModel) TableName() string {
	return "testing_points"
}
