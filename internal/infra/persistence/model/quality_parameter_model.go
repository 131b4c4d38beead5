package model

import "time"

// QualityParameterModel is the GORM-specific struct for the 'quality_parameters' collection.
type QualityParameterModel struct {
	ID             string `gorm:"type:varchar(36);primaryKey"`
	OrganizationID string `gorm:"type:varchar(36);not null;index:idx_quality_parameters_on_org"`
	ParameterCode  string `gorm:"type:varchar(16);not null"`
	ParameterName  string `gorm:"type:varchar(255);not null"`
	UnitOfMeasure  string `gorm:"type:varchar(64)"`
	MinAcceptable  float64
	MaxAcceptable  float64
	OptimalMin     float64
	OptimalMax     float64
	TestFrequency  string `gorm:"type:varchar(16)"`
	Status         string `gorm:"type:varchar(16);not null;index:idx_quality_parameters_on_status"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (QualityParameterModel) TableName() string {
	return "quality_parameters"
}
