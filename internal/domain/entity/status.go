package entity

// Status is the lifecycle state of a reference entity.
// Reference entities (TestingPoint, QualityParameter) flip between ACTIVE and
// INACTIVE through explicit activate/deactivate calls; transactional entities
// use a DeletedAt tombstone instead.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Result classification for a single measured parameter within a quality test.
const (
	ResultAcceptable = "ACCEPTABLE"
	ResultWarning    = "WARNING"
	ResultCritical   = "CRITICAL"
)

// Severity levels for quality incidents.
const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)
