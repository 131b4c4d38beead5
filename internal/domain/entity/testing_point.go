// Package entity contains the core business objects of the project.
package entity

import "time"

// Coordinates is the geographic position of a testing point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TestingPoint is a physical sampling location in the water network.
// It is a reference entity: activate/deactivate toggles Status, delete
// removes the record outright.
type TestingPoint struct {
	ID                  string      `json:"id"`
	OrganizationID      string      `json:"organizationId"`
	PointCode           string      `json:"pointCode"` // generated, e.g. PM001
	PointName           string      `json:"pointName"`
	PointType           string      `json:"pointType"` // RESERVORIO, RED_DISTRIBUCION, DOMICILIO, ...
	ZoneID              string      `json:"zoneId"`
	LocationDescription string      `json:"locationDescription"`
	Street              string      `json:"street,omitempty"` // set for DOMICILIO points
	Coordinates         Coordinates `json:"coordinates"`
	Status              Status      `json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}
