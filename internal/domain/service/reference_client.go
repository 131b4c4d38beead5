// Package service defines interfaces for external collaborators consumed by
// the use cases.
package service

import "context"

// Organization is the externally-owned organization record used to enrich
// responses. A zero value is the explicit placeholder for "not available".
type Organization struct {
	OrganizationID      string `json:"organizationId"`
	OrganizationName    string `json:"organizationName"`
	OrganizationCode    string `json:"organizationCode"`
	Status              string `json:"status"`
	Address             string `json:"address"`
	Phone               string `json:"phone"`
	LegalRepresentative string `json:"legalRepresentative"`
}

// User is the externally-owned user/admin record used to enrich responses.
// A zero value is the explicit placeholder for "not available".
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// ReferenceClient reads organization and user reference data from the
// external management services.
//
// Both methods fail soft: on any transport, HTTP or decode error they return
// the zero value (empty Organization, empty slice) and a nil error. A
// reference-data outage must never fail a CRUD operation.
type ReferenceClient interface {
	// GetOrganization fetches one organization by id.
	GetOrganization(ctx context.Context, organizationID string) Organization

	// GetOrganizationAdmins fetches the admin users of an organization.
	GetOrganizationAdmins(ctx context.Context, organizationID string) []User
}
