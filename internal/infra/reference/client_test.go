package reference

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aquatrace/config"
	"aquatrace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, orgURL, userURL string) service.ReferenceClient {
	t.Helper()

	cfg := &config.Config{
		External: &config.ExternalConfig{
			OrganizationBaseURL: orgURL,
			UserBaseURL:         userURL,
			ClientTimeout:       2 * time.Second,
		},
	}

	return NewHTTPReferenceClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetOrganization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/management/organizations/org-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"organizationId": "org-1",
			"organizationName": "JASS Santa Rosa",
			"organizationCode": "JASS-001",
			"status": "ACTIVE",
			"address": "Av. Central 100",
			"phone": "999888777",
			"legalRepresentative": "Rosa Perez"
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, srv.URL)

	org := client.GetOrganization(context.Background(), "org-1")
	assert.Equal(t, "JASS Santa Rosa", org.OrganizationName)
	assert.Equal(t, "JASS-001", org.OrganizationCode)
}

func TestGetOrganization_FailsSoft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, srv.URL)

	org := client.GetOrganization(context.Background(), "org-1")
	assert.Equal(t, service.Organization{}, org)
}

func TestGetOrganization_UnreachableService(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", "http://127.0.0.1:1")

	org := client.GetOrganization(context.Background(), "org-1")
	assert.Equal(t, service.Organization{}, org)
}

func TestGetOrganization_EmptyID(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", "http://127.0.0.1:1")

	org := client.GetOrganization(context.Background(), "")
	assert.Equal(t, service.Organization{}, org)
}

func TestGetOrganizationAdmins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/organizations/org-1/admins", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": [
				{"id": "user-1", "name": "Juan", "lastName": "Torres", "email": "juan@example.com", "role": "ADMIN"},
				{"id": "user-2", "name": "Maria", "lastName": "Lopez", "email": "maria@example.com", "role": "ADMIN"}
			]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, srv.URL)

	admins := client.GetOrganizationAdmins(context.Background(), "org-1")
	require.Len(t, admins, 2)
	assert.Equal(t, "user-1", admins[0].ID)
	assert.Equal(t, "Lopez", admins[1].LastName)
}

func TestGetOrganizationAdmins_RejectedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "organization not found", "data": null}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, srv.URL)

	admins := client.GetOrganizationAdmins(context.Background(), "org-1")
	assert.Empty(t, admins)
}
