// Package reference implements the HTTP gateway to the external organization
// and user management services.
package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"aquatrace/config"
	"aquatrace/internal/domain/service"

	"github.com/pkg/errors"
)

// httpReferenceClient implements service.ReferenceClient against the
// management services' REST APIs. All lookups fail soft: a reference-data
// outage degrades responses to placeholders, it never fails the request.
type httpReferenceClient struct {
	organizationBaseURL string
	userBaseURL         string
	httpClient          *http.Client
	logger              *slog.Logger
}

// adminListEnvelope is the user service's response wrapper.
type adminListEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []service.User `json:"data"`
}

// NewHTTPReferenceClient creates a reference client from the external
// services configuration.
func NewHTTPReferenceClient(cfg *config.Config, logger *slog.Logger) service.ReferenceClient {
	return &httpReferenceClient{
		organizationBaseURL: cfg.External.OrganizationBaseURL,
		userBaseURL:         cfg.External.UserBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.External.ClientTimeout,
		},
		logger: logger,
	}
}

// GetOrganization fetches one organization by id. Returns the zero value on
// any failure.
func (c *httpReferenceClient) GetOrganization(ctx context.Context, organizationID string) service.Organization {
	if organizationID == "" {
		return service.Organization{}
	}

	url := fmt.Sprintf("%s/api/management/organizations/%s", c.organizationBaseURL, organizationID)

	var org service.Organization
	if err := c.getJSON(ctx, url, &org); err != nil {
		c.logger.Warn("organization lookup failed, using placeholder",
			slog.String("organization_id", organizationID),
			slog.Any("error", err),
		)

		return service.Organization{}
	}

	return org
}

// GetOrganizationAdmins fetches the admin users of an organization. Returns
// an empty slice on any failure.
func (c *httpReferenceClient) GetOrganizationAdmins(ctx context.Context, organizationID string) []service.User {
	if organizationID == "" {
		return nil
	}

	url := fmt.Sprintf("%s/internal/organizations/%s/admins", c.userBaseURL, organizationID)

	var envelope adminListEnvelope
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		c.logger.Warn("organization admins lookup failed, using placeholder",
			slog.String("organization_id", organizationID),
			slog.Any("error", err),
		)

		return nil
	}

	if !envelope.Success {
		c.logger.Warn("organization admins lookup rejected",
			slog.String("organization_id", organizationID),
			slog.String("message", envelope.Message),
		)

		return nil
	}

	return envelope.Data
}

func (c *httpReferenceClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		return errors.Errorf("reference service returned status %d", resp.StatusCode)
	}

	return errors.WithStack(json.NewDecoder(resp.Body).Decode(out))
}
