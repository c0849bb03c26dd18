// Package appointments provides the client for the third-party
// appointment API.
package appointments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/appointment-bridge/backend/internal/apperr"
	"github.com/appointment-bridge/backend/internal/config"
	"github.com/appointment-bridge/backend/internal/models"
)

// Client is a client for the appointment API. The API exposes
// appointments as a JSON array behind Basic Auth.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a new appointment API client from settings.
func NewClient(cfg config.Settings) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.ThirdPartyBaseURL, "/"),
		username: cfg.ThirdPartyUsername,
		password: cfg.ThirdPartyPassword,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Fetch retrieves appointments from the upstream API, optionally
// filtered to those modified since the given time. The filter is
// normalized to UTC before being sent.
func (c *Client) Fetch(ctx context.Context, updatedSince *time.Time) ([]models.Appointment, error) {
	endpoint := c.baseURL + "/appointments"
	if updatedSince != nil {
		params := url.Values{}
		params.Set("updated_since", updatedSince.UTC().Format(time.RFC3339))
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building appointments request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: requesting appointments: %v", apperr.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: appointment API returned status %d: %s", apperr.ErrTransport, resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading appointments response: %v", apperr.ErrTransport, err)
	}

	var appts []models.Appointment
	if err := json.Unmarshal(body, &appts); err != nil {
		return nil, fmt.Errorf("%w: expected appointment list: %v", apperr.ErrMalformedResponse, err)
	}

	return appts, nil
}
