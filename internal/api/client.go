package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"solarsync/internal/config"
	"solarsync/internal/models"
)

// ErrUnauthorized marks an authentication failure (expired or revoked
// token). It is never retried and aborts processing for the site.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNoTimeSeries marks a response that came back 2xx but carried no
// time_series field. Whether this is fatal depends on the kind: a hard error
// for power and energy, an accepted empty result for state of charge.
var ErrNoTimeSeries = errors.New("response carries no time series")

// TransientError wraps failures worth retrying: transport errors, timeouts
// and 5xx responses.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is worth a bounded retry.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsFatal reports whether err must escalate past the per-bucket isolation
// boundary and abort the site.
func IsFatal(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// HistoryQuery is one bounded-range calendar history request.
type HistoryQuery struct {
	SiteID   int64
	Kind     models.Kind
	Period   string // day | month
	Start    time.Time
	End      time.Time
	TimeZone string
}

type Client struct {
	config *config.Config
	http   *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second},
	}
}

func (c *Client) createRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.config.API.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+c.config.API.AccessToken)
	req.Header.Add("Accept", "application/json")

	return req, nil
}

// doJSON performs the request and decodes the response body into out,
// classifying failures: transport errors and 5xx are transient, 401/403 is
// unauthorized, any other non-2xx is terminal.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransientError{Err: fmt.Errorf("making request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		body, _ := io.ReadAll(resp.Body)
		return &TransientError{Err: fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))}
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("status %d: %w", resp.StatusCode, ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %v", err)
	}
	return nil
}

// Products lists the account's products. Callers filter to energy sites via
// Product.IsEnergySite.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	req, err := c.createRequest(ctx, "GET", "/api/1/products")
	if err != nil {
		return nil, fmt.Errorf("creating request: %v", err)
	}

	var envelope struct {
		Response []models.Product `json:"response"`
	}
	if err := c.doJSON(req, &envelope); err != nil {
		return nil, err
	}
	return envelope.Response, nil
}

// SiteConfig fetches the site's installation date and timezone. Fetched once
// per site; immutable for the run.
func (c *Client) SiteConfig(ctx context.Context, siteID int64) (*models.SiteConfig, error) {
	req, err := c.createRequest(ctx, "GET", fmt.Sprintf("/api/1/energy_sites/%d/site_info", siteID))
	if err != nil {
		return nil, fmt.Errorf("creating request: %v", err)
	}

	var envelope struct {
		Response struct {
			InstallationDate     string `json:"installation_date"`
			InstallationTimeZone string `json:"installation_time_zone"`
		} `json:"response"`
	}
	if err := c.doJSON(req, &envelope); err != nil {
		return nil, err
	}

	installed, err := time.Parse(time.RFC3339, envelope.Response.InstallationDate)
	if err != nil {
		return nil, fmt.Errorf("parsing installation date %q: %v", envelope.Response.InstallationDate, err)
	}

	return &models.SiteConfig{
		InstallationDate:     installed,
		InstallationTimeZone: envelope.Response.InstallationTimeZone,
	}, nil
}

// CalendarHistory performs one bounded-range query. Records come back in
// chronological order; that order is preserved.
func (c *Client) CalendarHistory(ctx context.Context, q HistoryQuery) ([]models.Record, error) {
	params := url.Values{}
	params.Set("kind", string(q.Kind))
	params.Set("period", q.Period)
	params.Set("start_date", q.Start.Format(time.RFC3339))
	params.Set("end_date", q.End.Format(time.RFC3339))
	params.Set("time_zone", q.TimeZone)
	params.Set("fill_telemetry", "0")

	path := fmt.Sprintf("/api/1/energy_sites/%d/calendar_history?%s", q.SiteID, params.Encode())
	req, err := c.createRequest(ctx, "GET", path)
	if err != nil {
		return nil, fmt.Errorf("creating request: %v", err)
	}

	var envelope struct {
		Response struct {
			TimeSeries []models.Record `json:"time_series"`
		} `json:"response"`
	}
	if err := c.doJSON(req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Response.TimeSeries == nil {
		return nil, ErrNoTimeSeries
	}
	return envelope.Response.TimeSeries, nil
}
