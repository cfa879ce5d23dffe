// Package nwsclient fetches forecast discussion bulletins from the dashboard
// backend API and caches them briefly.
package nwsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akwxlab/marinedash"
	"github.com/akwxlab/marinedash/internal/observability"
)

// DefaultBaseURL is the production bulletin endpoint.
const DefaultBaseURL = "https://api.akwxlab.net/marine"

// ErrMissingProperties indicates a payload that decoded but carried no
// usable bulletin properties.
var ErrMissingProperties = errors.New("payload missing properties")

// Client implements marinedash.Fetcher against the bulletin API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a bulletin API client. An empty baseURL selects the
// production endpoint; a nil metrics set disables instrumentation.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// FetchDiscussion retrieves the latest discussion bulletin for an office.
func (c *Client) FetchDiscussion(ctx context.Context, office string) (marinedash.Bulletin, error) {
	if !marinedash.ValidOfficeCode(office) {
		return marinedash.Bulletin{}, fmt.Errorf("%w: %q", marinedash.ErrInvalidOffice, office)
	}

	u := fmt.Sprintf("%s/discussions/%s/latest", c.baseURL, url.PathEscape(strings.ToUpper(office)))

	start := time.Now()
	bulletin, err := c.doRequest(ctx, u)
	c.observe(time.Since(start), err)
	if err != nil {
		return marinedash.Bulletin{}, err
	}

	c.logger.Debug("fetched discussion", "office", office, "updated", bulletin.Updated)
	return bulletin, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (marinedash.Bulletin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return marinedash.Bulletin{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return marinedash.Bulletin{}, fmt.Errorf("discussion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return marinedash.Bulletin{}, fmt.Errorf("bulletin API error: status %d: %s", resp.StatusCode, body)
	}

	var payload envelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return marinedash.Bulletin{}, fmt.Errorf("decode response: %w", err)
	}

	p := payload.Properties
	if p == nil || (p.Office == "" && p.Text == "") {
		return marinedash.Bulletin{}, ErrMissingProperties
	}

	return marinedash.Bulletin{
		Office:     p.Office,
		OfficeName: p.OfficeName,
		Text:       p.Text,
		Updated:    p.Updated,
		IssuedTime: p.IssuedTime,
	}, nil
}

func (c *Client) observe(elapsed time.Duration, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.FetchRequests.WithLabelValues(outcome).Inc()
	c.metrics.FetchDuration.Observe(elapsed.Seconds())
}

// Bulletin API response types.

type envelope struct {
	Properties *properties `json:"properties"`
}

type properties struct {
	Office     string `json:"office"`
	OfficeName string `json:"officeName"`
	Text       string `json:"text"`
	Updated    string `json:"updated"`
	IssuedTime string `json:"issuedTime"`
}
