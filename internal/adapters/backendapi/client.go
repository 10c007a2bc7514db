// Package backendapi is the HTTP adapter for the marketplace backend. The
// backend owns inventory, users and orders; this gateway only forwards
// requests and consumes its rate feed.
package backendapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sokonihub/sokoni_gateway/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

var (
	_ ports.RateProvider = (*Client)(nil)
	_ ports.BackendAPI   = (*Client)(nil)
)

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// ratesResponse is the backend's rate feed contract.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// FetchRates retrieves exchange rates relative to baseCode.
func (c *Client) FetchRates(ctx context.Context, baseCode string) (map[string]float64, error) {
	u := fmt.Sprintf("%s/api/currency/rates?base=%s", c.baseURL, url.QueryEscape(baseCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates request returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rates response contained no rates")
	}
	return body.Rates, nil
}

// IncrementViewCount forwards a product view-count increment. The bearer
// token, when present, is passed through untouched.
func (c *Client) IncrementViewCount(ctx context.Context, productID, bearerToken string) error {
	u := fmt.Sprintf("%s/api/products/%s/views", c.baseURL, url.PathEscape(productID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build view-count request: %w", err)
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("view-count request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("view-count request returned status %d", resp.StatusCode)
	}
	return nil
}
