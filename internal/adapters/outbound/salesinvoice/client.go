// Package salesinvoice implements the InvoiceChecker interface against the
// sales invoice HTTP API. A lookup is a single GET per transaction identifier
// authenticated with an apikey header; only the response status code carries
// information, so the body is drained and discarded.
package salesinvoice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/archon-research/txcheck/internal/ports/outbound"
)

// Compile-time check that Client implements outbound.InvoiceChecker.
var _ outbound.InvoiceChecker = (*Client)(nil)

// ClientConfig holds configuration for the sales invoice client.
type ClientConfig struct {
	// APIKey is sent on every request in the apikey header.
	APIKey string

	// BaseURL is the invoicing API base URL.
	// Defaults to https://example.com/core/api/v1
	BaseURL string

	// Timeout is the maximum time to wait for a single HTTP request.
	Timeout time.Duration

	// Logger is the structured logger for the client.
	Logger *slog.Logger

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
}

// ClientConfigDefaults returns a config with default values.
func ClientConfigDefaults() ClientConfig {
	return ClientConfig{
		BaseURL: "https://example.com/core/api/v1",
		Timeout: 10 * time.Second,
		Logger:  slog.Default(),
	}
}

// Client implements InvoiceChecker using the sales invoice API.
// The underlying http.Client keeps connections alive across lookups.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new sales invoice API client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("APIKey is required")
	}

	defaults := ClientConfigDefaults()
	applyDefaults(&config, defaults)

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     config.Logger.With("component", "salesinvoice-client"),
	}, nil
}

func applyDefaults(config *ClientConfig, defaults ClientConfig) {
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	if config.Logger == nil {
		config.Logger = defaults.Logger
	}
}

// Name returns the checker name.
func (c *Client) Name() string {
	return "salesinvoice"
}

// CheckTransaction issues one GET for the given transaction identifier and
// returns the HTTP status code. Transport failures surface as errors; the
// caller decides how statuses are classified.
func (c *Client) CheckTransaction(ctx context.Context, transactionID string) (int, error) {
	endpoint := fmt.Sprintf("%s/sales_invoices/%s",
		strings.TrimSuffix(c.config.BaseURL, "/"), url.PathEscape(transactionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("apikey", c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	// Drain the body so the keep-alive connection can be reused.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		c.logger.Warn("failed to drain response body",
			"transaction_id", transactionID,
			"error", err,
		)
	}

	return resp.StatusCode, nil
}
