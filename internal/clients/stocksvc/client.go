// Package stocksvc provides a client for a peer portfolio store's /stocks API
package stocksvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/portview/portview/internal/common"
	"github.com/portview/portview/internal/interfaces"
	"github.com/portview/portview/internal/models"
)

const DefaultTimeout = 30 * time.Second

// Client fetches holdings from one remote portfolio store.
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a client for the store at baseURL, identified as name.
func NewClient(name, baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name identifies the source this client fetches from.
func (c *Client) Name() string {
	return c.name
}

// FetchHoldings retrieves the store's full holdings list. A reachable store
// with no holdings yields an empty slice; any transport failure or
// non-success status yields an UpstreamError. The caller must not default a
// failed fetch to an empty portfolio — that would silently understate totals.
func (c *Client) FetchHoldings(ctx context.Context) ([]models.Holding, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stocks", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("source", c.name).Msg("Fetching holdings")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{Service: c.name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &models.UpstreamError{Service: c.name, StatusCode: resp.StatusCode}
	}

	var holdings []models.Holding
	if err := json.NewDecoder(resp.Body).Decode(&holdings); err != nil {
		return nil, fmt.Errorf("failed to decode holdings from %s: %w", c.name, err)
	}

	for i := range holdings {
		holdings[i].Source = c.name
	}

	return holdings, nil
}

// Ensure Client implements HoldingSource
var _ interfaces.HoldingSource = (*Client)(nil)
