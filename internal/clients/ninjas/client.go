// Package ninjas provides a client for the API-Ninjas stock price API
package ninjas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/portview/portview/internal/common"
	"github.com/portview/portview/internal/interfaces"
	"github.com/portview/portview/internal/models"
)

const (
	DefaultBaseURL   = "https://api.api-ninjas.com/v1"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the PriceClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new API-Ninjas client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// stockPriceResponse is the API response for /stockprice. A missing price
// field decodes to zero, which callers treat as a valid zero-valued quote.
type stockPriceResponse struct {
	Ticker string  `json:"ticker"`
	Price  float64 `json:"price"`
}

// StockPrice fetches the live price for a symbol. The symbol is sent exactly
// as given. Any non-200 oracle status is returned as an UpstreamError carrying
// the status code; there is no retry.
func (c *Client) StockPrice(ctx context.Context, symbol string) (models.PriceQuote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return models.PriceQuote{}, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("ticker", symbol)
	reqURL := fmt.Sprintf("%s/stockprice?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.PriceQuote{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	c.logger.Debug().Str("symbol", symbol).Msg("Price lookup")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.PriceQuote{}, &models.UpstreamError{Service: "price", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return models.PriceQuote{}, &models.UpstreamError{Service: "price", StatusCode: resp.StatusCode}
	}

	var body stockPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.PriceQuote{}, fmt.Errorf("failed to decode price response: %w", err)
	}

	return models.PriceQuote{Symbol: symbol, Price: body.Price}, nil
}

// Ensure Client implements PriceClient
var _ interfaces.PriceClient = (*Client)(nil)
