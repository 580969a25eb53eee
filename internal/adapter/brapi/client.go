// Package brapi implements the market quote provider against the
// brapi.dev quote API.
package brapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jpereira/stockfolio-backend/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production brapi.dev endpoint
const DefaultBaseURL = "https://brapi.dev"

const defaultHTTPTimeout = 10 * time.Second

// Client fetches the latest regular-market price for a symbol from the
// brapi.dev quote API. The access token is injected at construction and
// sent as a query parameter on every request; it is never read from the
// environment mid-operation.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient creates a new brapi client
// baseURL may be empty to use the production endpoint; timeout bounds the
// whole HTTP exchange in addition to any per-call context deadline
func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// quoteResponse mirrors the relevant slice of the brapi.dev payload
type quoteResponse struct {
	Results []struct {
		Symbol             string  `json:"symbol"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"results"`
}

// GetQuote implements domain.QuoteProvider.
// Unknown symbols, rate limits, transport errors and malformed payloads
// are all reported as a plain error; the caller decides how a failed
// lookup affects the operation in flight.
func (c *Client) GetQuote(ctx context.Context, symbol string) (domain.Quote, error) {
	endpoint := fmt.Sprintf("%s/api/quote/%s?token=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to build quote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("quote request for %s failed: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Quote{}, fmt.Errorf("quote request for %s returned status %d", symbol, resp.StatusCode)
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Quote{}, fmt.Errorf("failed to decode quote response for %s: %w", symbol, err)
	}
	if len(body.Results) == 0 {
		return domain.Quote{}, fmt.Errorf("no price data for %s", symbol)
	}

	price := decimal.NewFromFloat(body.Results[0].RegularMarketPrice)
	c.logger.Debug("fetched quote",
		zap.String("symbol", symbol),
		zap.String("price", price.String()),
	)

	return domain.Quote{Symbol: symbol, Price: price}, nil
}
