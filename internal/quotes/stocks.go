package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"spendlens/internal/cache"
)

const defaultStocksBaseURL = "https://www.alphavantage.co"

// StocksClient fetches stock prices from an Alpha Vantage style HTTP API.
type StocksClient struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	cache   *cache.LRU[float64]
}

var _ PriceProvider = (*StocksClient)(nil)

// NewStocksClient creates a price provider. An empty baseURL selects the
// public API endpoint.
func NewStocksClient(baseURL, apiKey string, quoteCache *cache.LRU[float64]) *StocksClient {
	if baseURL == "" {
		baseURL = defaultStocksBaseURL
	}
	return &StocksClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		cache:   quoteCache,
	}
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Price string `json:"05. price"`
	} `json:"Global Quote"`
}

// Price returns the latest quoted price for the symbol.
func (c *StocksClient) Price(ctx context.Context, symbol string) (float64, error) {
	cacheKey := "price:" + symbol
	if c.cache != nil {
		if v, ok := c.cache.Get(cacheKey); ok {
			return v, nil
		}
	}

	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/query?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build price request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch price for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch price for %s: unexpected status %d", symbol, resp.StatusCode)
	}

	var body globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode price response for %s: %w", symbol, err)
	}

	if body.GlobalQuote.Price == "" {
		return 0, errors.New("price response missing quote for " + symbol)
	}

	price, err := strconv.ParseFloat(body.GlobalQuote.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q for %s: %w", body.GlobalQuote.Price, symbol, err)
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, price)
	}
	return price, nil
}
