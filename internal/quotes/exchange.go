package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"spendlens/internal/cache"
)

const defaultExchangeBaseURL = "https://api.apilayer.com/exchangerates_data"

// ExchangeClient fetches currency rates from an exchangerates-data style
// HTTP API. Rates are quoted against a fixed home currency.
type ExchangeClient struct {
	baseURL string
	apiKey  string
	home    string
	httpc   *http.Client
	cache   *cache.LRU[float64]
}

var _ RateProvider = (*ExchangeClient)(nil)

// NewExchangeClient creates a rate provider quoting against home (e.g. "RUB").
// An empty baseURL selects the public API endpoint.
func NewExchangeClient(baseURL, apiKey, home string, quoteCache *cache.LRU[float64]) *ExchangeClient {
	if baseURL == "" {
		baseURL = defaultExchangeBaseURL
	}
	return &ExchangeClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		home:    home,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		cache:   quoteCache,
	}
}

type exchangeResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rate returns how much one unit of code is worth in the home currency.
func (c *ExchangeClient) Rate(ctx context.Context, code string) (float64, error) {
	cacheKey := "rate:" + code
	if c.cache != nil {
		if v, ok := c.cache.Get(cacheKey); ok {
			return v, nil
		}
	}

	q := url.Values{}
	q.Set("base", code)
	q.Set("symbols", c.home)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build rate request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch rate for %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch rate for %s: unexpected status %d", code, resp.StatusCode)
	}

	var body exchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode rate response for %s: %w", code, err)
	}

	rate, ok := body.Rates[c.home]
	if !ok {
		return 0, errors.New("rate response missing home currency " + c.home)
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, rate)
	}
	return rate, nil
}
