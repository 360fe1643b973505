package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spendlens/internal/cache"
)

func TestExchangeClient_Rate(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.URL.Query().Get("base"); got != "USD" {
			t.Errorf("base = %q, want USD", got)
		}
		if got := r.Header.Get("apikey"); got != "test-key" {
			t.Errorf("apikey header = %q, want test-key", got)
		}
		fmt.Fprint(w, `{"base":"USD","rates":{"RUB":73.21}}`)
	}))
	defer srv.Close()

	c := NewExchangeClient(srv.URL, "test-key", "RUB", cache.New[float64](8, time.Minute))

	rate, err := c.Rate(context.Background(), "USD")
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if rate != 73.21 {
		t.Errorf("rate = %v, want 73.21", rate)
	}

	// Second lookup is served from cache.
	if _, err := c.Rate(context.Background(), "USD"); err != nil {
		t.Fatalf("cached Rate: %v", err)
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1", calls)
	}
}

func TestExchangeClient_Rate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewExchangeClient(srv.URL, "k", "RUB", nil)
	if _, err := c.Rate(context.Background(), "USD"); err == nil {
		t.Error("Rate should fail on non-200 status")
	}
}

func TestStocksClient_Price(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("symbol = %q, want AAPL", got)
		}
		fmt.Fprint(w, `{"Global Quote":{"01. symbol":"AAPL","05. price":"150.1200"}}`)
	}))
	defer srv.Close()

	c := NewStocksClient(srv.URL, "k", nil)

	price, err := c.Price(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if price != 150.12 {
		t.Errorf("price = %v, want 150.12", price)
	}
}

func TestStocksClient_Price_MissingQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := NewStocksClient(srv.URL, "k", nil)
	if _, err := c.Price(context.Background(), "ZZZZ"); err == nil {
		t.Error("Price should fail when the quote block is missing")
	}
}
