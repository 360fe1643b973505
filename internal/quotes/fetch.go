package quotes

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultWorkers = 4
	DefaultTimeout = 5 * time.Second
)

// Fetcher runs independent quote lookups concurrently. Each lookup gets its
// own timeout; a failure or timeout degrades that entry only and never
// cancels sibling lookups. Results land in pre-allocated slots, so the
// output order always matches the requested order regardless of completion
// order, and no locking is needed.
type Fetcher struct {
	workers int
	timeout time.Duration
}

func NewFetcher(workers int, timeout time.Duration) *Fetcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{workers: workers, timeout: timeout}
}

// Rates fetches one quote per currency code, in the caller's order.
func (f *Fetcher) Rates(ctx context.Context, provider RateProvider, codes []string) []Quote {
	return f.fetch(ctx, codes, "currency", provider.Rate)
}

// Prices fetches one quote per stock symbol, in the caller's order.
func (f *Fetcher) Prices(ctx context.Context, provider PriceProvider, symbols []string) []Quote {
	return f.fetch(ctx, symbols, "symbol", provider.Price)
}

func (f *Fetcher) fetch(ctx context.Context, codes []string, kind string, get func(context.Context, string) (float64, error)) []Quote {
	results := make([]Quote, len(codes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for i, code := range codes {
		results[i].Code = code

		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()

			v, err := get(callCtx, code)
			if err != nil {
				slog.WarnContext(ctx, "Quote lookup failed",
					kind, code,
					"error", err)
				// Leave the slot unavailable; never fail the group.
				return nil
			}
			results[i].Amount = Available(v)
			return nil
		})
	}

	// All goroutines return nil, so Wait only synchronizes.
	_ = g.Wait()

	return results
}
