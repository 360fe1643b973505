package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"spendlens/internal/backend"
	"spendlens/internal/cache"
	"spendlens/internal/config"
	"spendlens/internal/publish"
	"spendlens/internal/quotes"
	"spendlens/internal/report"
)

// openSource constructs the configured transaction source. The caller owns
// the cleanup function on the returned result.
func openSource(ctx context.Context, cfg *config.Config) (*backend.Result, error) {
	return backend.Open(ctx, backend.Config{
		Type:         backend.Type(cfg.SourceBackend),
		Path:         cfg.SourcePath,
		Sheet:        cfg.SourceSheet,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
}

// newAssembler wires the quote providers and the aggregation options from
// configuration. Providers without an API key are left nil; their report
// entries then degrade to the unavailable sentinel.
func newAssembler(cfg *config.Config, settings config.Settings) *report.Assembler {
	quoteCache := cache.New[float64](64, cfg.QuoteCacheTTL)

	var rates quotes.RateProvider
	if cfg.ExchangeAPIKey != "" {
		rates = quotes.NewExchangeClient(cfg.ExchangeBaseURL, cfg.ExchangeAPIKey, cfg.HomeCurrency, quoteCache)
	}
	var prices quotes.PriceProvider
	if cfg.StocksAPIKey != "" {
		prices = quotes.NewStocksClient(cfg.StocksBaseURL, cfg.StocksAPIKey, quoteCache)
	}

	fetcher := quotes.NewFetcher(cfg.QuoteWorkers, cfg.QuoteTimeout)
	opts := report.AggregateOptions{
		Policy:      report.CashbackPolicy(settings.Cashback.Policy),
		FlatRateBps: settings.Cashback.RateBps,
	}
	return report.NewAssembler(fetcher, rates, prices, opts, report.DefaultTopN)
}

// newPublisher connects the optional AMQP publisher. An empty URL disables
// publishing; a connection failure is reported so the operator notices, but
// report runs proceed without it.
func newPublisher(ctx context.Context, cfg *config.Config) *publish.Publisher {
	if cfg.AMQPURL == "" {
		return nil
	}
	pub, err := publish.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		slog.WarnContext(ctx, "AMQP unavailable, reports will not be published", "error", err)
		return nil
	}
	return pub
}

// openOutput resolves the --out flag: empty selects stdout, anything else
// creates the file. The returned close function is a no-op for stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { closeQuietly(f.Close, "output file") }, nil
}

// closeQuietly runs a cleanup function, logging instead of failing the run.
func closeQuietly(cleanup func() error, what string) {
	if cleanup == nil {
		return
	}
	if err := cleanup(); err != nil {
		slog.Warn(fmt.Sprintf("Failed to close %s", what), "error", err)
	}
}
