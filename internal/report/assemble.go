package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"spendlens/internal/core"
	"spendlens/internal/quotes"
)

type (
	// Report is the assembled output object, JSON-shaped for the caller.
	Report struct {
		Greeting        string         `json:"greeting"`
		Cards           []CardEntry    `json:"cards"`
		TopTransactions []TopEntry     `json:"top_transactions"`
		CurrencyRates   []CurrencyRate `json:"currency_rates"`
		StockPrices     []StockPrice   `json:"stock_prices"`
	}

	CardEntry struct {
		LastDigits string     `json:"last_digits"`
		TotalSpent core.Money `json:"total_spent"`
		Cashback   core.Money `json:"cashback"`
	}

	TopEntry struct {
		Date        core.Date  `json:"date"`
		Amount      core.Money `json:"amount"`
		Category    string     `json:"category"`
		Description string     `json:"description"`
	}

	CurrencyRate struct {
		Currency string        `json:"currency"`
		Rate     quotes.Amount `json:"rate"`
	}

	StockPrice struct {
		Symbol string        `json:"symbol"`
		Price  quotes.Amount `json:"price"`
	}
)

// Assembler composes aggregation output with external enrichment into one
// Report. Enrichment failure never fails assembly; failed entries carry the
// "unavailable" sentinel.
type Assembler struct {
	fetcher *quotes.Fetcher
	rates   quotes.RateProvider
	prices  quotes.PriceProvider
	opts    AggregateOptions
	topN    int
	now     func() time.Time
}

// NewAssembler wires the enrichment providers. Either provider may be nil;
// its entries then all degrade to unavailable.
func NewAssembler(fetcher *quotes.Fetcher, rates quotes.RateProvider, prices quotes.PriceProvider, opts AggregateOptions, topN int) *Assembler {
	if fetcher == nil {
		fetcher = quotes.NewFetcher(0, 0)
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Assembler{
		fetcher: fetcher,
		rates:   rates,
		prices:  prices,
		opts:    opts,
		topN:    topN,
		now:     time.Now,
	}
}

// WithClock overrides the time source. Used by the greeting band and tests.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// Assemble builds the full report for one record set. Currency and stock
// lookups run concurrently; their output order matches the requested
// currencies and symbols.
func (a *Assembler) Assemble(ctx context.Context, records []core.Transaction, currencies, symbols []string) Report {
	rep := Report{
		Greeting:        Greeting(a.now()),
		Cards:           make([]CardEntry, 0),
		TopTransactions: make([]TopEntry, 0),
		CurrencyRates:   make([]CurrencyRate, 0, len(currencies)),
		StockPrices:     make([]StockPrice, 0, len(symbols)),
	}

	for _, s := range Aggregate(records, a.opts) {
		rep.Cards = append(rep.Cards, CardEntry{
			LastDigits: s.CardID,
			TotalSpent: s.TotalSpent,
			Cashback:   s.Cashback,
		})
	}

	for _, tx := range TopN(records, a.topN) {
		rep.TopTransactions = append(rep.TopTransactions, TopEntry{
			Date:        tx.Date,
			Amount:      tx.Amount,
			Category:    tx.Category,
			Description: tx.Description,
		})
	}

	var rateQuotes, priceQuotes []quotes.Quote
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rateQuotes = a.fetchRates(gctx, currencies)
		return nil
	})
	g.Go(func() error {
		priceQuotes = a.fetchPrices(gctx, symbols)
		return nil
	})
	_ = g.Wait()

	for _, q := range rateQuotes {
		rep.CurrencyRates = append(rep.CurrencyRates, CurrencyRate{Currency: q.Code, Rate: q.Amount})
	}
	for _, q := range priceQuotes {
		rep.StockPrices = append(rep.StockPrices, StockPrice{Symbol: q.Code, Price: q.Amount})
	}
	return rep
}

func (a *Assembler) fetchRates(ctx context.Context, currencies []string) []quotes.Quote {
	if a.rates == nil {
		return unavailableQuotes(currencies)
	}
	return a.fetcher.Rates(ctx, a.rates, currencies)
}

func (a *Assembler) fetchPrices(ctx context.Context, symbols []string) []quotes.Quote {
	if a.prices == nil {
		return unavailableQuotes(symbols)
	}
	return a.fetcher.Prices(ctx, a.prices, symbols)
}

func unavailableQuotes(codes []string) []quotes.Quote {
	out := make([]quotes.Quote, len(codes))
	for i, code := range codes {
		out[i].Code = code
	}
	return out
}
