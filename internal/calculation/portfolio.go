package calculation

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/internal/marketdata"
	"github.com/nivesh/fincalc/pkg/money"
)

// Market-cap bucket thresholds in INR.
var (
	largeCapFloor = decimal.New(2, 11) // 200B
	midCapFloor   = decimal.New(5, 10) // 50B
)

const defaultFetchConcurrency = 5

func capCategory(marketCap decimal.Decimal) domain.CapCategory {
	switch {
	case marketCap.GreaterThanOrEqual(largeCapFloor):
		return domain.CapLarge
	case marketCap.GreaterThanOrEqual(midCapFloor):
		return domain.CapMid
	default:
		return domain.CapSmall
	}
}

// PortfolioAnalyzer values holdings with live market data and aggregates
// them into cap and sector buckets.
type PortfolioAnalyzer struct {
	provider    marketdata.Provider
	concurrency int
	logger      Logger
}

// NewPortfolioAnalyzer returns an analyzer over the given quote provider.
// maxConcurrent bounds in-flight fetches; values below 1 use the default.
func NewPortfolioAnalyzer(p marketdata.Provider, maxConcurrent int) *PortfolioAnalyzer {
	if maxConcurrent < 1 {
		maxConcurrent = defaultFetchConcurrency
	}
	return &PortfolioAnalyzer{provider: p, concurrency: maxConcurrent, logger: NopLogger{}}
}

// SetLogger sets the logger for fetch diagnostics.
func (a *PortfolioAnalyzer) SetLogger(l Logger) {
	if l != nil {
		a.logger = l
	}
}

// Analyze values each holding and aggregates percentage allocations by
// market-cap category and sector. A failed fetch marks its holding and is
// excluded from totals; the batch carries on. Percentages are of the total
// successfully valued amount, so they sum to 100 whenever anything priced.
func (a *PortfolioAnalyzer) Analyze(ctx context.Context, holdings []domain.Holding) (*domain.PortfolioSummary, error) {
	if len(holdings) == 0 {
		return nil, domain.Invalid("holdings", "must not be empty")
	}
	for i, h := range holdings {
		if h.Symbol == "" {
			return nil, domain.Invalidf("holdings", "holding %d has no symbol", i)
		}
		if h.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, domain.Invalidf("holdings", "holding %s quantity must be positive", h.Symbol)
		}
	}

	records := make([]domain.HoldingRecord, len(holdings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, h := range holdings {
		i, h := i, h
		g.Go(func() error {
			rec := domain.HoldingRecord{Symbol: h.Symbol, Quantity: h.Quantity}
			quote, err := a.provider.Quote(gctx, h.Symbol)
			if err != nil {
				a.logger.Debugf("quote fetch failed for %s: %v", h.Symbol, err)
				rec.Err = err.Error()
			} else {
				rec.Name = quote.Name
				rec.Price = quote.Price
				rec.Value = money.Round2(quote.Price.Mul(h.Quantity))
				rec.Sector = quote.Sector
				rec.CapCategory = capCategory(quote.MarketCap)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &domain.PortfolioSummary{
		Holdings:           records,
		AllocationByCap:    map[domain.CapCategory]decimal.Decimal{},
		AllocationBySector: map[string]decimal.Decimal{},
	}

	var total decimal.Decimal
	for _, rec := range records {
		if rec.Err != "" {
			summary.FailedFetches++
			continue
		}
		total = total.Add(rec.Value)
	}
	summary.TotalValue = money.Round2(total)

	if total.IsZero() {
		return summary, nil
	}

	capValues := map[domain.CapCategory]decimal.Decimal{}
	sectorValues := map[string]decimal.Decimal{}
	for _, rec := range records {
		if rec.Err != "" {
			continue
		}
		capValues[rec.CapCategory] = capValues[rec.CapCategory].Add(rec.Value)
		sector := rec.Sector
		if sector == "" {
			sector = "Unknown"
		}
		sectorValues[sector] = sectorValues[sector].Add(rec.Value)
	}
	for cap, v := range capValues {
		summary.AllocationByCap[cap] = v.Div(total).Mul(hundred).Round(2)
	}
	for sector, v := range sectorValues {
		summary.AllocationBySector[sector] = v.Div(total).Mul(hundred).Round(2)
	}
	return summary, nil
}
