// Package marketdata fetches live quotes for listed securities. The only
// consumer is portfolio analysis, which needs price, market cap and sector
// per symbol; providers behind the Provider interface are interchangeable.
package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a point-in-time snapshot of a listed security.
type Quote struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	MarketCap decimal.Decimal `json:"market_cap"`
	Sector    string          `json:"sector"`
	Currency  string          `json:"currency"`
}

// PricePoint is one closing price in a historical series.
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// Provider fetches quotes and price history for symbols. Implementations
// must be safe for concurrent use.
type Provider interface {
	Quote(ctx context.Context, symbol string) (*Quote, error)
	// History returns daily closing prices in ascending date order.
	// Period uses range notation: "1mo", "6mo", "1y", "5y", "max".
	History(ctx context.Context, symbol, period string) ([]PricePoint, error)
}

// FetchError wraps a failed quote fetch with the symbol it was for.
type FetchError struct {
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch quote for %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
