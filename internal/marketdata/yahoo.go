package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooClient fetches quotes from Yahoo Finance's public quoteSummary API.
// No API key is required. Bare symbols are assumed to be NSE listings and
// get the ".NS" suffix appended.
type YahooClient struct {
	baseURL string
	http    *http.Client
}

// YahooOption configures a YahooClient.
type YahooOption func(*YahooClient)

// WithBaseURL overrides the API endpoint, primarily for tests.
func WithBaseURL(u string) YahooOption {
	return func(c *YahooClient) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) YahooOption {
	return func(c *YahooClient) { c.http.Timeout = d }
}

// NewYahooClient returns a client against the public Yahoo Finance API.
func NewYahooClient(opts ...YahooOption) *YahooClient {
	c := &YahooClient{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// toYFTicker converts a symbol to Yahoo Finance format. Symbols that already
// carry an exchange suffix or index prefix pass through unchanged.
func toYFTicker(symbol string) string {
	if strings.Contains(symbol, ".") || strings.HasPrefix(symbol, "^") {
		return symbol
	}
	return symbol + ".NS"
}

// Quote fetches price, market cap and sector for one symbol.
func (c *YahooClient) Quote(ctx context.Context, symbol string) (*Quote, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("empty symbol")}
	}
	ticker := toYFTicker(symbol)

	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,assetProfile", c.baseURL, ticker)

	var resp quoteSummaryResponse
	if err := c.fetchJSON(ctx, url, &resp); err != nil {
		return nil, &FetchError{Symbol: symbol, Err: err}
	}

	if resp.QuoteSummary.Error != nil {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("yahoo API error: %s", resp.QuoteSummary.Error.Description)}
	}
	if len(resp.QuoteSummary.Result) == 0 || resp.QuoteSummary.Result[0].Price == nil {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("no data for %s", ticker)}
	}

	r := resp.QuoteSummary.Result[0]
	q := &Quote{
		Symbol:    symbol,
		Name:      coalesce(r.Price.LongName, r.Price.ShortName),
		Price:     decimal.NewFromFloat(r.Price.RegularMarketPrice.Raw),
		MarketCap: decimal.NewFromFloat(r.Price.MarketCap.Raw),
		Currency:  r.Price.Currency,
	}
	if r.AssetProfile != nil {
		q.Sector = r.AssetProfile.Sector
	}
	if q.Price.LessThanOrEqual(decimal.Zero) {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("no price for %s", ticker)}
	}
	return q, nil
}

// History fetches daily closing prices over the given period from the v8
// chart API. Days with no traded close are skipped; the series comes back
// in ascending date order.
func (c *YahooClient) History(ctx context.Context, symbol, period string) ([]PricePoint, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("empty symbol")}
	}
	if period == "" {
		period = "1y"
	}
	ticker := toYFTicker(symbol)

	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d", c.baseURL, ticker, period)

	var resp chartResponse
	if err := c.fetchJSON(ctx, url, &resp); err != nil {
		return nil, &FetchError{Symbol: symbol, Err: err}
	}

	if resp.Chart.Error != nil {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("yahoo API error: %s", resp.Chart.Error.Description)}
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("no history for %s", ticker)}
	}

	r := resp.Chart.Result[0]
	closes := r.Indicators.Quote[0].Close
	series := make([]PricePoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		series = append(series, PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: decimal.NewFromFloat(*closes[i]),
		})
	}
	if len(series) == 0 {
		return nil, &FetchError{Symbol: symbol, Err: fmt.Errorf("no history for %s", ticker)}
	}
	return series, nil
}

func (c *YahooClient) fetchJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; fincalc/1.0)")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

func coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
