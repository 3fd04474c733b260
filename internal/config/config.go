// Package config loads and validates runtime settings: market-data plumbing
// and the financial assumptions the engines fall back to when a request does
// not supply its own.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MarketData configures the quote provider used by portfolio analysis.
type MarketData struct {
	BaseURL        string `yaml:"base_url" json:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxConcurrent  int    `yaml:"max_concurrent" json:"max_concurrent"`
}

// Assumptions are the default financial parameters applied when a request
// leaves them unset.
type Assumptions struct {
	InflationPct           decimal.Decimal `yaml:"inflation_pct" json:"inflation_pct"`
	PreRetirementReturnPct decimal.Decimal `yaml:"pre_retirement_return_pct" json:"pre_retirement_return_pct"`
	EPFRatePct             decimal.Decimal `yaml:"epf_rate_pct" json:"epf_rate_pct"`
	LoanRatePct            decimal.Decimal `yaml:"loan_rate_pct" json:"loan_rate_pct"`
	LoanTenureYears        int             `yaml:"loan_tenure_years" json:"loan_tenure_years"`
	FOIRLimitPct           decimal.Decimal `yaml:"foir_limit_pct" json:"foir_limit_pct"`
}

// Config is the full runtime configuration.
type Config struct {
	MarketData  MarketData  `yaml:"market_data" json:"market_data"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		MarketData: MarketData{
			BaseURL:        "https://query1.finance.yahoo.com",
			TimeoutSeconds: 10,
			MaxConcurrent:  5,
		},
		Assumptions: Assumptions{
			InflationPct:           decimal.NewFromInt(6),
			PreRetirementReturnPct: decimal.NewFromInt(12),
			EPFRatePct:             decimal.NewFromFloat(8.25),
			LoanRatePct:            decimal.NewFromFloat(8.5),
			LoanTenureYears:        20,
			FOIRLimitPct:           decimal.NewFromInt(50),
		},
	}
}

// LoadFromFile reads a YAML configuration file, layering it over the
// defaults, and validates the result.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks every setting is inside its working range.
func (c *Config) Validate() error {
	if c.MarketData.BaseURL == "" {
		return fmt.Errorf("market_data.base_url must not be empty")
	}
	if c.MarketData.TimeoutSeconds <= 0 || c.MarketData.TimeoutSeconds > 120 {
		return fmt.Errorf("market_data.timeout_seconds must be in [1, 120], got %d", c.MarketData.TimeoutSeconds)
	}
	if c.MarketData.MaxConcurrent <= 0 || c.MarketData.MaxConcurrent > 50 {
		return fmt.Errorf("market_data.max_concurrent must be in [1, 50], got %d", c.MarketData.MaxConcurrent)
	}

	fifty := decimal.NewFromInt(50)
	if c.Assumptions.InflationPct.IsNegative() || c.Assumptions.InflationPct.GreaterThan(fifty) {
		return fmt.Errorf("assumptions.inflation_pct must be in [0, 50], got %s", c.Assumptions.InflationPct)
	}
	if c.Assumptions.PreRetirementReturnPct.LessThanOrEqual(decimal.Zero) || c.Assumptions.PreRetirementReturnPct.GreaterThan(fifty) {
		return fmt.Errorf("assumptions.pre_retirement_return_pct must be in (0, 50], got %s", c.Assumptions.PreRetirementReturnPct)
	}
	if c.Assumptions.EPFRatePct.LessThanOrEqual(decimal.Zero) || c.Assumptions.EPFRatePct.GreaterThan(fifty) {
		return fmt.Errorf("assumptions.epf_rate_pct must be in (0, 50], got %s", c.Assumptions.EPFRatePct)
	}
	if c.Assumptions.LoanRatePct.LessThanOrEqual(decimal.Zero) || c.Assumptions.LoanRatePct.GreaterThan(fifty) {
		return fmt.Errorf("assumptions.loan_rate_pct must be in (0, 50], got %s", c.Assumptions.LoanRatePct)
	}
	if c.Assumptions.LoanTenureYears <= 0 || c.Assumptions.LoanTenureYears > 50 {
		return fmt.Errorf("assumptions.loan_tenure_years must be in [1, 50], got %d", c.Assumptions.LoanTenureYears)
	}
	if c.Assumptions.FOIRLimitPct.LessThanOrEqual(decimal.Zero) || c.Assumptions.FOIRLimitPct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("assumptions.foir_limit_pct must be in (0, 100], got %s", c.Assumptions.FOIRLimitPct)
	}
	return nil
}
