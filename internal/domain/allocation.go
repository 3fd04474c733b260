package domain

import "github.com/shopspring/decimal"

// RiskTolerance is the investor's stated appetite, used to auto-select an
// allocation rule.
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceModerate     RiskTolerance = "moderate"
	ToleranceAggressive   RiskTolerance = "aggressive"
)

// AssetMix is an equity/debt split used when comparing allocation rules.
type AssetMix struct {
	EquityPct decimal.Decimal `json:"equity_pct"`
	DebtPct   decimal.Decimal `json:"debt_pct"`
}

// AllocationPlan is the age-based equity/debt/gold recommendation.
// EquityPct + DebtPct + GoldPct always equals exactly 100; breakdown values
// are percentages of the whole portfolio, not of their bucket.
type AllocationPlan struct {
	Age           int             `json:"age"`
	RiskTolerance RiskTolerance   `json:"risk_tolerance"`
	RuleUsed      int             `json:"rule_used"`
	EquityPct     decimal.Decimal `json:"equity_pct"`
	DebtPct       decimal.Decimal `json:"debt_pct"`
	GoldPct       decimal.Decimal `json:"gold_pct"`

	EquityBreakdown map[string]decimal.Decimal `json:"equity_breakdown"`
	DebtBreakdown   map[string]decimal.Decimal `json:"debt_breakdown"`
	GoldBreakdown   map[string]decimal.Decimal `json:"gold_breakdown"`

	// RuleComparison shows the raw equity/debt split each of the three
	// rules would produce at this age, before the gold carve-out.
	RuleComparison map[string]AssetMix `json:"rule_comparison"`
}

// RebalanceAction is the trade direction needed to close an allocation drift.
type RebalanceAction string

const (
	ActionSellEquityBuyDebt RebalanceAction = "sell_equity_buy_debt"
	ActionSellDebtBuyEquity RebalanceAction = "sell_debt_buy_equity"
	ActionNone              RebalanceAction = "none"
)

// Description returns the human-readable form of the action.
func (a RebalanceAction) Description() string {
	switch a {
	case ActionSellEquityBuyDebt:
		return "Sell equity and buy debt"
	case ActionSellDebtBuyEquity:
		return "Sell debt and buy equity"
	default:
		return "No rebalancing needed"
	}
}

// AllocationSnapshot is an equity/debt split with the corresponding INR
// values for a given portfolio size.
type AllocationSnapshot struct {
	EquityPct   decimal.Decimal `json:"equity_pct"`
	DebtPct     decimal.Decimal `json:"debt_pct"`
	EquityValue decimal.Decimal `json:"equity_value"`
	DebtValue   decimal.Decimal `json:"debt_value"`
}

// RebalanceRecommendation compares the current allocation against the
// rule-based recommendation and proposes the closing trade.
type RebalanceRecommendation struct {
	PortfolioValue decimal.Decimal    `json:"portfolio_value"`
	Age            int                `json:"age"`
	RuleUsed       int                `json:"rule_used"`
	Current        AllocationSnapshot `json:"current_allocation"`
	Recommended    AllocationSnapshot `json:"recommended_allocation"`

	EquityDeviationPct decimal.Decimal `json:"equity_deviation_pct"`
	DebtDeviationPct   decimal.Decimal `json:"debt_deviation_pct"`
	ThresholdPct       decimal.Decimal `json:"rebalancing_threshold_pct"`
	NeedsRebalancing   bool            `json:"needs_rebalancing"`
	Action             RebalanceAction `json:"action"`

	// EquityChange/DebtChange are the signed INR amounts to move; positive
	// means buy, negative means sell.
	EquityChange decimal.Decimal `json:"equity_change"`
	DebtChange   decimal.Decimal `json:"debt_change"`
}

// CapCategory buckets a listed company by market capitalization.
type CapCategory string

const (
	CapLarge CapCategory = "large"
	CapMid   CapCategory = "mid"
	CapSmall CapCategory = "small"
)

// Holding is a caller-supplied position to be valued with market data.
type Holding struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
}

// HoldingRecord is a valued holding. A failed market-data fetch leaves the
// pricing fields zero and sets Err; the rest of the batch is unaffected.
type HoldingRecord struct {
	Symbol      string          `json:"symbol"`
	Name        string          `json:"name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Value       decimal.Decimal `json:"value"`
	Sector      string          `json:"sector,omitempty"`
	CapCategory CapCategory     `json:"cap_category,omitempty"`
	Err         string          `json:"error,omitempty"`
}

// PortfolioSummary aggregates valued holdings into percentage buckets by
// market-cap category and sector. When TotalValue is zero the buckets are
// empty and no percentages are reported.
type PortfolioSummary struct {
	Holdings           []HoldingRecord            `json:"holdings"`
	TotalValue         decimal.Decimal            `json:"total_value"`
	AllocationByCap    map[CapCategory]decimal.Decimal `json:"allocation_by_cap"`
	AllocationBySector map[string]decimal.Decimal      `json:"allocation_by_sector"`
	FailedFetches      int                        `json:"failed_fetches"`
}
