package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// rebalanceThresholdPct is the drift beyond which a closing trade is
// proposed. Smaller drifts cost more in churn than they recover.
var rebalanceThresholdPct = decimal.NewFromInt(5)

// SuggestRebalancing compares the current equity/debt split against the
// rule-based recommendation for the investor's age and proposes the trade
// that closes the drift. The current percentages must sum to roughly 100;
// gold is out of scope here, so the recommendation is a pure two-asset
// rule-minus-age split. Rule 110 is the usual default for longer lifespans.
func SuggestRebalancing(portfolioValue, currentEquityPct, currentDebtPct decimal.Decimal, age, rule int) (*domain.RebalanceRecommendation, error) {
	if portfolioValue.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("portfolio_value", "must be positive")
	}
	if currentEquityPct.IsNegative() || currentEquityPct.GreaterThan(hundred) ||
		currentDebtPct.IsNegative() || currentDebtPct.GreaterThan(hundred) {
		return nil, domain.Invalid("current_allocation", "percentages must be in [0, 100]")
	}
	sum := currentEquityPct.Add(currentDebtPct)
	if sum.LessThan(decimal.NewFromInt(99)) || sum.GreaterThan(decimal.NewFromInt(101)) {
		return nil, domain.Invalid("current_allocation", "equity and debt percentages must sum to 100")
	}
	if age < 18 || age > 100 {
		return nil, domain.Invalid("age", "must be in [18, 100]")
	}
	if rule != 100 && rule != 110 && rule != 120 {
		return nil, domain.Invalid("rule", "must be 100, 110 or 120")
	}

	targetEquity := clampedEquity(rule, age)
	targetDebt := hundred.Sub(targetEquity)

	current := domain.AllocationSnapshot{
		EquityPct:   currentEquityPct,
		DebtPct:     currentDebtPct,
		EquityValue: money.Pct(portfolioValue, currentEquityPct),
		DebtValue:   money.Pct(portfolioValue, currentDebtPct),
	}
	recommended := domain.AllocationSnapshot{
		EquityPct:   targetEquity,
		DebtPct:     targetDebt,
		EquityValue: money.Pct(portfolioValue, targetEquity),
		DebtValue:   money.Pct(portfolioValue, targetDebt),
	}

	equityDeviation := currentEquityPct.Sub(targetEquity)
	debtDeviation := currentDebtPct.Sub(targetDebt)

	rec := &domain.RebalanceRecommendation{
		PortfolioValue:     portfolioValue,
		Age:                age,
		RuleUsed:           rule,
		Current:            current,
		Recommended:        recommended,
		EquityDeviationPct: money.Round2(equityDeviation),
		DebtDeviationPct:   money.Round2(debtDeviation),
		ThresholdPct:       rebalanceThresholdPct,
		Action:             domain.ActionNone,
		EquityChange:       decimal.Zero,
		DebtChange:         decimal.Zero,
	}

	if equityDeviation.Abs().LessThanOrEqual(rebalanceThresholdPct) {
		return rec, nil
	}

	rec.NeedsRebalancing = true
	rec.EquityChange = money.Round2(recommended.EquityValue.Sub(current.EquityValue))
	rec.DebtChange = money.Round2(recommended.DebtValue.Sub(current.DebtValue))
	if equityDeviation.IsPositive() {
		rec.Action = domain.ActionSellEquityBuyDebt
	} else {
		rec.Action = domain.ActionSellDebtBuyEquity
	}
	return rec, nil
}
