package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// Allocation rule parameters. The rule number minus age gives the raw equity
// percentage, clamped so neither very young nor very old investors get an
// extreme portfolio.
var (
	equityFloorPct   = decimal.NewFromInt(20)
	equityCeilingPct = decimal.NewFromInt(80)
	hundred          = decimal.NewFromInt(100)

	goldYoungPct = decimal.NewFromInt(5)
	goldOlderPct = decimal.NewFromInt(7)
	goldAgeCut   = 40
)

// Equity sub-weights shift with age: younger investors tilt toward mid and
// small caps, older ones toward large caps.
var (
	equityBreakdownUnder35 = map[string]decimal.Decimal{
		"large_cap":     decimal.NewFromInt(40),
		"mid_cap":       decimal.NewFromInt(35),
		"small_cap":     decimal.NewFromInt(15),
		"international": decimal.NewFromInt(10),
	}
	equityBreakdown35To50 = map[string]decimal.Decimal{
		"large_cap":     decimal.NewFromInt(50),
		"mid_cap":       decimal.NewFromInt(30),
		"small_cap":     decimal.NewFromInt(10),
		"international": decimal.NewFromInt(10),
	}
	equityBreakdown50Plus = map[string]decimal.Decimal{
		"large_cap":     decimal.NewFromInt(60),
		"mid_cap":       decimal.NewFromInt(25),
		"small_cap":     decimal.NewFromInt(5),
		"international": decimal.NewFromInt(10),
	}
)

func equityBreakdownFor(age int) map[string]decimal.Decimal {
	switch {
	case age < 35:
		return equityBreakdownUnder35
	case age < 50:
		return equityBreakdown35To50
	default:
		return equityBreakdown50Plus
	}
}

var debtBreakdownPcts = map[string]decimal.Decimal{
	"ppf_epf":      decimal.NewFromInt(40),
	"debt_funds":   decimal.NewFromInt(40),
	"fd_liquid":    decimal.NewFromInt(20),
}

var goldBreakdownPcts = map[string]decimal.Decimal{
	"sovereign_gold_bonds": decimal.NewFromInt(70),
	"gold_etf":             decimal.NewFromInt(30),
}

// ruleForTolerance maps a stated risk appetite to the allocation rule
// number. Aggressive softens to the 110 rule from age 40 on.
func ruleForTolerance(t domain.RiskTolerance, age int) (int, error) {
	switch t {
	case domain.ToleranceConservative:
		return 100, nil
	case domain.ToleranceModerate:
		return 110, nil
	case domain.ToleranceAggressive:
		if age < 40 {
			return 120, nil
		}
		return 110, nil
	default:
		return 0, domain.Invalid("risk_tolerance", "must be conservative, moderate or aggressive")
	}
}

func clampedEquity(rule, age int) decimal.Decimal {
	raw := decimal.NewFromInt(int64(rule - age))
	return money.Max(equityFloorPct, money.Min(raw, equityCeilingPct))
}

// AgeBasedAllocation recommends an equity/debt/gold split using the
// "rule minus age" family. ruleOverride of 0 means auto-select from the
// risk tolerance; otherwise it must be 100, 110 or 120.
func AgeBasedAllocation(age int, tolerance domain.RiskTolerance, ruleOverride int) (*domain.AllocationPlan, error) {
	if age < 18 || age > 100 {
		return nil, domain.Invalid("age", "must be in [18, 100]")
	}

	rule := ruleOverride
	if rule == 0 {
		var err error
		rule, err = ruleForTolerance(tolerance, age)
		if err != nil {
			return nil, err
		}
	} else if rule != 100 && rule != 110 && rule != 120 {
		return nil, domain.Invalid("rule", "must be 100, 110 or 120")
	}

	gold := goldYoungPct
	if age >= goldAgeCut {
		gold = goldOlderPct
	}

	// Scale the equity/debt split into the non-gold share so the three
	// buckets sum to exactly 100.
	scale := hundred.Sub(gold).Div(hundred)
	equity := clampedEquity(rule, age).Mul(scale).Round(2)
	debt := hundred.Sub(equity).Sub(gold)

	comparison := make(map[string]domain.AssetMix, 3)
	for _, r := range []int{100, 110, 120} {
		eq := clampedEquity(r, age)
		comparison[ruleName(r)] = domain.AssetMix{
			EquityPct: eq,
			DebtPct:   hundred.Sub(eq),
		}
	}

	return &domain.AllocationPlan{
		Age:           age,
		RiskTolerance: tolerance,
		RuleUsed:      rule,
		EquityPct:     equity,
		DebtPct:       debt,
		GoldPct:       gold,

		EquityBreakdown: portionOf(equity, equityBreakdownFor(age)),
		DebtBreakdown:   portionOf(debt, debtBreakdownPcts),
		GoldBreakdown:   portionOf(gold, goldBreakdownPcts),

		RuleComparison: comparison,
	}, nil
}

func ruleName(rule int) string {
	switch rule {
	case 100:
		return "rule_100"
	case 110:
		return "rule_110"
	default:
		return "rule_120"
	}
}

// portionOf splits a whole-portfolio percentage across sub-buckets; the
// resulting values are percentages of the whole portfolio.
func portionOf(total decimal.Decimal, parts map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(parts))
	for name, pct := range parts {
		out[name] = money.Pct(total, pct)
	}
	return out
}
