package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

func TestAgeBasedAllocation(t *testing.T) {
	tests := []struct {
		name      string
		age       int
		tolerance domain.RiskTolerance
		rule      int
		wantRule  int
		equity    decimal.Decimal
		debt      decimal.Decimal
		gold      decimal.Decimal
	}{
		{
			name:      "Age 30 moderate auto-selects rule 110",
			age:       30,
			tolerance: domain.ToleranceModerate,
			wantRule:  110,
			equity:    decimal.NewFromInt(76), // (110-30)=80, scaled by 0.95
			debt:      decimal.NewFromInt(19),
			gold:      decimal.NewFromInt(5),
		},
		{
			name:      "Young aggressive hits the equity ceiling",
			age:       25,
			tolerance: domain.ToleranceAggressive,
			wantRule:  120,
			equity:    decimal.NewFromInt(76), // raw 95 clamps to 80, scaled by 0.95
			debt:      decimal.NewFromInt(19),
			gold:      decimal.NewFromInt(5),
		},
		{
			name:      "Aggressive softens to rule 110 from age 40",
			age:       45,
			tolerance: domain.ToleranceAggressive,
			wantRule:  110,
			equity:    decimal.NewFromFloat(60.45), // (110-45)=65, scaled by 0.93
			debt:      decimal.NewFromFloat(32.55),
			gold:      decimal.NewFromInt(7),
		},
		{
			name:      "Older conservative gets 7 percent gold",
			age:       70,
			tolerance: domain.ToleranceConservative,
			wantRule:  100,
			equity:    decimal.NewFromFloat(27.9), // 30 scaled by 0.93
			debt:      decimal.NewFromFloat(65.1),
			gold:      decimal.NewFromInt(7),
		},
		{
			name:      "Very old floors equity at 20",
			age:       95,
			tolerance: domain.ToleranceConservative,
			wantRule:  100,
			equity:    decimal.NewFromFloat(18.6), // floor 20 scaled by 0.93
			debt:      decimal.NewFromFloat(74.4),
			gold:      decimal.NewFromInt(7),
		},
		{
			name:      "Explicit rule overrides tolerance",
			age:       30,
			tolerance: domain.ToleranceConservative,
			rule:      120,
			wantRule:  120,
			equity:    decimal.NewFromInt(76), // raw 90 clamps to 80, scaled by 0.95
			debt:      decimal.NewFromInt(19),
			gold:      decimal.NewFromInt(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := AgeBasedAllocation(tt.age, tt.tolerance, tt.rule)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRule, plan.RuleUsed)
			assert.True(t, plan.EquityPct.Equal(tt.equity), "equity: %s", plan.EquityPct)
			assert.True(t, plan.DebtPct.Equal(tt.debt), "debt: %s", plan.DebtPct)
			assert.True(t, plan.GoldPct.Equal(tt.gold), "gold: %s", plan.GoldPct)

			sum := plan.EquityPct.Add(plan.DebtPct).Add(plan.GoldPct)
			assert.True(t, sum.Equal(decimal.NewFromInt(100)),
				"allocation must sum to exactly 100, got %s", sum)
		})
	}
}

func TestAgeBasedAllocationBreakdowns(t *testing.T) {
	plan, err := AgeBasedAllocation(30, domain.ToleranceModerate, 0)
	require.NoError(t, err)

	sumOf := func(m map[string]decimal.Decimal) decimal.Decimal {
		var s decimal.Decimal
		for _, v := range m {
			s = s.Add(v)
		}
		return s
	}

	assert.True(t, sumOf(plan.EquityBreakdown).Equal(plan.EquityPct),
		"equity breakdown must sum to the equity share")
	assert.True(t, sumOf(plan.DebtBreakdown).Equal(plan.DebtPct))
	assert.True(t, sumOf(plan.GoldBreakdown).Equal(plan.GoldPct))

	require.Len(t, plan.RuleComparison, 3)
	for name, mix := range plan.RuleComparison {
		assert.True(t, mix.EquityPct.Add(mix.DebtPct).Equal(decimal.NewFromInt(100)),
			"rule %s equity+debt must be 100", name)
	}
}

func TestAgeBasedAllocationEquityBands(t *testing.T) {
	// Equity sub-weights shift by age band: under 35 tilts to mid/small,
	// 35-50 is the balanced mix, 50+ tilts to large caps.
	tests := []struct {
		age      int
		largePct int64
		midPct   int64
		smallPct int64
	}{
		{30, 40, 35, 15},
		{35, 50, 30, 10},
		{49, 50, 30, 10},
		{55, 60, 25, 5},
	}

	for _, tt := range tests {
		plan, err := AgeBasedAllocation(tt.age, domain.ToleranceModerate, 0)
		require.NoError(t, err)

		wantLarge := money.Pct(plan.EquityPct, decimal.NewFromInt(tt.largePct))
		wantMid := money.Pct(plan.EquityPct, decimal.NewFromInt(tt.midPct))
		wantSmall := money.Pct(plan.EquityPct, decimal.NewFromInt(tt.smallPct))

		assert.True(t, plan.EquityBreakdown["large_cap"].Equal(wantLarge),
			"age %d large_cap: %s", tt.age, plan.EquityBreakdown["large_cap"])
		assert.True(t, plan.EquityBreakdown["mid_cap"].Equal(wantMid),
			"age %d mid_cap: %s", tt.age, plan.EquityBreakdown["mid_cap"])
		assert.True(t, plan.EquityBreakdown["small_cap"].Equal(wantSmall),
			"age %d small_cap: %s", tt.age, plan.EquityBreakdown["small_cap"])
	}
}

func TestAgeBasedAllocationValidation(t *testing.T) {
	_, err := AgeBasedAllocation(17, domain.ToleranceModerate, 0)
	assert.Error(t, err, "under 18")

	_, err = AgeBasedAllocation(101, domain.ToleranceModerate, 0)
	assert.Error(t, err, "over 100")

	_, err = AgeBasedAllocation(30, domain.RiskTolerance("reckless"), 0)
	assert.Error(t, err, "unknown tolerance")

	_, err = AgeBasedAllocation(30, domain.ToleranceModerate, 115)
	assert.Error(t, err, "unknown rule")
}
