package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivesh/fincalc/internal/domain"
)

func TestSuggestRebalancing(t *testing.T) {
	t.Run("Underweight equity triggers a buy", func(t *testing.T) {
		// Age 30 under rule 110 targets 80/20; current 60/40 drifts -20 on equity.
		rec, err := SuggestRebalancing(
			decimal.NewFromInt(1000000),
			decimal.NewFromInt(60), decimal.NewFromInt(40),
			30, 110,
		)
		require.NoError(t, err)

		assert.Equal(t, 110, rec.RuleUsed)
		assert.True(t, rec.Recommended.EquityPct.Equal(decimal.NewFromInt(80)))
		assert.True(t, rec.EquityDeviationPct.Equal(decimal.NewFromInt(-20)))
		assert.True(t, rec.NeedsRebalancing)
		assert.Equal(t, domain.ActionSellDebtBuyEquity, rec.Action)
		assert.Equal(t, "Sell debt and buy equity", rec.Action.Description())

		assert.True(t, rec.EquityChange.Equal(decimal.NewFromInt(200000)),
			"equity change: %s", rec.EquityChange)
		assert.True(t, rec.DebtChange.Equal(decimal.NewFromInt(-200000)))
	})

	t.Run("Overweight equity triggers a sell", func(t *testing.T) {
		rec, err := SuggestRebalancing(
			decimal.NewFromInt(2000000),
			decimal.NewFromInt(90), decimal.NewFromInt(10),
			30, 110,
		)
		require.NoError(t, err)

		assert.True(t, rec.NeedsRebalancing)
		assert.Equal(t, domain.ActionSellEquityBuyDebt, rec.Action)
		assert.True(t, rec.EquityChange.IsNegative())
		assert.True(t, rec.DebtChange.IsPositive())
	})

	t.Run("Rule 100 shifts the target", func(t *testing.T) {
		// Age 30 under rule 100 targets 70/30.
		rec, err := SuggestRebalancing(
			decimal.NewFromInt(1000000),
			decimal.NewFromInt(70), decimal.NewFromInt(30),
			30, 100,
		)
		require.NoError(t, err)

		assert.Equal(t, 100, rec.RuleUsed)
		assert.True(t, rec.Recommended.EquityPct.Equal(decimal.NewFromInt(70)))
		assert.False(t, rec.NeedsRebalancing)
	})

	t.Run("Drift within threshold needs nothing", func(t *testing.T) {
		rec, err := SuggestRebalancing(
			decimal.NewFromInt(1000000),
			decimal.NewFromInt(78), decimal.NewFromInt(22),
			30, 110,
		)
		require.NoError(t, err)

		assert.False(t, rec.NeedsRebalancing)
		assert.Equal(t, domain.ActionNone, rec.Action)
		assert.True(t, rec.EquityChange.IsZero())
		assert.True(t, rec.DebtChange.IsZero())
	})

	t.Run("Drift exactly at threshold needs nothing", func(t *testing.T) {
		rec, err := SuggestRebalancing(
			decimal.NewFromInt(1000000),
			decimal.NewFromInt(75), decimal.NewFromInt(25),
			30, 110,
		)
		require.NoError(t, err)
		assert.False(t, rec.NeedsRebalancing)
	})

	t.Run("Percentages that do not sum to 100 rejected", func(t *testing.T) {
		_, err := SuggestRebalancing(
			decimal.NewFromInt(1000000),
			decimal.NewFromInt(60), decimal.NewFromInt(20),
			30, 110,
		)
		require.Error(t, err)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Percentage above 100 rejected despite passing the sum gate", func(t *testing.T) {
		_, err := SuggestRebalancing(
			decimal.NewFromInt(1000000),
			decimal.NewFromInt(101), decimal.Zero,
			30, 110,
		)
		require.Error(t, err)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Unknown rule rejected", func(t *testing.T) {
		_, err := SuggestRebalancing(
			decimal.NewFromInt(1000000),
			decimal.NewFromInt(60), decimal.NewFromInt(40),
			30, 115,
		)
		assert.Error(t, err)
	})

	t.Run("Zero portfolio rejected", func(t *testing.T) {
		_, err := SuggestRebalancing(
			decimal.Zero,
			decimal.NewFromInt(60), decimal.NewFromInt(40),
			30, 110,
		)
		assert.Error(t, err)
	})
}
