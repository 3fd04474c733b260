package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivesh/fincalc/internal/domain"
)

func TestLifeInsuranceCoverage(t *testing.T) {
	t.Run("Default multiplier is 15x", func(t *testing.T) {
		res, err := LifeInsuranceCoverage(decimal.NewFromInt(1200000), decimal.Zero)
		require.NoError(t, err)

		assert.True(t, res.RecommendedCoverage.Equal(decimal.NewFromInt(18000000)))
		assert.True(t, res.MinimumCoverage.Equal(decimal.NewFromInt(12000000)))
		assert.True(t, res.MaximumCoverage.Equal(decimal.NewFromInt(24000000)))
	})

	t.Run("Explicit multiplier within band", func(t *testing.T) {
		res, err := LifeInsuranceCoverage(decimal.NewFromInt(1000000), decimal.NewFromInt(12))
		require.NoError(t, err)
		assert.True(t, res.RecommendedCoverage.Equal(decimal.NewFromInt(12000000)))
	})

	t.Run("Multiplier outside 10-20 rejected", func(t *testing.T) {
		_, err := LifeInsuranceCoverage(decimal.NewFromInt(1000000), decimal.NewFromInt(25))
		assert.Error(t, err)
		_, err = LifeInsuranceCoverage(decimal.NewFromInt(1000000), decimal.NewFromInt(5))
		assert.Error(t, err)
	})

	t.Run("Zero income rejected", func(t *testing.T) {
		_, err := LifeInsuranceCoverage(decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestEmergencyFundTarget(t *testing.T) {
	tests := []struct {
		name       string
		stability  domain.JobStability
		dependents int
		months     int
	}{
		{"Stable job no dependents", domain.StabilityHigh, 0, 3},
		{"Moderate stability two dependents", domain.StabilityModerate, 2, 8},
		{"Low stability caps at twelve", domain.StabilityLow, 3, 12},
		{"High stability many dependents caps at twelve", domain.StabilityHigh, 15, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := EmergencyFundTarget(decimal.NewFromInt(50000), tt.stability, tt.dependents)
			require.NoError(t, err)

			assert.Equal(t, tt.months, res.RecommendedMonths)
			expected := decimal.NewFromInt(50000).Mul(decimal.NewFromInt(int64(tt.months)))
			assert.True(t, res.Amount.Equal(expected), "amount: %s", res.Amount)
		})
	}

	t.Run("Unknown stability rejected", func(t *testing.T) {
		_, err := EmergencyFundTarget(decimal.NewFromInt(50000), domain.JobStability("tenured"), 0)
		assert.Error(t, err)
	})

	t.Run("Negative dependents rejected", func(t *testing.T) {
		_, err := EmergencyFundTarget(decimal.NewFromInt(50000), domain.StabilityHigh, -1)
		assert.Error(t, err)
	})
}

func TestAnalyzeSpending(t *testing.T) {
	t.Run("Savings of 25 percent are healthy", func(t *testing.T) {
		res, err := AnalyzeSpending(
			decimal.NewFromInt(100000), decimal.NewFromInt(10000), decimal.NewFromInt(15000))
		require.NoError(t, err)

		assert.True(t, res.Spending.Equal(decimal.NewFromInt(75000)))
		assert.True(t, res.SpendingPct.Equal(decimal.NewFromInt(75)))
		assert.True(t, res.TotalSavedPct.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, domain.SavingsHealthy, res.Status)
	})

	t.Run("Savings of 10 percent need improvement", func(t *testing.T) {
		res, err := AnalyzeSpending(
			decimal.NewFromInt(100000), decimal.NewFromInt(5000), decimal.NewFromInt(5000))
		require.NoError(t, err)
		assert.Equal(t, domain.SavingsNeedsImprovement, res.Status)
	})

	t.Run("Exactly 20 percent is healthy", func(t *testing.T) {
		res, err := AnalyzeSpending(
			decimal.NewFromInt(100000), decimal.NewFromInt(20000), decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, domain.SavingsHealthy, res.Status)
	})

	t.Run("Saving more than income rejected", func(t *testing.T) {
		_, err := AnalyzeSpending(
			decimal.NewFromInt(100000), decimal.NewFromInt(80000), decimal.NewFromInt(30000))
		assert.Error(t, err)
	})
}

func TestSpendingBenchmarks(t *testing.T) {
	tests := []struct {
		age   int
		group string
	}{
		{22, "18-25"},
		{30, "26-35"},
		{45, "36-50"},
		{60, "51+"},
	}

	for _, tt := range tests {
		marks, err := SpendingBenchmarks(tt.age)
		require.NoError(t, err)
		require.NotEmpty(t, marks, "age %d", tt.age)
		for _, m := range marks {
			assert.Equal(t, tt.group, m.AgeGroup, "age %d", tt.age)
			assert.True(t, m.BenchmarkPct.IsPositive())
			assert.NotEmpty(t, m.Category)
		}
	}

	_, err := SpendingBenchmarks(10)
	assert.Error(t, err, "under 18")
}
