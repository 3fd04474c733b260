package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectEPF(t *testing.T) {
	t.Run("Wage ceiling and EPS carve-out", func(t *testing.T) {
		// Basic 20000 is above the 15000 ceiling, so statutory contributions
		// apply to 15000 only. EPS = min(15000*8.33%, 1250) = 1249.50.
		proj, err := ProjectEPF(
			decimal.NewFromInt(20000), // monthly basic
			decimal.NewFromInt(12),    // employee %
			decimal.NewFromInt(12),    // employer %
			decimal.Zero,              // vpf %
			decimal.Zero,              // current balance
			decimal.NewFromFloat(8.25),
			1,
		)
		require.NoError(t, err)

		assert.True(t, proj.EligibleBasic.Equal(decimal.NewFromInt(15000)))
		assert.True(t, proj.Monthly.EmployeeEPF.Equal(decimal.NewFromInt(1800)))
		assert.True(t, proj.Monthly.EmployerEPS.Equal(decimal.NewFromFloat(1249.50)),
			"eps: %s", proj.Monthly.EmployerEPS)
		assert.True(t, proj.Monthly.EmployerEPF.Equal(decimal.NewFromFloat(550.50)),
			"employer epf: %s", proj.Monthly.EmployerEPF)

		// EPS goes to pension, not the fund balance: 1800 + 550.50 = 2350.50.
		assert.True(t, proj.Monthly.Total.Equal(decimal.NewFromFloat(2350.50)))
		assert.True(t, proj.AnnualContribution.Equal(decimal.NewFromInt(28206)))

		// Twelve monthly contributions of 2350.50 compounding at 8.25%/12:
		// 2350.50 * ((1.006875^12 - 1)/0.006875) * 1.006875 ~= 29498.78.
		assert.InDelta(t, 29498.78, proj.MaturityValue.InexactFloat64(), 1)
		assert.True(t, proj.InterestEarned.Equal(
			proj.MaturityValue.Sub(proj.TotalContributions)))
	})

	t.Run("VPF rides on full basic without ceiling", func(t *testing.T) {
		proj, err := ProjectEPF(
			decimal.NewFromInt(20000),
			decimal.NewFromInt(12),
			decimal.NewFromInt(12),
			decimal.NewFromInt(5), // VPF on actual basic
			decimal.Zero,
			decimal.NewFromFloat(8.25),
			5,
		)
		require.NoError(t, err)
		assert.True(t, proj.Monthly.VPF.Equal(decimal.NewFromInt(1000)),
			"vpf: %s", proj.Monthly.VPF)
	})

	t.Run("Existing balance compounds monthly", func(t *testing.T) {
		withBalance, err := ProjectEPF(
			decimal.NewFromInt(15000),
			decimal.NewFromInt(12),
			decimal.NewFromInt(12),
			decimal.Zero,
			decimal.NewFromInt(1000000),
			decimal.NewFromFloat(8.25),
			20,
		)
		require.NoError(t, err)

		withoutBalance, err := ProjectEPF(
			decimal.NewFromInt(15000),
			decimal.NewFromInt(12),
			decimal.NewFromInt(12),
			decimal.Zero,
			decimal.Zero,
			decimal.NewFromFloat(8.25),
			20,
		)
		require.NoError(t, err)

		// The opening balance alone grows by (1 + 0.0825/12)^240 ~= 5.1777x.
		balanceGrowth := withBalance.MaturityValue.Sub(withoutBalance.MaturityValue)
		assert.InDelta(t, 5177733, balanceGrowth.InexactFloat64(), 100)
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := ProjectEPF(decimal.Zero, decimal.NewFromInt(12), decimal.NewFromInt(12),
			decimal.Zero, decimal.Zero, decimal.NewFromFloat(8.25), 10)
		assert.Error(t, err, "zero basic")

		_, err = ProjectEPF(decimal.NewFromInt(20000), decimal.NewFromInt(-1), decimal.NewFromInt(12),
			decimal.Zero, decimal.Zero, decimal.NewFromFloat(8.25), 10)
		assert.Error(t, err, "negative contribution rate")

		_, err = ProjectEPF(decimal.NewFromInt(20000), decimal.NewFromInt(12), decimal.NewFromInt(12),
			decimal.Zero, decimal.Zero, decimal.NewFromFloat(8.25), 0)
		assert.Error(t, err, "zero years")
	})
}
