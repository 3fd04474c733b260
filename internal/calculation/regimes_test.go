package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivesh/fincalc/internal/domain"
)

func TestOldRegimeSlabTax(t *testing.T) {
	calc := NewRegimeCalculator()

	tests := []struct {
		name        string
		taxable     decimal.Decimal
		expectedTax decimal.Decimal
	}{
		{
			name:        "Zero income",
			taxable:     decimal.Zero,
			expectedTax: decimal.Zero,
		},
		{
			name:        "Below basic exemption",
			taxable:     decimal.NewFromInt(250000),
			expectedTax: decimal.Zero,
		},
		{
			name:        "Just into 5% slab",
			taxable:     decimal.NewFromInt(300000),
			expectedTax: decimal.NewFromInt(2500), // 50000 * 0.05
		},
		{
			name:        "Top of 5% slab",
			taxable:     decimal.NewFromInt(500000),
			expectedTax: decimal.NewFromInt(12500), // 250000 * 0.05
		},
		{
			name:        "Top of 20% slab",
			taxable:     decimal.NewFromInt(1000000),
			expectedTax: decimal.NewFromInt(112500), // 12500 + 500000*0.20
		},
		{
			name:        "Into 30% slab",
			taxable:     decimal.NewFromInt(1500000),
			expectedTax: decimal.NewFromInt(262500), // 112500 + 500000*0.30
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, err := calc.OldRegimeTax(tt.taxable)
			require.NoError(t, err)
			assert.True(t, tax.Equal(tt.expectedTax),
				"expected %s, got %s", tt.expectedTax.StringFixed(2), tax.StringFixed(2))
		})
	}
}

func TestNewRegimeSlabTax(t *testing.T) {
	calc := NewRegimeCalculator()

	tests := []struct {
		name        string
		taxable     decimal.Decimal
		expectedTax decimal.Decimal
	}{
		{
			name:        "Below basic exemption",
			taxable:     decimal.NewFromInt(300000),
			expectedTax: decimal.Zero,
		},
		{
			name:        "Top of 5% slab",
			taxable:     decimal.NewFromInt(700000),
			expectedTax: decimal.NewFromInt(20000), // 400000 * 0.05
		},
		{
			name:        "Top of 10% slab",
			taxable:     decimal.NewFromInt(1000000),
			expectedTax: decimal.NewFromInt(50000), // 20000 + 300000*0.10
		},
		{
			name:        "Top of 20% slab",
			taxable:     decimal.NewFromInt(1500000),
			expectedTax: decimal.NewFromInt(140000), // 20000 + 30000 + 30000 + 60000
		},
		{
			name:        "Into 30% slab",
			taxable:     decimal.NewFromInt(2000000),
			expectedTax: decimal.NewFromInt(290000), // 140000 + 500000*0.30
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, err := calc.NewRegimeTax(tt.taxable)
			require.NoError(t, err)
			assert.True(t, tax.Equal(tt.expectedTax),
				"expected %s, got %s", tt.expectedTax.StringFixed(2), tax.StringFixed(2))
		})
	}
}

// Tax should never decrease as taxable income rises, and should be
// continuous across every slab boundary.
func TestSlabTaxMonotonicAndContinuous(t *testing.T) {
	calc := NewRegimeCalculator()

	prev := decimal.Zero
	for income := int64(0); income <= 3000000; income += 50000 {
		tax, err := calc.OldRegimeTax(decimal.NewFromInt(income))
		require.NoError(t, err)
		assert.True(t, tax.GreaterThanOrEqual(prev),
			"tax decreased at income %d: %s < %s", income, tax, prev)
		prev = tax
	}

	for _, boundary := range []int64{250000, 500000, 1000000} {
		below, err := calc.OldRegimeTax(decimal.NewFromInt(boundary - 1))
		require.NoError(t, err)
		above, err := calc.OldRegimeTax(decimal.NewFromInt(boundary + 1))
		require.NoError(t, err)
		jump := above.Sub(below)
		assert.True(t, jump.LessThan(decimal.NewFromInt(1)),
			"discontinuity at %d: jump of %s", boundary, jump.StringFixed(2))
	}
}

func TestCompareRegimes(t *testing.T) {
	calc := NewRegimeCalculator()

	t.Run("No deductions favours new regime", func(t *testing.T) {
		cmp, err := calc.CompareRegimes(decimal.NewFromInt(1000000), RegimeDeductions{})
		require.NoError(t, err)

		// Old: taxable 950000 -> 102500, cess -> 106600.
		// New: taxable 925000 -> 42500, cess -> 44200.
		assert.True(t, cmp.OldRegime.TaxWithCess.Equal(decimal.NewFromInt(106600)),
			"old regime tax: %s", cmp.OldRegime.TaxWithCess)
		assert.True(t, cmp.NewRegime.TaxWithCess.Equal(decimal.NewFromInt(44200)),
			"new regime tax: %s", cmp.NewRegime.TaxWithCess)
		assert.Equal(t, domain.RegimeNew, cmp.Recommended)
		assert.True(t, cmp.Savings.Equal(decimal.NewFromInt(62400)))
		assert.NotEmpty(t, cmp.Reason)
	})

	t.Run("Heavy deductions favour old regime", func(t *testing.T) {
		ded := RegimeDeductions{
			Section80C:        decimal.NewFromInt(150000),
			Section80D:        decimal.NewFromInt(25000),
			Section80CCD1B:    decimal.NewFromInt(50000),
			Section24Interest: decimal.NewFromInt(250000), // capped to 200000
			HRAExemption:      decimal.NewFromInt(100000),
		}
		cmp, err := calc.CompareRegimes(decimal.NewFromInt(1500000), ded)
		require.NoError(t, err)

		// Old: deductions 575000 (Section 24 capped), taxable 925000 -> 97500, cess -> 101400.
		// New: taxable 1425000 -> 125000, cess -> 130000.
		assert.True(t, cmp.OldRegime.TaxableIncome.Equal(decimal.NewFromInt(925000)),
			"old taxable: %s", cmp.OldRegime.TaxableIncome)
		assert.True(t, cmp.OldRegime.TaxWithCess.Equal(decimal.NewFromInt(101400)),
			"old regime tax: %s", cmp.OldRegime.TaxWithCess)
		assert.True(t, cmp.NewRegime.TaxWithCess.Equal(decimal.NewFromInt(130000)),
			"new regime tax: %s", cmp.NewRegime.TaxWithCess)
		assert.Equal(t, domain.RegimeOld, cmp.Recommended)
		assert.True(t, cmp.Savings.Equal(decimal.NewFromInt(28600)))
	})

	t.Run("Deductions exceeding income floor taxable at zero", func(t *testing.T) {
		ded := RegimeDeductions{Section80C: decimal.NewFromInt(150000)}
		cmp, err := calc.CompareRegimes(decimal.NewFromInt(150000), ded)
		require.NoError(t, err)
		assert.True(t, cmp.OldRegime.TaxableIncome.IsZero())
		assert.True(t, cmp.OldRegime.TaxWithCess.IsZero())
	})

	t.Run("Negative income rejected", func(t *testing.T) {
		_, err := calc.CompareRegimes(decimal.NewFromInt(-1), RegimeDeductions{})
		require.Error(t, err)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Negative deduction rejected", func(t *testing.T) {
		_, err := calc.CompareRegimes(decimal.NewFromInt(1000000),
			RegimeDeductions{Section80D: decimal.NewFromInt(-5)})
		require.Error(t, err)
	})
}
