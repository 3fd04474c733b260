package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivesh/fincalc/internal/domain"
)

func TestCapitalGains(t *testing.T) {
	tests := []struct {
		name         string
		buy          decimal.Decimal
		sell         decimal.Decimal
		days         int
		quantity     decimal.Decimal
		equity       bool
		expectedType domain.CapitalGainsType
		expectedTax  decimal.Decimal
		estimate     bool
	}{
		{
			name:         "Equity LTCG under exemption pays nothing",
			buy:          decimal.NewFromInt(100),
			sell:         decimal.NewFromInt(120),
			days:         400,
			quantity:     decimal.NewFromInt(10),
			equity:       true,
			expectedType: domain.GainsEquityLTCG,
			expectedTax:  decimal.Zero, // gain 200, under the 125000 exemption
		},
		{
			name:         "Equity STCG at flat 20 percent",
			buy:          decimal.NewFromInt(100),
			sell:         decimal.NewFromInt(200),
			days:         30,
			quantity:     decimal.NewFromInt(10),
			equity:       true,
			expectedType: domain.GainsEquitySTCG,
			expectedTax:  decimal.NewFromInt(200), // 1000 * 0.20
		},
		{
			name:         "Equity LTCG above exemption",
			buy:          decimal.NewFromInt(100),
			sell:         decimal.NewFromInt(300),
			days:         400,
			quantity:     decimal.NewFromInt(1000),
			equity:       true,
			expectedType: domain.GainsEquityLTCG,
			expectedTax:  decimal.NewFromInt(9375), // (200000-125000) * 0.125
		},
		{
			name:         "Exactly 365 days is still short term",
			buy:          decimal.NewFromInt(100),
			sell:         decimal.NewFromInt(200),
			days:         365,
			quantity:     decimal.NewFromInt(10),
			equity:       true,
			expectedType: domain.GainsEquitySTCG,
			expectedTax:  decimal.NewFromInt(200),
		},
		{
			name:         "Debt LTCG at 12.5 percent",
			buy:          decimal.NewFromInt(100),
			sell:         decimal.NewFromInt(110),
			days:         1200,
			quantity:     decimal.NewFromInt(100),
			equity:       false,
			expectedType: domain.GainsDebtLTCG,
			expectedTax:  decimal.NewFromInt(125), // 1000 * 0.125
		},
		{
			name:         "Debt STCG estimated at slab plus cess",
			buy:          decimal.NewFromInt(100),
			sell:         decimal.NewFromInt(110),
			days:         200,
			quantity:     decimal.NewFromInt(100),
			equity:       false,
			expectedType: domain.GainsDebtSTCG,
			expectedTax:  decimal.NewFromInt(312), // 1000 * 0.312
			estimate:     true,
		},
		{
			name:         "Loss pays no tax",
			buy:          decimal.NewFromInt(100),
			sell:         decimal.NewFromInt(80),
			days:         400,
			quantity:     decimal.NewFromInt(10),
			equity:       true,
			expectedType: domain.GainsCapitalLoss,
			expectedTax:  decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CapitalGains(tt.buy, tt.sell, tt.days, tt.quantity, tt.equity)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedType, res.TaxType)
			assert.True(t, res.TaxAmount.Equal(tt.expectedTax),
				"expected tax %s, got %s", tt.expectedTax.StringFixed(2), res.TaxAmount.StringFixed(2))
			assert.Equal(t, tt.estimate, res.Estimate)
			assert.True(t, res.NetProceeds.Equal(res.SellValue.Sub(res.TaxAmount)),
				"net proceeds should be sell value less tax")
		})
	}
}

func TestCapitalGainsLossDetails(t *testing.T) {
	res, err := CapitalGains(
		decimal.NewFromInt(100), decimal.NewFromInt(80), 400, decimal.NewFromInt(10), true)
	require.NoError(t, err)

	assert.True(t, res.Gain.Equal(decimal.NewFromInt(-200)))
	assert.True(t, res.TaxAmount.IsZero())
	assert.Contains(t, res.Note, "carried forward")
}

func TestCapitalGainsValidation(t *testing.T) {
	good := decimal.NewFromInt(100)
	qty := decimal.NewFromInt(10)

	_, err := CapitalGains(decimal.Zero, good, 100, qty, true)
	assert.Error(t, err, "zero buy price")

	_, err = CapitalGains(good, decimal.NewFromInt(-1), 100, qty, true)
	assert.Error(t, err, "negative sell price")

	_, err = CapitalGains(good, good, -1, qty, true)
	assert.Error(t, err, "negative holding period")

	_, err = CapitalGains(good, good, 100, decimal.Zero, true)
	assert.Error(t, err, "zero quantity")
}
