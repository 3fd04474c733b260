package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivesh/fincalc/internal/domain"
)

func TestAffordableEMI(t *testing.T) {
	foir50 := decimal.NewFromInt(50)

	tests := []struct {
		name           string
		income         decimal.Decimal
		existing       decimal.Decimal
		foir           decimal.Decimal
		expectedStatus domain.LeverageStatus
		availableEMI   decimal.Decimal
	}{
		{
			name:           "No obligations is comfortable",
			income:         decimal.NewFromInt(100000),
			existing:       decimal.Zero,
			foir:           foir50,
			expectedStatus: domain.StatusComfortable,
			availableEMI:   decimal.NewFromInt(50000),
		},
		{
			name:           "Headroom under 30 percent of income is tight",
			income:         decimal.NewFromInt(100000),
			existing:       decimal.NewFromInt(25000),
			foir:           foir50,
			expectedStatus: domain.StatusTight,
			availableEMI:   decimal.NewFromInt(25000),
		},
		{
			name:           "Obligations at the cap leave zero but non-negative headroom",
			income:         decimal.NewFromInt(100000),
			existing:       decimal.NewFromInt(50000),
			foir:           foir50,
			expectedStatus: domain.StatusTight,
			availableEMI:   decimal.Zero,
		},
		{
			name:           "Obligations above the cap are over-leveraged",
			income:         decimal.NewFromInt(100000),
			existing:       decimal.NewFromInt(55000),
			foir:           foir50,
			expectedStatus: domain.StatusOverLeveraged,
			availableEMI:   decimal.Zero,
		},
		{
			name:           "A stricter FOIR limit shrinks the headroom",
			income:         decimal.NewFromInt(100000),
			existing:       decimal.NewFromInt(15000),
			foir:           decimal.NewFromInt(40),
			expectedStatus: domain.StatusTight,
			availableEMI:   decimal.NewFromInt(25000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := AffordableEMI(tt.income, tt.existing, tt.foir)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, res.Status)
			assert.True(t, res.AvailableEMI.Equal(tt.availableEMI),
				"available EMI: %s", res.AvailableEMI)
			assert.True(t, res.FOIRLimitPct.Equal(tt.foir))

			if tt.availableEMI.IsPositive() {
				assert.True(t, res.EstimatedPrincipal.IsPositive())
			} else {
				assert.True(t, res.EstimatedPrincipal.IsZero())
			}
		})
	}
}

func TestAffordableEMIPrincipalEstimate(t *testing.T) {
	// 40000/month at 8.5% over 20 years services ~46.1 lakh.
	res, err := AffordableEMI(decimal.NewFromInt(100000), decimal.Zero, decimal.NewFromInt(40))
	require.NoError(t, err)

	assert.InDelta(t, 4609000, res.EstimatedPrincipal.InexactFloat64(), 10000)
	assert.True(t, res.AssumedRatePct.Equal(decimal.NewFromFloat(8.5)))
	assert.Equal(t, 20, res.AssumedTenureYears)
}

func TestAffordableEMIValidation(t *testing.T) {
	foir := decimal.NewFromInt(50)

	_, err := AffordableEMI(decimal.Zero, decimal.Zero, foir)
	assert.Error(t, err, "zero income")

	_, err = AffordableEMI(decimal.NewFromInt(100000), decimal.NewFromInt(-1), foir)
	assert.Error(t, err, "negative existing EMIs")

	_, err = AffordableEMI(decimal.NewFromInt(100000), decimal.Zero, decimal.Zero)
	assert.Error(t, err, "zero FOIR limit")

	_, err = AffordableEMI(decimal.NewFromInt(100000), decimal.Zero, decimal.NewFromInt(101))
	assert.Error(t, err, "FOIR limit above 100")
}
