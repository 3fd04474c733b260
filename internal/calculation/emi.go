package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// EMI computes the level monthly payment amortizing a loan:
// P × r × (1+r)^n / ((1+r)^n − 1). A zero rate degenerates to an even
// split of the principal.
func EMI(principal, annualRatePct decimal.Decimal, tenureYears int) (*domain.EMIResult, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("principal", "must be positive")
	}
	if annualRatePct.IsNegative() || annualRatePct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("annual_rate_pct", "must be in [0, 50]")
	}
	if tenureYears <= 0 || tenureYears > 50 {
		return nil, domain.Invalid("tenure_years", "must be in [1, 50]")
	}

	months := tenureYears * 12
	emi := emiPayment(principal, money.MonthlyRate(annualRatePct), months)
	total := emi.Mul(decimal.NewFromInt(int64(months)))

	return &domain.EMIResult{
		Principal:     principal,
		AnnualRatePct: annualRatePct,
		TenureYears:   tenureYears,
		MonthlyEMI:    money.Round2(emi),
		TotalPayment:  money.Round2(total),
		TotalInterest: money.Round2(total.Sub(principal)),
	}, nil
}

func emiPayment(principal, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(months)))
	}
	compounded := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
	return principal.Mul(monthlyRate).Mul(compounded).Div(compounded.Sub(one))
}

// principalFor inverts emiPayment: the loan a given monthly payment can
// service at the rate and tenure.
func principalFor(emi, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if monthlyRate.IsZero() {
		return emi.Mul(decimal.NewFromInt(int64(months)))
	}
	compounded := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
	return emi.Mul(compounded.Sub(one)).Div(monthlyRate.Mul(compounded))
}
