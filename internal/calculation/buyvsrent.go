package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// BuyVsRent compares the net cost of buying a property (down payment plus
// EMIs, credited with the property's appreciation) against renting with
// yearly rent escalation over the same period. EMI payments stop once the
// loan tenure ends, even if the comparison period runs longer.
func BuyVsRent(propertyValue, downPayment, loanRatePct decimal.Decimal, loanTenureYears int,
	monthlyRent, rentIncreasePct, appreciationPct decimal.Decimal, comparisonYears int) (*domain.BuyVsRentResult, error) {

	if propertyValue.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("property_value", "must be positive")
	}
	if downPayment.IsNegative() || downPayment.GreaterThan(propertyValue) {
		return nil, domain.Invalid("down_payment", "must be in [0, property_value]")
	}
	if loanRatePct.IsNegative() || loanRatePct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("loan_rate_pct", "must be in [0, 50]")
	}
	if loanTenureYears <= 0 || loanTenureYears > 50 {
		return nil, domain.Invalid("loan_tenure_years", "must be in [1, 50]")
	}
	if monthlyRent.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("monthly_rent", "must be positive")
	}
	if rentIncreasePct.IsNegative() || rentIncreasePct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("rent_increase_pct", "must be in [0, 50]")
	}
	if appreciationPct.IsNegative() || appreciationPct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("appreciation_pct", "must be in [0, 50]")
	}
	if comparisonYears <= 0 || comparisonYears > 50 {
		return nil, domain.Invalid("comparison_years", "must be in [1, 50]")
	}

	loanAmount := propertyValue.Sub(downPayment)
	var emi decimal.Decimal
	if loanAmount.IsPositive() {
		emi = emiPayment(loanAmount, money.MonthlyRate(loanRatePct), loanTenureYears*12)
	}

	emiYears := comparisonYears
	if loanTenureYears < emiYears {
		emiYears = loanTenureYears
	}
	totalEMI := emi.Mul(decimal.NewFromInt(int64(emiYears * 12)))

	appreciated := propertyValue.Mul(one.Add(money.Rate(appreciationPct)).Pow(decimal.NewFromInt(int64(comparisonYears))))
	buyNet := downPayment.Add(totalEMI).Sub(appreciated.Sub(propertyValue))

	rentGrowth := one.Add(money.Rate(rentIncreasePct))
	rent := monthlyRent
	var totalRent decimal.Decimal
	for year := 0; year < comparisonYears; year++ {
		totalRent = totalRent.Add(rent.Mul(decimal.NewFromInt(12)))
		rent = rent.Mul(rentGrowth)
	}
	finalRent := rent.Div(rentGrowth)

	result := &domain.BuyVsRentResult{
		PropertyValue:   propertyValue,
		DownPayment:     downPayment,
		LoanAmount:      loanAmount,
		MonthlyEMI:      money.Round2(emi),
		ComparisonYears: comparisonYears,
		Buying: domain.BuyCost{
			TotalEMIPaid:       money.Round2(totalEMI),
			PropertyValueAfter: money.Round2(appreciated),
			NetCost:            money.Round2(buyNet),
		},
		Renting: domain.RentCost{
			TotalRentPaid:    money.Round2(totalRent),
			FinalMonthlyRent: money.Round2(finalRent),
			NetCost:          money.Round2(totalRent),
		},
	}

	if buyNet.LessThanOrEqual(totalRent) {
		result.BetterOption = domain.OptionBuy
		result.Savings = money.Round2(totalRent.Sub(buyNet))
	} else {
		result.BetterOption = domain.OptionRent
		result.Savings = money.Round2(buyNet.Sub(totalRent))
	}
	return result, nil
}
