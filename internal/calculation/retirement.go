package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// preRetirementReturnPct is the assumed return on the accumulation SIP.
var preRetirementReturnPct = decimal.NewFromInt(12)

// RetirementCorpus sizes the corpus needed at retirement to fund expenses
// through life expectancy, and the monthly SIP required to build it. The
// corpus is the present value at retirement of a level annual withdrawal
// stream discounted at the post-retirement return.
func RetirementCorpus(currentAge, retirementAge, lifeExpectancy int, monthlyExpenses, inflationPct, postRetirementReturnPct decimal.Decimal) (*domain.RetirementPlan, error) {
	if currentAge <= 0 || currentAge >= 100 {
		return nil, domain.Invalid("current_age", "must be in [1, 99]")
	}
	if retirementAge <= currentAge {
		return nil, domain.Impossible("retirement_corpus", "retirement age must be after current age")
	}
	if lifeExpectancy <= retirementAge {
		return nil, domain.Impossible("retirement_corpus", "life expectancy must be after retirement age")
	}
	if monthlyExpenses.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("monthly_expenses", "must be positive")
	}
	if inflationPct.IsNegative() || inflationPct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("inflation_pct", "must be in [0, 50]")
	}
	if postRetirementReturnPct.LessThanOrEqual(decimal.Zero) || postRetirementReturnPct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("post_retirement_return_pct", "must be in (0, 50]")
	}

	yearsToRetirement := retirementAge - currentAge
	yearsInRetirement := lifeExpectancy - retirementAge

	inflationGrowth := one.Add(money.Rate(inflationPct))
	futureMonthly := monthlyExpenses.Mul(inflationGrowth.Pow(decimal.NewFromInt(int64(yearsToRetirement))))

	// Present value at retirement of yearsInRetirement level annual
	// withdrawals: annual × (1 − (1+r)^−n) / r.
	annualAtRetirement := futureMonthly.Mul(decimal.NewFromInt(12))
	postRate := money.Rate(postRetirementReturnPct)
	n := decimal.NewFromInt(int64(yearsInRetirement))
	discount := one.Div(one.Add(postRate).Pow(n))
	corpus := annualAtRetirement.Mul(one.Sub(discount)).Div(postRate)

	sip := monthlyPaymentFor(corpus, money.MonthlyRate(preRetirementReturnPct), yearsToRetirement*12)

	return &domain.RetirementPlan{
		CurrentAge:              currentAge,
		RetirementAge:           retirementAge,
		LifeExpectancy:          lifeExpectancy,
		YearsToRetirement:       yearsToRetirement,
		YearsInRetirement:       yearsInRetirement,
		CurrentMonthlyExpenses:  monthlyExpenses,
		FutureMonthlyExpenses:   money.Round2(futureMonthly),
		InflationPct:            inflationPct,
		PostRetirementReturnPct: postRetirementReturnPct,
		CorpusNeeded:            money.Round2(corpus),
		PreRetirementReturnPct:  preRetirementReturnPct,
		MonthlySIPNeeded:        money.Round2(sip),
	}, nil
}
