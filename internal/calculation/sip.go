package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// assumedInflationPct is the fixed inflation rate used for purchasing-power
// adjustments in SIP projections.
var assumedInflationPct = decimal.NewFromInt(6)

var one = decimal.NewFromInt(1)

// ProjectSIP simulates a monthly SIP with an optional annual step-up.
// Each month the contribution is added first and the whole balance then
// compounds at the monthly rate (annuity-due timing); the contribution
// escalates once per completed year, compounding with the step-up.
func ProjectSIP(monthlyInvestment, annualReturnPct decimal.Decimal, years int, stepUpPct decimal.Decimal) (*domain.SIPProjection, error) {
	if monthlyInvestment.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("monthly_investment", "must be positive")
	}
	if annualReturnPct.LessThanOrEqual(decimal.Zero) || annualReturnPct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("annual_return_pct", "must be in (0, 50]")
	}
	if years <= 0 || years > 50 {
		return nil, domain.Invalid("years", "must be in [1, 50]")
	}
	if stepUpPct.IsNegative() || stepUpPct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("step_up_pct", "must be in [0, 50]")
	}

	monthlyRate := money.MonthlyRate(annualReturnPct)
	growth := one.Add(monthlyRate)
	stepUpFactor := one.Add(money.Rate(stepUpPct))

	var (
		value    decimal.Decimal
		invested decimal.Decimal
	)
	sip := monthlyInvestment
	schedule := make([]domain.SIPYear, 0, years)

	for year := 1; year <= years; year++ {
		yearStart := value
		var yearInvested decimal.Decimal

		for month := 0; month < 12; month++ {
			invested = invested.Add(sip)
			yearInvested = yearInvested.Add(sip)
			value = value.Add(sip).Mul(growth)
		}

		schedule = append(schedule, domain.SIPYear{
			Year:               year,
			MonthlySIP:         money.Round2(sip),
			InvestedThisYear:   money.Round2(yearInvested),
			CumulativeInvested: money.Round2(invested),
			ValueAtYearEnd:     money.Round2(value),
			ReturnsThisYear:    money.Round2(value.Sub(yearStart).Sub(yearInvested)),
			CumulativeReturns:  money.Round2(value.Sub(invested)),
		})

		sip = sip.Mul(stepUpFactor)
	}

	annualGrowth := one.Add(money.Rate(annualReturnPct)).Pow(decimal.NewFromInt(int64(years)))
	inflationGrowth := one.Add(money.Rate(assumedInflationPct)).Pow(decimal.NewFromInt(int64(years)))

	realReturnPct := one.Add(money.Rate(annualReturnPct)).
		Div(one.Add(money.Rate(assumedInflationPct))).
		Sub(one).Mul(decimal.NewFromInt(100))

	return &domain.SIPProjection{
		MonthlyInvestment: monthlyInvestment,
		AnnualReturnPct:   annualReturnPct,
		Years:             years,
		StepUpPct:         stepUpPct,
		Schedule:          schedule,

		TotalInvested:  money.Round2(invested),
		MaturityValue:  money.Round2(value),
		TotalReturns:   money.Round2(value.Sub(invested)),
		WealthMultiple: value.Div(invested).Round(2),

		EquivalentLumpSum: money.Round2(invested.Div(annualGrowth)),

		AssumedInflationPct:    assumedInflationPct,
		RealReturnPct:          money.Round2(realReturnPct),
		InflationAdjustedValue: money.Round2(value.Div(inflationGrowth)),
	}, nil
}

// annuityDueFV is the future-value factor of a level monthly payment under
// the contribution-then-compound ordering used by ProjectSIP:
// ((1+r)^n − 1) / r × (1+r). Both ProjectSIP and its inversions must agree
// on this factor or goal round-trips drift.
func annuityDueFV(monthlyRate decimal.Decimal, months int) decimal.Decimal {
	growth := one.Add(monthlyRate)
	compounded := growth.Pow(decimal.NewFromInt(int64(months)))
	return compounded.Sub(one).Div(monthlyRate).Mul(growth)
}

// monthlyPaymentFor inverts annuityDueFV: the level monthly payment that
// reaches futureValue after the given months. Zero rate degenerates to an
// even split.
func monthlyPaymentFor(futureValue, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return futureValue
	}
	if monthlyRate.IsZero() {
		return futureValue.Div(decimal.NewFromInt(int64(months)))
	}
	return futureValue.Div(annuityDueFV(monthlyRate, months))
}
