package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// Horizon bands for goal planning. Short horizons get a defensive mix
// because a drawdown close to the goal date cannot be ridden out.
var goalStrategies = []struct {
	maxYears int
	category domain.RiskCategory
	equity   decimal.Decimal
	debt     decimal.Decimal
	returns  string
}{
	{3, domain.RiskConservative, decimal.NewFromInt(30), decimal.NewFromInt(70), "7-9%"},
	{7, domain.RiskModerate, decimal.NewFromInt(60), decimal.NewFromInt(40), "10-12%"},
	{1 << 30, domain.RiskAggressive, decimal.NewFromInt(80), decimal.NewFromInt(20), "12-15%"},
}

func strategyForHorizon(years int) domain.GoalStrategy {
	for _, s := range goalStrategies {
		if years <= s.maxYears {
			return domain.GoalStrategy{
				RiskCategory:        s.category,
				EquityPct:           s.equity,
				DebtPct:             s.debt,
				ExpectedReturnRange: s.returns,
			}
		}
	}
	// unreachable: last band is unbounded
	return domain.GoalStrategy{}
}

func validateGoalInputs(annualReturnPct, inflationPct decimal.Decimal, years int) error {
	if annualReturnPct.LessThanOrEqual(decimal.Zero) || annualReturnPct.GreaterThan(decimal.NewFromInt(50)) {
		return domain.Invalid("annual_return_pct", "must be in (0, 50]")
	}
	if inflationPct.IsNegative() || inflationPct.GreaterThan(decimal.NewFromInt(50)) {
		return domain.Invalid("inflation_pct", "must be in [0, 50]")
	}
	if years <= 0 || years > 50 {
		return domain.Invalid("years", "must be in [1, 50]")
	}
	return nil
}

// SIPForGoal computes the level monthly SIP needed to reach a target stated
// in today's money. The target is first inflated to the goal date, then the
// SIP is solved with the same annuity-due factor that ProjectSIP applies,
// so projecting the answer reproduces the inflated target.
func SIPForGoal(targetToday, annualReturnPct, inflationPct decimal.Decimal, years int) (*domain.SIPGoalPlan, error) {
	if targetToday.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("target_amount", "must be positive")
	}
	if err := validateGoalInputs(annualReturnPct, inflationPct, years); err != nil {
		return nil, err
	}

	yearsDec := decimal.NewFromInt(int64(years))
	inflationFactor := one.Add(money.Rate(inflationPct)).Pow(yearsDec)
	futureValue := targetToday.Mul(inflationFactor)

	months := years * 12
	monthlyRate := money.MonthlyRate(annualReturnPct)
	sip := monthlyPaymentFor(futureValue, monthlyRate, months)
	invested := sip.Mul(decimal.NewFromInt(int64(months)))

	return &domain.SIPGoalPlan{
		TargetToday:       targetToday,
		FutureValueNeeded: money.Round2(futureValue),
		Years:             years,
		AnnualReturnPct:   annualReturnPct,
		InflationPct:      inflationPct,
		InflationFactor:   inflationFactor.Round(4),
		MonthlySIPNeeded:  money.Round2(sip),
		TotalInvestment:   money.Round2(invested),
		ExpectedReturns:   money.Round2(futureValue.Sub(invested)),
	}, nil
}

// GoalCorpus plans for a life goal given an existing lump sum that keeps
// growing at the expected return. The existing corpus is grown to the goal
// date first; only the shortfall needs fresh SIPs.
func GoalCorpus(goalToday, existingCorpus, expectedReturnPct, inflationPct decimal.Decimal, years int) (*domain.GoalCorpusPlan, error) {
	if goalToday.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("goal_amount", "must be positive")
	}
	if existingCorpus.IsNegative() {
		return nil, domain.Invalid("existing_corpus", "must be non-negative")
	}
	if err := validateGoalInputs(expectedReturnPct, inflationPct, years); err != nil {
		return nil, err
	}

	yearsDec := decimal.NewFromInt(int64(years))
	futureValue := goalToday.Mul(one.Add(money.Rate(inflationPct)).Pow(yearsDec))
	growth := one.Add(money.Rate(expectedReturnPct)).Pow(yearsDec)
	existingFV := existingCorpus.Mul(growth)

	plan := &domain.GoalCorpusPlan{
		GoalToday:           goalToday,
		Years:               years,
		InflationPct:        inflationPct,
		ExpectedReturnPct:   expectedReturnPct,
		FutureValueNeeded:   money.Round2(futureValue),
		ExistingCorpus:      existingCorpus,
		ExistingFutureValue: money.Round2(existingFV),
		Strategy:            strategyForHorizon(years),
	}

	if existingFV.GreaterThanOrEqual(futureValue) {
		plan.CorpusSufficient = true
		plan.Surplus = money.Round2(existingFV.Sub(futureValue))
		return plan, nil
	}

	remaining := futureValue.Sub(existingFV)
	months := years * 12
	sip := monthlyPaymentFor(remaining, money.MonthlyRate(expectedReturnPct), months)

	plan.RemainingNeeded = money.Round2(remaining)
	plan.MonthlySIPNeeded = money.Round2(sip)
	plan.TotalSIPInvestment = money.Round2(sip.Mul(decimal.NewFromInt(int64(months))))
	plan.LumpSumToday = money.Round2(remaining.Div(growth))
	return plan, nil
}
