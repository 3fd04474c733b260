package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// EPF statutory parameters. The EPS carve-out applies only to basic pay up
// to the wage ceiling; VPF rides on actual basic with no ceiling.
var (
	epfWageCeiling = decimal.NewFromInt(15000)
	epsRatePct     = decimal.NewFromFloat(8.33)
	epsMonthlyCap  = decimal.NewFromInt(1250)
)

// ProjectEPF projects an EPF/VPF balance to maturity. The opening balance
// and the monthly contribution stream both compound monthly at the declared
// annual rate, contributions on annuity-due timing.
func ProjectEPF(monthlyBasic, employeePct, employerPct, vpfPct, currentBalance, annualRatePct decimal.Decimal, years int) (*domain.EPFProjection, error) {
	if monthlyBasic.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("monthly_basic", "must be positive")
	}
	if employeePct.IsNegative() || employerPct.IsNegative() || vpfPct.IsNegative() {
		return nil, domain.Invalid("contribution_pct", "must be non-negative")
	}
	if currentBalance.IsNegative() {
		return nil, domain.Invalid("current_balance", "must be non-negative")
	}
	if annualRatePct.LessThanOrEqual(decimal.Zero) || annualRatePct.GreaterThan(decimal.NewFromInt(50)) {
		return nil, domain.Invalid("annual_rate_pct", "must be in (0, 50]")
	}
	if years <= 0 || years > 50 {
		return nil, domain.Invalid("years", "must be in [1, 50]")
	}

	eligibleBasic := money.Min(monthlyBasic, epfWageCeiling)

	employeeEPF := money.Pct(eligibleBasic, employeePct)
	eps := money.Min(money.Pct(eligibleBasic, epsRatePct), epsMonthlyCap)
	employerEPF := money.Pct(eligibleBasic, employerPct).Sub(eps)
	if employerEPF.IsNegative() {
		employerEPF = decimal.Zero
	}
	vpf := money.Pct(monthlyBasic, vpfPct)

	monthly := domain.EPFMonthly{
		EmployeeEPF: money.Round2(employeeEPF),
		EmployerEPF: money.Round2(employerEPF),
		EmployerEPS: money.Round2(eps),
		VPF:         money.Round2(vpf),
	}
	// EPS goes to the pension scheme, not the EPF balance.
	monthlyTotal := employeeEPF.Add(employerEPF).Add(vpf)
	monthly.Total = money.Round2(monthlyTotal)

	annualContribution := monthlyTotal.Mul(decimal.NewFromInt(12))

	months := years * 12
	monthlyRate := money.MonthlyRate(annualRatePct)
	balanceFV := currentBalance.Mul(one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(months))))
	value := balanceFV.Add(monthlyTotal.Mul(annuityDueFV(monthlyRate, months)))
	contributed := monthlyTotal.Mul(decimal.NewFromInt(int64(months)))

	return &domain.EPFProjection{
		MonthlyBasic:       monthlyBasic,
		EligibleBasic:      eligibleBasic,
		Monthly:            monthly,
		AnnualContribution: money.Round2(annualContribution),
		CurrentBalance:     currentBalance,
		Years:              years,
		AnnualRatePct:      annualRatePct,
		MaturityValue:      money.Round2(value),
		TotalContributions: money.Round2(contributed),
		InterestEarned:     money.Round2(value.Sub(contributed).Sub(currentBalance)),
	}, nil
}
