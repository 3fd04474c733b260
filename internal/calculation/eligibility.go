package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// FOIR (fixed obligation to income ratio) parameters mirror common Indian
// bank underwriting. The limit itself is an input; lenders run anywhere
// from 40% for the self-employed to 65% for salaried borrowers.
// Back-solving eligibility assumes a standard home-loan rate and tenure.
var (
	comfortableHeadroomPct = decimal.NewFromInt(30)

	assumedLoanRatePct     = decimal.NewFromFloat(8.5)
	assumedLoanTenureYears = 20
)

// AffordableEMI computes the EMI headroom under the given FOIR limit and
// the loan principal it supports at the assumed rate and tenure. Status
// classifies the headroom itself: negative means over-leveraged (reported
// as zero headroom), under 30% of income is tight, anything more is
// comfortable.
func AffordableEMI(monthlyIncome, existingEMIs, foirLimitPct decimal.Decimal) (*domain.LoanEligibility, error) {
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("monthly_income", "must be positive")
	}
	if existingEMIs.IsNegative() {
		return nil, domain.Invalid("existing_emis", "must be non-negative")
	}
	if foirLimitPct.LessThanOrEqual(decimal.Zero) || foirLimitPct.GreaterThan(hundred) {
		return nil, domain.Invalid("foir_limit_pct", "must be in (0, 100]")
	}

	maxTotal := money.Pct(monthlyIncome, foirLimitPct)
	available := maxTotal.Sub(existingEMIs)

	var status domain.LeverageStatus
	switch {
	case available.IsNegative():
		available = decimal.Zero
		status = domain.StatusOverLeveraged
	case available.LessThan(money.Pct(monthlyIncome, comfortableHeadroomPct)):
		status = domain.StatusTight
	default:
		status = domain.StatusComfortable
	}

	principal := decimal.Zero
	if available.IsPositive() {
		principal = principalFor(available, money.MonthlyRate(assumedLoanRatePct), assumedLoanTenureYears*12)
	}

	return &domain.LoanEligibility{
		MonthlyIncome:      monthlyIncome,
		ExistingEMIs:       existingEMIs,
		FOIRLimitPct:       foirLimitPct,
		MaxTotalEMI:        money.Round2(maxTotal),
		AvailableEMI:       money.Round2(available),
		Status:             status,
		AssumedRatePct:     assumedLoanRatePct,
		AssumedTenureYears: assumedLoanTenureYears,
		EstimatedPrincipal: money.Round2(principal),
	}, nil
}
