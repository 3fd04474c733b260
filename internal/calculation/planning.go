package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// Thumb-rule parameters for household financial hygiene.
var (
	insuranceMinMultiple = decimal.NewFromInt(10)
	insuranceMaxMultiple = decimal.NewFromInt(20)

	idealSavingsPct        = decimal.NewFromInt(20)
	emergencyFundCapMonths = 12
)

// LifeInsuranceCoverage recommends a term cover of 10-20x annual income,
// defaulting to 15x when no multiplier is given.
func LifeInsuranceCoverage(annualIncome, multiplier decimal.Decimal) (*domain.InsuranceCoverage, error) {
	if annualIncome.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("annual_income", "must be positive")
	}
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(15)
	}
	if multiplier.LessThan(insuranceMinMultiple) || multiplier.GreaterThan(insuranceMaxMultiple) {
		return nil, domain.Invalid("multiplier", "must be in [10, 20]")
	}

	return &domain.InsuranceCoverage{
		AnnualIncome:        annualIncome,
		Multiplier:          multiplier,
		MinimumCoverage:     money.Round2(annualIncome.Mul(insuranceMinMultiple)),
		RecommendedCoverage: money.Round2(annualIncome.Mul(multiplier)),
		MaximumCoverage:     money.Round2(annualIncome.Mul(insuranceMaxMultiple)),
	}, nil
}

func baseMonthsFor(stability domain.JobStability) (int, error) {
	switch stability {
	case domain.StabilityHigh:
		return 3, nil
	case domain.StabilityModerate:
		return 6, nil
	case domain.StabilityLow:
		return 12, nil
	default:
		return 0, domain.Invalid("job_stability", "must be high, moderate or low")
	}
}

// EmergencyFundTarget sizes a liquid reserve: 3/6/12 months of expenses by
// job stability plus one month per dependent, capped at twelve months.
func EmergencyFundTarget(monthlyExpenses decimal.Decimal, stability domain.JobStability, dependents int) (*domain.EmergencyFund, error) {
	if monthlyExpenses.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("monthly_expenses", "must be positive")
	}
	if dependents < 0 {
		return nil, domain.Invalid("dependents", "must be non-negative")
	}

	months, err := baseMonthsFor(stability)
	if err != nil {
		return nil, err
	}
	months += dependents
	if months > emergencyFundCapMonths {
		months = emergencyFundCapMonths
	}

	return &domain.EmergencyFund{
		MonthlyExpenses:   monthlyExpenses,
		JobStability:      stability,
		Dependents:        dependents,
		RecommendedMonths: months,
		Amount:            money.Round2(monthlyExpenses.Mul(decimal.NewFromInt(int64(months)))),
	}, nil
}

// AnalyzeSpending grades a household against the 50-30-20 rule: spending is
// whatever income is not saved or invested, and a combined savings rate of
// at least 20% is healthy.
func AnalyzeSpending(monthlyIncome, monthlySavings, monthlyInvestments decimal.Decimal) (*domain.SpendingAnalysis, error) {
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("monthly_income", "must be positive")
	}
	if monthlySavings.IsNegative() || monthlyInvestments.IsNegative() {
		return nil, domain.Invalid("savings", "must be non-negative")
	}
	if monthlySavings.Add(monthlyInvestments).GreaterThan(monthlyIncome) {
		return nil, domain.Invalid("savings", "savings and investments exceed income")
	}

	spending := monthlyIncome.Sub(monthlySavings).Sub(monthlyInvestments)
	pctOf := func(v decimal.Decimal) decimal.Decimal {
		return v.Div(monthlyIncome).Mul(hundred).Round(2)
	}

	savedPct := pctOf(monthlySavings.Add(monthlyInvestments))
	status := domain.SavingsNeedsImprovement
	if savedPct.GreaterThanOrEqual(idealSavingsPct) {
		status = domain.SavingsHealthy
	}

	return &domain.SpendingAnalysis{
		MonthlyIncome:   monthlyIncome,
		Spending:        money.Round2(spending),
		SpendingPct:     pctOf(spending),
		SavingsPct:      pctOf(monthlySavings),
		InvestmentPct:   pctOf(monthlyInvestments),
		TotalSavedPct:   savedPct,
		IdealSavingsPct: idealSavingsPct,
		Status:          status,
	}, nil
}

// spendingBenchmarks holds typical category shares of income by age group.
var spendingBenchmarks = map[string]map[string]decimal.Decimal{
	"18-25": {
		"housing":       decimal.NewFromInt(25),
		"food":          decimal.NewFromInt(15),
		"transport":     decimal.NewFromInt(10),
		"entertainment": decimal.NewFromInt(10),
		"savings":       decimal.NewFromInt(20),
	},
	"26-35": {
		"housing":       decimal.NewFromInt(30),
		"food":          decimal.NewFromInt(12),
		"transport":     decimal.NewFromInt(8),
		"entertainment": decimal.NewFromInt(8),
		"savings":       decimal.NewFromInt(25),
	},
	"36-50": {
		"housing":       decimal.NewFromInt(28),
		"food":          decimal.NewFromInt(12),
		"transport":     decimal.NewFromInt(7),
		"entertainment": decimal.NewFromInt(5),
		"savings":       decimal.NewFromInt(30),
	},
	"51+": {
		"housing":       decimal.NewFromInt(20),
		"food":          decimal.NewFromInt(12),
		"transport":     decimal.NewFromInt(5),
		"entertainment": decimal.NewFromInt(5),
		"savings":       decimal.NewFromInt(35),
	},
}

func ageGroupFor(age int) string {
	switch {
	case age <= 25:
		return "18-25"
	case age <= 35:
		return "26-35"
	case age <= 50:
		return "36-50"
	default:
		return "51+"
	}
}

// SpendingBenchmarks returns the typical category shares of income for the
// given age. Categories come back in no particular order.
func SpendingBenchmarks(age int) ([]domain.SpendingBenchmark, error) {
	if age < 18 || age > 100 {
		return nil, domain.Invalid("age", "must be in [18, 100]")
	}
	group := ageGroupFor(age)
	out := make([]domain.SpendingBenchmark, 0, len(spendingBenchmarks[group]))
	for category, pct := range spendingBenchmarks[group] {
		out = append(out, domain.SpendingBenchmark{
			AgeGroup:     group,
			Category:     category,
			BenchmarkPct: pct,
		})
	}
	return out, nil
}
