package domain

import "github.com/shopspring/decimal"

// InsuranceCoverage is the 10-20x annual income thumb-rule recommendation
// for life insurance sum assured.
type InsuranceCoverage struct {
	AnnualIncome        decimal.Decimal `json:"annual_income"`
	Multiplier          decimal.Decimal `json:"multiplier_used"`
	MinimumCoverage     decimal.Decimal `json:"minimum_coverage_10x"`
	RecommendedCoverage decimal.Decimal `json:"recommended_coverage"`
	MaximumCoverage     decimal.Decimal `json:"maximum_coverage_20x"`
}

// JobStability feeds the 3-6-12 month emergency-fund rule.
type JobStability string

const (
	StabilityHigh     JobStability = "high"
	StabilityModerate JobStability = "moderate"
	StabilityLow      JobStability = "low"
)

// EmergencyFund is the recommended liquid reserve: base months by job
// stability plus one month per dependent, capped at twelve months.
type EmergencyFund struct {
	MonthlyExpenses   decimal.Decimal `json:"monthly_expenses"`
	JobStability      JobStability    `json:"job_stability"`
	Dependents        int             `json:"dependents"`
	RecommendedMonths int             `json:"recommended_months"`
	Amount            decimal.Decimal `json:"emergency_fund_amount"`
}

// SavingsStatus grades a household against the 50-30-20 rule.
type SavingsStatus string

const (
	SavingsHealthy          SavingsStatus = "healthy"
	SavingsNeedsImprovement SavingsStatus = "needs_improvement"
)

// SpendingAnalysis breaks monthly income into spending, savings and
// investment shares and grades the combined savings rate.
type SpendingAnalysis struct {
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	Spending        decimal.Decimal `json:"spending"`
	SpendingPct     decimal.Decimal `json:"spending_pct"`
	SavingsPct      decimal.Decimal `json:"savings_pct"`
	InvestmentPct   decimal.Decimal `json:"investment_pct"`
	TotalSavedPct   decimal.Decimal `json:"total_savings_investment_pct"`
	IdealSavingsPct decimal.Decimal `json:"ideal_savings_pct"`
	Status          SavingsStatus   `json:"status"`
}

// SpendingBenchmark is the average share of income spent on a category for
// an age group.
type SpendingBenchmark struct {
	AgeGroup     string          `json:"age_group"`
	Category     string          `json:"category"`
	BenchmarkPct decimal.Decimal `json:"benchmark_pct"`
}
