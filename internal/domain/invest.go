package domain

import "github.com/shopspring/decimal"

// SIPYear is one year of a SIP projection. Values are end-of-year.
type SIPYear struct {
	Year               int             `json:"year"`
	MonthlySIP         decimal.Decimal `json:"monthly_sip"`
	InvestedThisYear   decimal.Decimal `json:"invested_this_year"`
	CumulativeInvested decimal.Decimal `json:"cumulative_invested"`
	ValueAtYearEnd     decimal.Decimal `json:"value_at_year_end"`
	ReturnsThisYear    decimal.Decimal `json:"returns_this_year"`
	CumulativeReturns  decimal.Decimal `json:"cumulative_returns"`
}

// SIPProjection is the full projection of a (possibly stepped-up) SIP.
// Each month the contribution is added and then compounded, so the schedule
// follows annuity-due timing; Schedule is immutable once returned.
type SIPProjection struct {
	MonthlyInvestment decimal.Decimal `json:"monthly_investment"`
	AnnualReturnPct   decimal.Decimal `json:"annual_return_pct"`
	Years             int             `json:"years"`
	StepUpPct         decimal.Decimal `json:"step_up_pct"`

	Schedule []SIPYear `json:"year_by_year"`

	TotalInvested decimal.Decimal `json:"total_invested"`
	MaturityValue decimal.Decimal `json:"maturity_value"`
	TotalReturns  decimal.Decimal `json:"total_returns"`
	WealthMultiple decimal.Decimal `json:"wealth_multiple"`

	// EquivalentLumpSum is the total invested discounted back to today at
	// the annual return, for comparing the SIP against a one-shot outlay.
	EquivalentLumpSum decimal.Decimal `json:"equivalent_lump_sum_today"`

	AssumedInflationPct    decimal.Decimal `json:"assumed_inflation_pct"`
	RealReturnPct          decimal.Decimal `json:"real_return_pct"`
	InflationAdjustedValue decimal.Decimal `json:"inflation_adjusted_value"`
}

// SIPGoalPlan is the inversion of the SIP projection: the monthly amount
// required to reach an inflation-adjusted target.
type SIPGoalPlan struct {
	TargetToday       decimal.Decimal `json:"target_amount_today"`
	FutureValueNeeded decimal.Decimal `json:"future_value_needed"`
	Years             int             `json:"years"`
	AnnualReturnPct   decimal.Decimal `json:"annual_return_pct"`
	InflationPct      decimal.Decimal `json:"inflation_pct"`
	InflationFactor   decimal.Decimal `json:"inflation_factor"`
	MonthlySIPNeeded  decimal.Decimal `json:"monthly_sip_needed"`
	TotalInvestment   decimal.Decimal `json:"total_investment"`
	ExpectedReturns   decimal.Decimal `json:"expected_returns"`
}

// RiskCategory bands a goal by time horizon.
type RiskCategory string

const (
	RiskConservative RiskCategory = "conservative"
	RiskModerate     RiskCategory = "moderate"
	RiskAggressive   RiskCategory = "aggressive"
)

// GoalStrategy is the recommended allocation for a goal's time horizon.
type GoalStrategy struct {
	RiskCategory        RiskCategory    `json:"risk_category"`
	EquityPct           decimal.Decimal `json:"equity_pct"`
	DebtPct             decimal.Decimal `json:"debt_pct"`
	ExpectedReturnRange string          `json:"expected_return_range"`
}

// GoalCorpusPlan sizes the investment needed for a life goal, netting off
// the projected growth of any existing corpus.
type GoalCorpusPlan struct {
	GoalToday           decimal.Decimal `json:"goal_amount_today"`
	Years               int             `json:"years_to_goal"`
	InflationPct        decimal.Decimal `json:"inflation_pct"`
	ExpectedReturnPct   decimal.Decimal `json:"expected_return_pct"`
	FutureValueNeeded   decimal.Decimal `json:"future_value_needed"`
	ExistingCorpus      decimal.Decimal `json:"existing_corpus"`
	ExistingFutureValue decimal.Decimal `json:"existing_corpus_future_value"`
	RemainingNeeded     decimal.Decimal `json:"remaining_needed"`
	MonthlySIPNeeded    decimal.Decimal `json:"monthly_sip_needed"`
	TotalSIPInvestment  decimal.Decimal `json:"total_sip_investment"`
	LumpSumToday        decimal.Decimal `json:"lump_sum_needed_today"`
	Strategy            GoalStrategy    `json:"strategy"`

	// CorpusSufficient is true when the existing corpus alone is projected
	// to cover the inflated goal; Surplus then holds the projected excess.
	CorpusSufficient bool            `json:"corpus_sufficient"`
	Surplus          decimal.Decimal `json:"surplus"`
}

// EPFMonthly is the monthly contribution split of an EPF/VPF account.
// Employer EPS is carved out of the employer share and capped; VPF is not
// subject to the wage ceiling.
type EPFMonthly struct {
	EmployeeEPF decimal.Decimal `json:"employee_epf"`
	EmployerEPF decimal.Decimal `json:"employer_epf"`
	EmployerEPS decimal.Decimal `json:"employer_eps"`
	VPF         decimal.Decimal `json:"vpf"`
	Total       decimal.Decimal `json:"total_monthly"`
}

// EPFProjection is the maturity projection of an EPF/VPF account.
type EPFProjection struct {
	MonthlyBasic       decimal.Decimal `json:"monthly_basic"`
	EligibleBasic      decimal.Decimal `json:"epf_eligible_basic"`
	Monthly            EPFMonthly      `json:"monthly_contributions"`
	AnnualContribution decimal.Decimal `json:"annual_contribution"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	Years              int             `json:"years"`
	AnnualRatePct      decimal.Decimal `json:"annual_rate_pct"`
	MaturityValue      decimal.Decimal `json:"maturity_value"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	InterestEarned     decimal.Decimal `json:"interest_earned"`
}

// RetirementPlan sizes the corpus needed at retirement and the monthly SIP
// required to build it.
type RetirementPlan struct {
	CurrentAge              int             `json:"current_age"`
	RetirementAge           int             `json:"retirement_age"`
	LifeExpectancy          int             `json:"life_expectancy"`
	YearsToRetirement       int             `json:"years_to_retirement"`
	YearsInRetirement       int             `json:"years_in_retirement"`
	CurrentMonthlyExpenses  decimal.Decimal `json:"current_monthly_expenses"`
	FutureMonthlyExpenses   decimal.Decimal `json:"future_monthly_expenses"`
	InflationPct            decimal.Decimal `json:"inflation_pct"`
	PostRetirementReturnPct decimal.Decimal `json:"post_retirement_return_pct"`
	CorpusNeeded            decimal.Decimal `json:"corpus_needed_at_retirement"`
	PreRetirementReturnPct  decimal.Decimal `json:"pre_retirement_return_pct"`
	MonthlySIPNeeded        decimal.Decimal `json:"monthly_sip_needed"`
}
