package ops

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/calculation"
	"github.com/nivesh/fincalc/internal/config"
	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/internal/marketdata"
)

// Operation names, grouped by engine.
const (
	OpCompareRegimes = "tax.compare_regimes"
	OpSection80C     = "tax.section_80c"
	OpSection80D     = "tax.section_80d"
	OpSection80CCD   = "tax.section_80ccd"
	OpSection24      = "tax.section_24"
	OpHRAExemption   = "tax.hra_exemption"
	OpLTAExemption   = "tax.lta_exemption"
	OpCapitalGains   = "tax.capital_gains"

	OpProjectSIP       = "invest.project_sip"
	OpSIPForGoal       = "invest.sip_for_goal"
	OpGoalCorpus       = "invest.goal_corpus"
	OpProjectEPF       = "invest.project_epf"
	OpRetirementCorpus = "invest.retirement_corpus"

	OpAgeAllocation = "allocation.age_based"
	OpRebalance     = "allocation.rebalance"
	OpPortfolio     = "allocation.portfolio"

	OpEMI             = "afford.emi"
	OpBuyVsRent       = "afford.buy_vs_rent"
	OpLoanEligibility = "afford.loan_eligibility"

	OpInsuranceCoverage  = "planning.insurance_coverage"
	OpEmergencyFund      = "planning.emergency_fund"
	OpSpendingAnalysis   = "planning.spending_analysis"
	OpSpendingBenchmarks = "planning.spending_benchmarks"
)

// DefaultRegistry wires every engine operation against the given runtime
// configuration and market-data provider.
func DefaultRegistry(cfg *config.Config, provider marketdata.Provider, logger calculation.Logger) *Registry {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}

	r := NewRegistry()

	registerTaxOps(r, logger)
	registerInvestOps(r, cfg)
	registerAllocationOps(r, cfg, provider, logger)
	registerAffordOps(r, cfg)
	registerPlanningOps(r)

	return r
}

func registerTaxOps(r *Registry, logger calculation.Logger) {
	calc := calculation.NewRegimeCalculator()
	calc.SetLogger(logger)

	type compareReq struct {
		GrossIncome decimal.Decimal              `json:"gross_income"`
		Deductions  calculation.RegimeDeductions `json:"deductions"`
	}
	r.Register(OpCompareRegimes, "Compare old vs new income-tax regimes",
		handle(func(_ context.Context, req compareReq) (any, error) {
			return calc.CompareRegimes(req.GrossIncome, req.Deductions)
		}))

	type sec80CReq struct {
		Contributions domain.Contributions80C `json:"contributions"`
	}
	r.Register(OpSection80C, "Section 80C deduction with the 1.5L cap",
		handle(func(_ context.Context, req sec80CReq) (any, error) {
			return calculation.Section80C(req.Contributions)
		}))

	type sec80DReq struct {
		SelfPremium    decimal.Decimal `json:"self_premium"`
		ParentsPremium decimal.Decimal `json:"parents_premium"`
		Checkup        decimal.Decimal `json:"checkup_expenses"`
		SelfSenior     bool            `json:"self_senior"`
		ParentsSenior  bool            `json:"parents_senior"`
	}
	r.Register(OpSection80D, "Section 80D health-insurance deduction",
		handle(func(_ context.Context, req sec80DReq) (any, error) {
			return calculation.Section80D(req.SelfPremium, req.ParentsPremium, req.Checkup,
				req.SelfSenior, req.ParentsSenior)
		}))

	type sec80CCDReq struct {
		EmployeeNPS decimal.Decimal `json:"employee_nps"`
		GrossSalary decimal.Decimal `json:"gross_salary"`
		EmployerNPS decimal.Decimal `json:"employer_nps"`
	}
	r.Register(OpSection80CCD, "NPS deductions under 80CCD(1B) and 80CCD(2)",
		handle(func(_ context.Context, req sec80CCDReq) (any, error) {
			return calculation.Section80CCD(req.EmployeeNPS, req.GrossSalary, req.EmployerNPS)
		}))

	type sec24Req struct {
		InterestPaid decimal.Decimal     `json:"interest_paid"`
		PropertyType domain.PropertyType `json:"property_type"`
	}
	r.Register(OpSection24, "Section 24 home-loan interest deduction",
		handle(func(_ context.Context, req sec24Req) (any, error) {
			return calculation.Section24(req.InterestPaid, req.PropertyType)
		}))

	type hraReq struct {
		BasicSalary decimal.Decimal `json:"basic_salary"`
		HRAReceived decimal.Decimal `json:"hra_received"`
		RentPaid    decimal.Decimal `json:"rent_paid"`
		Metro       bool            `json:"metro"`
	}
	r.Register(OpHRAExemption, "HRA exemption under Section 10(13A)",
		handle(func(_ context.Context, req hraReq) (any, error) {
			return calculation.HRAExemption(req.BasicSalary, req.HRAReceived, req.RentPaid, req.Metro)
		}))

	type ltaReq struct {
		LTAReceived decimal.Decimal   `json:"lta_received"`
		TravelFare  decimal.Decimal   `json:"travel_fare"`
		TravelType  domain.TravelType `json:"travel_type"`
	}
	r.Register(OpLTAExemption, "LTA exemption for domestic travel",
		handle(func(_ context.Context, req ltaReq) (any, error) {
			return calculation.LTAExemption(req.LTAReceived, req.TravelFare, req.TravelType)
		}))

	type gainsReq struct {
		BuyPrice    decimal.Decimal `json:"buy_price"`
		SellPrice   decimal.Decimal `json:"sell_price"`
		HoldingDays int             `json:"holding_period_days"`
		Quantity    decimal.Decimal `json:"quantity"`
		Equity      bool            `json:"is_equity"`
	}
	r.Register(OpCapitalGains, "Capital-gains tax on a single disposal",
		handle(func(_ context.Context, req gainsReq) (any, error) {
			return calculation.CapitalGains(req.BuyPrice, req.SellPrice, req.HoldingDays,
				req.Quantity, req.Equity)
		}))
}

func registerInvestOps(r *Registry, cfg *config.Config) {
	type sipReq struct {
		MonthlyInvestment decimal.Decimal `json:"monthly_investment"`
		AnnualReturnPct   decimal.Decimal `json:"annual_return_pct"`
		Years             int             `json:"years"`
		StepUpPct         decimal.Decimal `json:"step_up_pct"`
	}
	r.Register(OpProjectSIP, "Project a monthly SIP with optional annual step-up",
		handle(func(_ context.Context, req sipReq) (any, error) {
			return calculation.ProjectSIP(req.MonthlyInvestment, req.AnnualReturnPct,
				req.Years, req.StepUpPct)
		}))

	type goalReq struct {
		TargetAmount    decimal.Decimal  `json:"target_amount"`
		AnnualReturnPct *decimal.Decimal `json:"annual_return_pct,omitempty"`
		InflationPct    *decimal.Decimal `json:"inflation_pct,omitempty"`
		Years           int              `json:"years"`
	}
	r.Register(OpSIPForGoal, "Monthly SIP needed for a target in today's money",
		handle(func(_ context.Context, req goalReq) (any, error) {
			annualReturn := cfg.Assumptions.PreRetirementReturnPct
			if req.AnnualReturnPct != nil {
				annualReturn = *req.AnnualReturnPct
			}
			inflation := cfg.Assumptions.InflationPct
			if req.InflationPct != nil {
				inflation = *req.InflationPct
			}
			return calculation.SIPForGoal(req.TargetAmount, annualReturn, inflation, req.Years)
		}))

	type corpusReq struct {
		GoalAmount        decimal.Decimal  `json:"goal_amount"`
		ExistingCorpus    decimal.Decimal  `json:"existing_corpus"`
		ExpectedReturnPct decimal.Decimal  `json:"expected_return_pct"`
		InflationPct      *decimal.Decimal `json:"inflation_pct,omitempty"`
		Years             int              `json:"years"`
	}
	r.Register(OpGoalCorpus, "Plan a life goal netting off an existing corpus",
		handle(func(_ context.Context, req corpusReq) (any, error) {
			inflation := cfg.Assumptions.InflationPct
			if req.InflationPct != nil {
				inflation = *req.InflationPct
			}
			return calculation.GoalCorpus(req.GoalAmount, req.ExistingCorpus,
				req.ExpectedReturnPct, inflation, req.Years)
		}))

	type epfReq struct {
		MonthlyBasic   decimal.Decimal  `json:"monthly_basic"`
		EmployeePct    decimal.Decimal  `json:"employee_pct"`
		EmployerPct    decimal.Decimal  `json:"employer_pct"`
		VPFPct         decimal.Decimal  `json:"vpf_pct"`
		CurrentBalance decimal.Decimal  `json:"current_balance"`
		AnnualRatePct  *decimal.Decimal `json:"annual_rate_pct,omitempty"`
		Years          int              `json:"years"`
	}
	r.Register(OpProjectEPF, "Project an EPF/VPF balance to maturity",
		handle(func(_ context.Context, req epfReq) (any, error) {
			rate := cfg.Assumptions.EPFRatePct
			if req.AnnualRatePct != nil {
				rate = *req.AnnualRatePct
			}
			return calculation.ProjectEPF(req.MonthlyBasic, req.EmployeePct, req.EmployerPct,
				req.VPFPct, req.CurrentBalance, rate, req.Years)
		}))

	type retireReq struct {
		CurrentAge              int              `json:"current_age"`
		RetirementAge           int              `json:"retirement_age"`
		LifeExpectancy          int              `json:"life_expectancy"`
		MonthlyExpenses         decimal.Decimal  `json:"monthly_expenses"`
		InflationPct            *decimal.Decimal `json:"inflation_pct,omitempty"`
		PostRetirementReturnPct decimal.Decimal  `json:"post_retirement_return_pct"`
	}
	r.Register(OpRetirementCorpus, "Corpus needed at retirement and the SIP to build it",
		handle(func(_ context.Context, req retireReq) (any, error) {
			inflation := cfg.Assumptions.InflationPct
			if req.InflationPct != nil {
				inflation = *req.InflationPct
			}
			return calculation.RetirementCorpus(req.CurrentAge, req.RetirementAge,
				req.LifeExpectancy, req.MonthlyExpenses, inflation, req.PostRetirementReturnPct)
		}))
}

func registerAllocationOps(r *Registry, cfg *config.Config, provider marketdata.Provider, logger calculation.Logger) {
	type allocReq struct {
		Age           int                  `json:"age"`
		RiskTolerance domain.RiskTolerance `json:"risk_tolerance"`
		Rule          int                  `json:"rule,omitempty"`
	}
	r.Register(OpAgeAllocation, "Age-based equity/debt/gold allocation",
		handle(func(_ context.Context, req allocReq) (any, error) {
			return calculation.AgeBasedAllocation(req.Age, req.RiskTolerance, req.Rule)
		}))

	type rebalanceReq struct {
		PortfolioValue   decimal.Decimal `json:"portfolio_value"`
		CurrentEquityPct decimal.Decimal `json:"current_equity_pct"`
		CurrentDebtPct   decimal.Decimal `json:"current_debt_pct"`
		Age              int             `json:"age"`
		Rule             int             `json:"rule,omitempty"`
	}
	r.Register(OpRebalance, "Rebalancing trade against the age-based target",
		handle(func(_ context.Context, req rebalanceReq) (any, error) {
			rule := req.Rule
			if rule == 0 {
				rule = 110
			}
			return calculation.SuggestRebalancing(req.PortfolioValue,
				req.CurrentEquityPct, req.CurrentDebtPct, req.Age, rule)
		}))

	analyzer := calculation.NewPortfolioAnalyzer(provider, cfg.MarketData.MaxConcurrent)
	analyzer.SetLogger(logger)

	type portfolioReq struct {
		Holdings []domain.Holding `json:"holdings"`
	}
	r.Register(OpPortfolio, "Value holdings with live quotes and bucket by cap and sector",
		handle(func(ctx context.Context, req portfolioReq) (any, error) {
			return analyzer.Analyze(ctx, req.Holdings)
		}))
}

func registerAffordOps(r *Registry, cfg *config.Config) {
	type emiReq struct {
		Principal     decimal.Decimal  `json:"principal"`
		AnnualRatePct *decimal.Decimal `json:"annual_rate_pct,omitempty"`
		TenureYears   int              `json:"tenure_years"`
	}
	r.Register(OpEMI, "Level monthly payment amortizing a loan",
		handle(func(_ context.Context, req emiReq) (any, error) {
			rate := cfg.Assumptions.LoanRatePct
			if req.AnnualRatePct != nil {
				rate = *req.AnnualRatePct
			}
			tenure := req.TenureYears
			if tenure == 0 {
				tenure = cfg.Assumptions.LoanTenureYears
			}
			return calculation.EMI(req.Principal, rate, tenure)
		}))

	type bvrReq struct {
		PropertyValue   decimal.Decimal  `json:"property_value"`
		DownPayment     decimal.Decimal  `json:"down_payment"`
		LoanRatePct     *decimal.Decimal `json:"loan_rate_pct,omitempty"`
		LoanTenureYears int              `json:"loan_tenure_years"`
		MonthlyRent     decimal.Decimal  `json:"monthly_rent"`
		RentIncreasePct decimal.Decimal  `json:"rent_increase_pct"`
		AppreciationPct decimal.Decimal  `json:"appreciation_pct"`
		ComparisonYears int              `json:"comparison_years"`
	}
	r.Register(OpBuyVsRent, "Net cost of buying vs renting over a period",
		handle(func(_ context.Context, req bvrReq) (any, error) {
			rate := cfg.Assumptions.LoanRatePct
			if req.LoanRatePct != nil {
				rate = *req.LoanRatePct
			}
			tenure := req.LoanTenureYears
			if tenure == 0 {
				tenure = cfg.Assumptions.LoanTenureYears
			}
			return calculation.BuyVsRent(req.PropertyValue, req.DownPayment, rate, tenure,
				req.MonthlyRent, req.RentIncreasePct, req.AppreciationPct, req.ComparisonYears)
		}))

	type eligibilityReq struct {
		MonthlyIncome decimal.Decimal  `json:"monthly_income"`
		ExistingEMIs  decimal.Decimal  `json:"existing_emis"`
		FOIRLimitPct  *decimal.Decimal `json:"foir_limit_pct,omitempty"`
	}
	r.Register(OpLoanEligibility, "FOIR-based EMI headroom and loan eligibility",
		handle(func(_ context.Context, req eligibilityReq) (any, error) {
			foir := cfg.Assumptions.FOIRLimitPct
			if req.FOIRLimitPct != nil {
				foir = *req.FOIRLimitPct
			}
			return calculation.AffordableEMI(req.MonthlyIncome, req.ExistingEMIs, foir)
		}))
}

func registerPlanningOps(r *Registry) {
	type insuranceReq struct {
		AnnualIncome decimal.Decimal `json:"annual_income"`
		Multiplier   decimal.Decimal `json:"multiplier,omitempty"`
	}
	r.Register(OpInsuranceCoverage, "Term life cover by the 10-20x income rule",
		handle(func(_ context.Context, req insuranceReq) (any, error) {
			return calculation.LifeInsuranceCoverage(req.AnnualIncome, req.Multiplier)
		}))

	type emergencyReq struct {
		MonthlyExpenses decimal.Decimal     `json:"monthly_expenses"`
		JobStability    domain.JobStability `json:"job_stability"`
		Dependents      int                 `json:"dependents"`
	}
	r.Register(OpEmergencyFund, "Emergency fund by job stability and dependents",
		handle(func(_ context.Context, req emergencyReq) (any, error) {
			return calculation.EmergencyFundTarget(req.MonthlyExpenses, req.JobStability, req.Dependents)
		}))

	type spendingReq struct {
		MonthlyIncome      decimal.Decimal `json:"monthly_income"`
		MonthlySavings     decimal.Decimal `json:"monthly_savings"`
		MonthlyInvestments decimal.Decimal `json:"monthly_investments"`
	}
	r.Register(OpSpendingAnalysis, "Grade savings rate against the 50-30-20 rule",
		handle(func(_ context.Context, req spendingReq) (any, error) {
			return calculation.AnalyzeSpending(req.MonthlyIncome, req.MonthlySavings, req.MonthlyInvestments)
		}))

	type benchmarkReq struct {
		Age int `json:"age"`
	}
	r.Register(OpSpendingBenchmarks, "Typical spending shares of income for an age group",
		handle(func(_ context.Context, req benchmarkReq) (any, error) {
			return calculation.SpendingBenchmarks(req.Age)
		}))
}
