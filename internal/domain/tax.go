package domain

import "github.com/shopspring/decimal"

// TaxRegime identifies one of the two Indian income-tax regimes.
type TaxRegime string

const (
	RegimeOld TaxRegime = "old_regime"
	RegimeNew TaxRegime = "new_regime"
)

// RegimeResult holds the tax computation under a single regime.
type RegimeResult struct {
	Deductions      map[string]decimal.Decimal `json:"deductions"`
	TotalDeductions decimal.Decimal            `json:"total_deductions"`
	TaxableIncome   decimal.Decimal            `json:"taxable_income"`
	TaxBeforeCess   decimal.Decimal            `json:"tax_before_cess"`
	TaxWithCess     decimal.Decimal            `json:"tax_with_cess"`
}

// RegimeComparison is the old-vs-new regime recommendation.
type RegimeComparison struct {
	GrossIncome decimal.Decimal `json:"gross_income"`
	OldRegime   RegimeResult    `json:"old_regime"`
	NewRegime   RegimeResult    `json:"new_regime"`
	Recommended TaxRegime       `json:"recommended_regime"`
	// Savings is the INR amount saved by choosing the recommended regime
	// over the other one. Always non-negative.
	Savings decimal.Decimal `json:"savings"`
	Reason  string          `json:"reason"`
}

// Contributions80C are the six deductible heads under Section 80C.
type Contributions80C struct {
	PPF                  decimal.Decimal `json:"ppf"`
	ELSS                 decimal.Decimal `json:"elss"`
	LifeInsurancePremium decimal.Decimal `json:"life_insurance"`
	HomeLoanPrincipal    decimal.Decimal `json:"home_loan_principal"`
	TuitionFees          decimal.Decimal `json:"tuition_fees"`
	EPF                  decimal.Decimal `json:"epf"`
}

// Section80CResult reports the eligible 80C deduction and remaining headroom.
type Section80CResult struct {
	Breakdown         Contributions80C `json:"breakdown"`
	TotalInvestments  decimal.Decimal  `json:"total_investments"`
	Limit             decimal.Decimal  `json:"limit"`
	EligibleDeduction decimal.Decimal  `json:"eligible_deduction"`
	RemainingLimit    decimal.Decimal  `json:"remaining_limit"`
	FullyUtilized     bool             `json:"fully_utilized"`
}

// Section80DResult reports health-insurance premium deductions.
// The preventive checkup allowance sits inside the self/family limit,
// it is not additive.
type Section80DResult struct {
	SelfPremium      decimal.Decimal `json:"self_family_premium"`
	SelfEligible     decimal.Decimal `json:"self_family_eligible"`
	ParentsPremium   decimal.Decimal `json:"parents_premium"`
	ParentsEligible  decimal.Decimal `json:"parents_eligible"`
	ParentsSenior    bool            `json:"parents_senior_citizen"`
	CheckupExpenses  decimal.Decimal `json:"checkup_expenses"`
	CheckupEligible  decimal.Decimal `json:"checkup_eligible"`
	TotalEligible    decimal.Decimal `json:"total_eligible_deduction"`
	MaximumPossible  decimal.Decimal `json:"maximum_possible"`
}

// Section80CCDResult reports NPS deductions under 80CCD(1B) and 80CCD(2).
type Section80CCDResult struct {
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	Employee1BEligible   decimal.Decimal `json:"section_80ccd_1b_eligible"`
	Employee1BLimit      decimal.Decimal `json:"section_80ccd_1b_limit"`
	Employer2Eligible    decimal.Decimal `json:"section_80ccd_2_eligible"`
	Employer2Limit       decimal.Decimal `json:"employer_limit_10pct_of_salary"`
	TotalDeduction       decimal.Decimal `json:"total_nps_deduction"`
}

// PropertyType distinguishes the Section 24 deduction cap.
type PropertyType string

const (
	PropertySelfOccupied PropertyType = "self_occupied"
	PropertyLetOut       PropertyType = "let_out"
)

// Section24Result reports the home-loan interest deduction.
// Let-out property has no cap; Capped is false and NonDeductible zero.
type Section24Result struct {
	InterestPaid      decimal.Decimal `json:"home_loan_interest_paid"`
	PropertyType      PropertyType    `json:"property_type"`
	EligibleDeduction decimal.Decimal `json:"eligible_deduction"`
	NonDeductible     decimal.Decimal `json:"non_deductible_amount"`
	Capped            bool            `json:"capped"`
}

// HRAResult reports the House Rent Allowance exemption: the minimum of the
// HRA received, rent paid less 10% of basic, and 50%/40% of basic for
// metro/non-metro, floored at zero.
type HRAResult struct {
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HRAReceived        decimal.Decimal `json:"hra_received"`
	RentPaid           decimal.Decimal `json:"rent_paid"`
	Metro              bool            `json:"is_metro"`
	RentMinus10PctBase decimal.Decimal `json:"rent_minus_10pct_basic"`
	BasicPctComponent  decimal.Decimal `json:"basic_salary_percentage"`
	Exemption          decimal.Decimal `json:"hra_exemption"`
	TaxableHRA         decimal.Decimal `json:"taxable_hra"`
}

// TravelType distinguishes LTA eligibility; only domestic travel qualifies.
type TravelType string

const (
	TravelDomestic      TravelType = "domestic"
	TravelInternational TravelType = "international"
)

// LTAResult reports the Leave Travel Allowance exemption.
type LTAResult struct {
	LTAReceived decimal.Decimal `json:"lta_received"`
	TravelFare  decimal.Decimal `json:"travel_fare"`
	TravelType  TravelType      `json:"travel_type"`
	Exemption   decimal.Decimal `json:"lta_exemption"`
	TaxableLTA  decimal.Decimal `json:"taxable_lta"`
}

// CapitalGainsType labels the tax treatment applied to a disposal.
type CapitalGainsType string

const (
	GainsEquityLTCG  CapitalGainsType = "ltcg_equity"
	GainsEquitySTCG  CapitalGainsType = "stcg_equity"
	GainsDebtLTCG    CapitalGainsType = "ltcg_debt"
	GainsDebtSTCG    CapitalGainsType = "stcg_debt"
	GainsCapitalLoss CapitalGainsType = "capital_loss"
)

// CapitalGainsResult is the structured capital-gains tax breakdown.
// For debt STCG the amount is an estimate at an assumed slab rate, flagged
// via Estimate; the investor's actual slab decides the real liability.
type CapitalGainsResult struct {
	Equity          bool             `json:"is_equity"`
	HoldingDays     int              `json:"holding_period_days"`
	BuyValue        decimal.Decimal  `json:"buy_value"`
	SellValue       decimal.Decimal  `json:"sell_value"`
	Gain            decimal.Decimal  `json:"total_gain"`
	TaxType         CapitalGainsType `json:"tax_type"`
	ExemptionUsed   decimal.Decimal  `json:"exemption_used"`
	TaxableGain     decimal.Decimal  `json:"taxable_gain"`
	TaxRatePct      decimal.Decimal  `json:"tax_rate_pct"`
	TaxAmount       decimal.Decimal  `json:"tax_amount"`
	NetProceeds     decimal.Decimal  `json:"net_proceeds"`
	EffectiveRate   decimal.Decimal  `json:"effective_tax_rate_pct"`
	Estimate        bool             `json:"is_estimate"`
	Note            string           `json:"note,omitempty"`
}
