package domain

import "github.com/shopspring/decimal"

// EMIResult is the amortized payment for a loan.
type EMIResult struct {
	Principal     decimal.Decimal `json:"principal"`
	AnnualRatePct decimal.Decimal `json:"annual_rate_pct"`
	TenureYears   int             `json:"tenure_years"`
	MonthlyEMI    decimal.Decimal `json:"monthly_emi"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

// OwnershipOption labels the cheaper side of a buy-vs-rent comparison.
type OwnershipOption string

const (
	OptionBuy  OwnershipOption = "buy"
	OptionRent OwnershipOption = "rent"
)

// BuyCost is the net cost of buying over the comparison period: down
// payment plus EMIs paid, less the appreciation gain on the property.
type BuyCost struct {
	TotalEMIPaid        decimal.Decimal `json:"total_emi_paid"`
	PropertyValueAfter  decimal.Decimal `json:"property_value_after_period"`
	NetCost             decimal.Decimal `json:"net_cost"`
}

// RentCost is the total rent paid with yearly escalation.
type RentCost struct {
	TotalRentPaid    decimal.Decimal `json:"total_rent_paid"`
	FinalMonthlyRent decimal.Decimal `json:"final_monthly_rent"`
	NetCost          decimal.Decimal `json:"net_cost"`
}

// BuyVsRentResult compares total ownership cost against renting.
type BuyVsRentResult struct {
	PropertyValue   decimal.Decimal `json:"property_value"`
	DownPayment     decimal.Decimal `json:"down_payment"`
	LoanAmount      decimal.Decimal `json:"loan_amount"`
	MonthlyEMI      decimal.Decimal `json:"monthly_emi"`
	ComparisonYears int             `json:"comparison_years"`
	Buying          BuyCost         `json:"buying"`
	Renting         RentCost        `json:"renting"`
	BetterOption    OwnershipOption `json:"better_option"`
	Savings         decimal.Decimal `json:"savings"`
}

// LeverageStatus classifies EMI headroom against income.
type LeverageStatus string

const (
	StatusOverLeveraged LeverageStatus = "over_leveraged"
	StatusTight         LeverageStatus = "tight"
	StatusComfortable   LeverageStatus = "comfortable"
)

// LoanEligibility is the FOIR-based EMI headroom and the loan principal it
// supports at the assumed rate and tenure.
type LoanEligibility struct {
	MonthlyIncome       decimal.Decimal `json:"monthly_income"`
	ExistingEMIs        decimal.Decimal `json:"existing_emis"`
	FOIRLimitPct        decimal.Decimal `json:"foir_limit_pct"`
	MaxTotalEMI         decimal.Decimal `json:"max_total_emi"`
	AvailableEMI        decimal.Decimal `json:"available_for_new_emi"`
	Status              LeverageStatus  `json:"status"`
	AssumedRatePct      decimal.Decimal `json:"assumed_rate_pct"`
	AssumedTenureYears  int             `json:"assumed_tenure_years"`
	EstimatedPrincipal  decimal.Decimal `json:"estimated_loan_eligibility"`
}
