package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// Statutory caps, FY 2024-25.
var (
	section80CLimit          = decimal.NewFromInt(150000)
	section80DBaseLimit      = decimal.NewFromInt(25000)
	section80DSeniorLimit    = decimal.NewFromInt(50000)
	section80DCheckupLimit   = decimal.NewFromInt(5000)
	section80CCD1BLimit      = decimal.NewFromInt(50000)
	section24SelfOccupiedCap = decimal.NewFromInt(200000)

	metroBasicPct    = decimal.NewFromInt(50)
	nonMetroBasicPct = decimal.NewFromInt(40)
	tenPct           = decimal.NewFromInt(10)
)

// Section80C sums the six deductible heads, caps the total at 1,50,000 and
// reports the remaining headroom.
func Section80C(c domain.Contributions80C) (*domain.Section80CResult, error) {
	for field, v := range map[string]decimal.Decimal{
		"ppf":                 c.PPF,
		"elss":                c.ELSS,
		"life_insurance":      c.LifeInsurancePremium,
		"home_loan_principal": c.HomeLoanPrincipal,
		"tuition_fees":        c.TuitionFees,
		"epf":                 c.EPF,
	} {
		if v.IsNegative() {
			return nil, domain.Invalid(field, "must not be negative")
		}
	}

	total := c.PPF.Add(c.ELSS).Add(c.LifeInsurancePremium).
		Add(c.HomeLoanPrincipal).Add(c.TuitionFees).Add(c.EPF)

	eligible := money.Min(total, section80CLimit)
	remaining := money.Max(decimal.Zero, section80CLimit.Sub(total))

	return &domain.Section80CResult{
		Breakdown:         c,
		TotalInvestments:  total,
		Limit:             section80CLimit,
		EligibleDeduction: eligible,
		RemainingLimit:    remaining,
		FullyUtilized:     remaining.IsZero(),
	}, nil
}

// Section80D computes the health-insurance deduction. The preventive
// checkup allowance (5,000) counts inside the self/family limit, not on
// top of it; the parents limit doubles when they are senior citizens.
func Section80D(selfPremium, parentsPremium, checkup decimal.Decimal, selfSenior, parentsSenior bool) (*domain.Section80DResult, error) {
	for field, v := range map[string]decimal.Decimal{
		"self_premium":    selfPremium,
		"parents_premium": parentsPremium,
		"checkup":         checkup,
	} {
		if v.IsNegative() {
			return nil, domain.Invalid(field, "must not be negative")
		}
	}

	selfLimit := section80DBaseLimit
	if selfSenior {
		selfLimit = section80DSeniorLimit
	}
	parentsLimit := section80DBaseLimit
	if parentsSenior {
		parentsLimit = section80DSeniorLimit
	}

	selfEligible := money.Min(selfPremium, selfLimit)
	parentsEligible := money.Min(parentsPremium, parentsLimit)
	checkupEligible := money.Min(checkup, section80DCheckupLimit)

	selfWithCheckup := money.Min(selfEligible.Add(checkupEligible), selfLimit)

	return &domain.Section80DResult{
		SelfPremium:     selfPremium,
		SelfEligible:    selfEligible,
		ParentsPremium:  parentsPremium,
		ParentsEligible: parentsEligible,
		ParentsSenior:   parentsSenior,
		CheckupExpenses: checkup,
		CheckupEligible: checkupEligible,
		TotalEligible:   selfWithCheckup.Add(parentsEligible),
		MaximumPossible: selfLimit.Add(parentsLimit),
	}, nil
}

// Section80CCD computes the NPS deductions: employee contributions up to
// 50,000 under 80CCD(1B) (additive over 80C), employer contributions up to
// 10% of gross salary under 80CCD(2).
func Section80CCD(employeeNPS, grossSalary, employerNPS decimal.Decimal) (*domain.Section80CCDResult, error) {
	if employeeNPS.IsNegative() {
		return nil, domain.Invalid("employee_nps", "must not be negative")
	}
	if employerNPS.IsNegative() {
		return nil, domain.Invalid("employer_nps", "must not be negative")
	}
	if grossSalary.IsNegative() {
		return nil, domain.Invalid("gross_salary", "must not be negative")
	}

	employee1B := money.Min(employeeNPS, section80CCD1BLimit)
	employerLimit := money.Pct(grossSalary, tenPct)
	employer2 := money.Min(employerNPS, employerLimit)

	return &domain.Section80CCDResult{
		EmployeeContribution: employeeNPS,
		EmployerContribution: employerNPS,
		Employee1BEligible:   employee1B,
		Employee1BLimit:      section80CCD1BLimit,
		Employer2Eligible:    employer2,
		Employer2Limit:       employerLimit,
		TotalDeduction:       employee1B.Add(employer2),
	}, nil
}

// Section24 computes the home-loan interest deduction: capped at 2,00,000
// for self-occupied property, uncapped for let-out property.
func Section24(interestPaid decimal.Decimal, propertyType domain.PropertyType) (*domain.Section24Result, error) {
	if interestPaid.IsNegative() {
		return nil, domain.Invalid("home_loan_interest", "must not be negative")
	}

	switch propertyType {
	case domain.PropertySelfOccupied:
		eligible := money.Min(interestPaid, section24SelfOccupiedCap)
		return &domain.Section24Result{
			InterestPaid:      interestPaid,
			PropertyType:      propertyType,
			EligibleDeduction: eligible,
			NonDeductible:     money.Max(decimal.Zero, interestPaid.Sub(section24SelfOccupiedCap)),
			Capped:            true,
		}, nil
	case domain.PropertyLetOut:
		return &domain.Section24Result{
			InterestPaid:      interestPaid,
			PropertyType:      propertyType,
			EligibleDeduction: interestPaid,
			NonDeductible:     decimal.Zero,
			Capped:            false,
		}, nil
	default:
		return nil, domain.Invalidf("property_type", "must be %q or %q", domain.PropertySelfOccupied, domain.PropertyLetOut)
	}
}

// HRAExemption computes the exempt portion of House Rent Allowance:
// min(actual HRA, rent − 10% of basic, 50%/40% of basic), floored at zero
// when rent does not exceed 10% of basic.
func HRAExemption(basicSalary, hraReceived, rentPaid decimal.Decimal, metro bool) (*domain.HRAResult, error) {
	if basicSalary.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("basic_salary", "must be positive")
	}
	if hraReceived.IsNegative() {
		return nil, domain.Invalid("hra_received", "must not be negative")
	}
	if rentPaid.IsNegative() {
		return nil, domain.Invalid("rent_paid", "must not be negative")
	}

	rentComponent := rentPaid.Sub(money.Pct(basicSalary, tenPct))
	basicPct := nonMetroBasicPct
	if metro {
		basicPct = metroBasicPct
	}
	basicComponent := money.Pct(basicSalary, basicPct)

	exemption := money.Max(decimal.Zero, money.Min(hraReceived, money.Min(rentComponent, basicComponent)))

	return &domain.HRAResult{
		BasicSalary:        basicSalary,
		HRAReceived:        hraReceived,
		RentPaid:           rentPaid,
		Metro:              metro,
		RentMinus10PctBase: money.Max(decimal.Zero, rentComponent),
		BasicPctComponent:  basicComponent,
		Exemption:          money.Round2(exemption),
		TaxableHRA:         money.Round2(hraReceived.Sub(exemption)),
	}, nil
}

// LTAExemption computes the exempt Leave Travel Allowance: the lower of the
// allowance received and the travel fare, for domestic travel only.
func LTAExemption(ltaReceived, travelFare decimal.Decimal, travelType domain.TravelType) (*domain.LTAResult, error) {
	if ltaReceived.IsNegative() {
		return nil, domain.Invalid("lta_received", "must not be negative")
	}
	if travelFare.IsNegative() {
		return nil, domain.Invalid("travel_fare", "must not be negative")
	}

	var exemption decimal.Decimal
	switch travelType {
	case domain.TravelDomestic:
		exemption = money.Min(ltaReceived, travelFare)
	case domain.TravelInternational:
		exemption = decimal.Zero
	default:
		return nil, domain.Invalidf("travel_type", "must be %q or %q", domain.TravelDomestic, domain.TravelInternational)
	}

	return &domain.LTAResult{
		LTAReceived: ltaReceived,
		TravelFare:  travelFare,
		TravelType:  travelType,
		Exemption:   money.Round2(exemption),
		TaxableLTA:  money.Round2(ltaReceived.Sub(exemption)),
	}, nil
}
