package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// TAX REGIME ASSUMPTIONS (FY 2024-25):
//
// 1. Old regime: standard deduction 50,000; all Chapter VI-A deductions and
//    salary exemptions allowed. Slabs 0/5/20/30 over 2.5L/5L/10L.
// 2. New regime: standard deduction 75,000; no other deductions. Slabs
//    0/5/10/15/20/30 over 3L/7L/10L/12L/15L.
// 3. Health and education cess of 4% applied to the slab tax of both regimes.
// 4. Surcharge above 50L total income is not modeled.

// TaxBracket is one marginal slab of a regime.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// openUpperBound caps the top slab; incomes beyond this are not meaningful.
var openUpperBound = decimal.New(1, 15)

// RegimeCalculator computes income tax under the old and new Indian regimes.
type RegimeCalculator struct {
	OldBrackets          []TaxBracket
	NewBrackets          []TaxBracket
	OldStandardDeduction decimal.Decimal
	NewStandardDeduction decimal.Decimal
	CessRate             decimal.Decimal

	logger Logger
}

// NewRegimeCalculator creates a calculator with FY 2024-25 slabs.
func NewRegimeCalculator() *RegimeCalculator {
	return &RegimeCalculator{
		OldBrackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(250000), decimal.Zero},
			{decimal.NewFromInt(250000), decimal.NewFromInt(500000), decimal.NewFromFloat(0.05)},
			{decimal.NewFromInt(500000), decimal.NewFromInt(1000000), decimal.NewFromFloat(0.20)},
			{decimal.NewFromInt(1000000), openUpperBound, decimal.NewFromFloat(0.30)},
		},
		NewBrackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(300000), decimal.Zero},
			{decimal.NewFromInt(300000), decimal.NewFromInt(700000), decimal.NewFromFloat(0.05)},
			{decimal.NewFromInt(700000), decimal.NewFromInt(1000000), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(1000000), decimal.NewFromInt(1200000), decimal.NewFromFloat(0.15)},
			{decimal.NewFromInt(1200000), decimal.NewFromInt(1500000), decimal.NewFromFloat(0.20)},
			{decimal.NewFromInt(1500000), openUpperBound, decimal.NewFromFloat(0.30)},
		},
		OldStandardDeduction: decimal.NewFromInt(50000),
		NewStandardDeduction: decimal.NewFromInt(75000),
		CessRate:             decimal.NewFromFloat(0.04),
		logger:               NopLogger{},
	}
}

// SetLogger replaces the calculator's logger; nil restores the no-op logger.
func (rc *RegimeCalculator) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	rc.logger = l
}

// OldRegimeTax returns the slab tax (before cess) on taxable income under
// the old regime.
func (rc *RegimeCalculator) OldRegimeTax(taxableIncome decimal.Decimal) (decimal.Decimal, error) {
	if taxableIncome.IsNegative() {
		return decimal.Zero, domain.Invalid("taxable_income", "must not be negative")
	}
	return slabTax(rc.OldBrackets, taxableIncome), nil
}

// NewRegimeTax returns the slab tax (before cess) on taxable income under
// the new regime.
func (rc *RegimeCalculator) NewRegimeTax(taxableIncome decimal.Decimal) (decimal.Decimal, error) {
	if taxableIncome.IsNegative() {
		return decimal.Zero, domain.Invalid("taxable_income", "must not be negative")
	}
	return slabTax(rc.NewBrackets, taxableIncome), nil
}

// slabTax walks the marginal brackets, taxing the slice of income that
// falls inside each. Continuous at every bracket boundary.
func slabTax(brackets []TaxBracket, taxableIncome decimal.Decimal) decimal.Decimal {
	var tax decimal.Decimal
	for _, b := range brackets {
		if taxableIncome.LessThanOrEqual(b.Min) {
			break
		}
		inBracket := money.Min(taxableIncome, b.Max).Sub(b.Min)
		if inBracket.IsPositive() {
			tax = tax.Add(inBracket.Mul(b.Rate))
		}
	}
	return tax
}

// RegimeDeductions are the already-capped deduction amounts claimed under
// the old regime. Section 24 interest is the only head capped here (at
// 2,00,000 for self-occupied property); the others arrive pre-capped from
// their own sub-calculators.
type RegimeDeductions struct {
	Section80C        decimal.Decimal `json:"section_80c"`
	Section80D        decimal.Decimal `json:"section_80d"`
	Section80CCD1B    decimal.Decimal `json:"section_80ccd_1b"`
	Section24Interest decimal.Decimal `json:"section_24_interest"`
	HRAExemption      decimal.Decimal `json:"hra_exemption"`
	LTAExemption      decimal.Decimal `json:"lta_exemption"`
	Other             decimal.Decimal `json:"other_deductions"`
}

// CompareRegimes computes tax under both regimes and recommends the cheaper
// one, reporting the INR saving.
func (rc *RegimeCalculator) CompareRegimes(grossIncome decimal.Decimal, ded RegimeDeductions) (*domain.RegimeComparison, error) {
	if grossIncome.IsNegative() {
		return nil, domain.Invalid("gross_income", "must not be negative")
	}
	for field, v := range map[string]decimal.Decimal{
		"section_80c":         ded.Section80C,
		"section_80d":         ded.Section80D,
		"section_80ccd_1b":    ded.Section80CCD1B,
		"section_24_interest": ded.Section24Interest,
		"hra_exemption":       ded.HRAExemption,
		"lta_exemption":       ded.LTAExemption,
		"other_deductions":    ded.Other,
	} {
		if v.IsNegative() {
			return nil, domain.Invalid(field, "must not be negative")
		}
	}

	section24 := money.Min(ded.Section24Interest, section24SelfOccupiedCap)

	oldDeductions := map[string]decimal.Decimal{
		"section_80c":         ded.Section80C,
		"section_80d":         ded.Section80D,
		"section_80ccd_1b":    ded.Section80CCD1B,
		"section_24_interest": section24,
		"hra_exemption":       ded.HRAExemption,
		"lta_exemption":       ded.LTAExemption,
		"standard_deduction":  rc.OldStandardDeduction,
		"other_deductions":    ded.Other,
	}

	var oldTotal decimal.Decimal
	for _, v := range oldDeductions {
		oldTotal = oldTotal.Add(v)
	}

	oldTaxable := money.Max(decimal.Zero, grossIncome.Sub(oldTotal))
	oldTax := slabTax(rc.OldBrackets, oldTaxable)

	newTaxable := money.Max(decimal.Zero, grossIncome.Sub(rc.NewStandardDeduction))
	newTax := slabTax(rc.NewBrackets, newTaxable)

	cessFactor := decimal.NewFromInt(1).Add(rc.CessRate)
	oldWithCess := money.Round2(oldTax.Mul(cessFactor))
	newWithCess := money.Round2(newTax.Mul(cessFactor))

	cmp := &domain.RegimeComparison{
		GrossIncome: grossIncome,
		OldRegime: domain.RegimeResult{
			Deductions:      oldDeductions,
			TotalDeductions: oldTotal,
			TaxableIncome:   oldTaxable,
			TaxBeforeCess:   money.Round2(oldTax),
			TaxWithCess:     oldWithCess,
		},
		NewRegime: domain.RegimeResult{
			Deductions: map[string]decimal.Decimal{
				"standard_deduction": rc.NewStandardDeduction,
			},
			TotalDeductions: rc.NewStandardDeduction,
			TaxableIncome:   newTaxable,
			TaxBeforeCess:   money.Round2(newTax),
			TaxWithCess:     newWithCess,
		},
	}

	if newWithCess.LessThan(oldWithCess) {
		cmp.Recommended = domain.RegimeNew
		cmp.Savings = oldWithCess.Sub(newWithCess)
		cmp.Reason = "You save " + money.FormatINR(cmp.Savings) + " with the new regime"
	} else {
		cmp.Recommended = domain.RegimeOld
		cmp.Savings = newWithCess.Sub(oldWithCess)
		cmp.Reason = "You save " + money.FormatINR(cmp.Savings) + " with the old regime"
	}

	rc.logger.Debugf("regime comparison: old=%s new=%s recommended=%s",
		oldWithCess, newWithCess, cmp.Recommended)

	return cmp, nil
}
