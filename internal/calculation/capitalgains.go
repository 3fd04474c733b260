package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nivesh/fincalc/internal/domain"
	"github.com/nivesh/fincalc/pkg/money"
)

// CAPITAL GAINS ASSUMPTIONS (FY 2024-25, post July 2024 budget):
//
// 1. Equity: LTCG beyond 365 days at 12.5% on gains above the 1,25,000
//    annual exemption; STCG at a flat 20% with no exemption.
// 2. Debt: LTCG beyond 1095 days (36 months) at 12.5% without indexation;
//    STCG is added to income and taxed at the investor's slab. The slab is
//    unknown here, so the debt STCG figure assumes the 30% slab plus 4%
//    cess (31.2% effective) and is flagged as an estimate.
// 3. Losses carry no tax; Indian IT rules allow an 8-year carry-forward
//    against future capital gains.

const (
	equityLTCGThresholdDays = 365
	debtLTCGThresholdDays   = 1095
	lossCarryForwardYears   = 8
)

var (
	equityLTCGExemption = decimal.NewFromInt(125000)
	ltcgRatePct         = decimal.NewFromFloat(12.5)
	equitySTCGRatePct   = decimal.NewFromInt(20)
	assumedSlabRatePct  = decimal.NewFromInt(30)
	cessPct             = decimal.NewFromInt(4)
)

// CapitalGains computes the capital-gains tax on a single disposal.
// Equity and debt instruments have different long-term thresholds and
// short-term treatment; a loss yields zero tax.
func CapitalGains(buyPrice, sellPrice decimal.Decimal, holdingDays int, quantity decimal.Decimal, isEquity bool) (*domain.CapitalGainsResult, error) {
	if buyPrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("buy_price", "must be positive")
	}
	if sellPrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("sell_price", "must be positive")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Invalid("quantity", "must be positive")
	}
	if holdingDays < 0 {
		return nil, domain.Invalid("holding_period_days", "must not be negative")
	}

	buyValue := buyPrice.Mul(quantity)
	sellValue := sellPrice.Mul(quantity)
	gain := sellValue.Sub(buyValue)

	res := &domain.CapitalGainsResult{
		Equity:      isEquity,
		HoldingDays: holdingDays,
		BuyValue:    money.Round2(buyValue),
		SellValue:   money.Round2(sellValue),
		Gain:        money.Round2(gain),
	}

	if gain.LessThanOrEqual(decimal.Zero) {
		res.TaxType = domain.GainsCapitalLoss
		res.NetProceeds = money.Round2(sellValue)
		res.Note = fmt.Sprintf("Capital loss can be carried forward for %d years to offset future capital gains", lossCarryForwardYears)
		return res, nil
	}

	switch {
	case isEquity && holdingDays > equityLTCGThresholdDays:
		res.TaxType = domain.GainsEquityLTCG
		res.ExemptionUsed = money.Min(gain, equityLTCGExemption)
		res.TaxableGain = money.Max(decimal.Zero, gain.Sub(equityLTCGExemption))
		res.TaxRatePct = ltcgRatePct

	case isEquity:
		res.TaxType = domain.GainsEquitySTCG
		res.TaxableGain = gain
		res.TaxRatePct = equitySTCGRatePct

	case holdingDays > debtLTCGThresholdDays:
		res.TaxType = domain.GainsDebtLTCG
		res.TaxableGain = gain
		res.TaxRatePct = ltcgRatePct
		res.Note = "12.5% without indexation (post April 2023 rules)"

	default:
		// Debt STCG goes to the investor's slab; assume the top slab.
		res.TaxType = domain.GainsDebtSTCG
		res.TaxableGain = gain
		res.TaxRatePct = assumedSlabRatePct.Mul(decimal.NewFromInt(100).Add(cessPct)).
			Div(decimal.NewFromInt(100))
		res.Estimate = true
		res.Note = "Estimate at an assumed 30% slab plus 4% cess; actual tax depends on the investor's slab"
	}

	res.TaxAmount = money.Round2(money.Pct(res.TaxableGain, res.TaxRatePct))
	res.NetProceeds = money.Round2(sellValue.Sub(res.TaxAmount))
	res.EffectiveRate = money.Round2(res.TaxAmount.Div(gain).Mul(decimal.NewFromInt(100)))
	res.TaxableGain = money.Round2(res.TaxableGain)

	return res, nil
}
