// Package money provides INR arithmetic helpers on top of shopspring/decimal.
// All calculation engines round outward-facing amounts to paise (2 decimals)
// and express rates as percentages in [0,100].
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds an amount to paise, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Pct returns pct percent of base, e.g. Pct(50000, 10) = 5000.
func Pct(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// Rate converts an annual percentage to a decimal rate, e.g. 8.5 -> 0.085.
func Rate(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// MonthlyRate converts an annual percentage to a monthly decimal rate,
// e.g. 12 -> 0.01.
func MonthlyRate(annualPct decimal.Decimal) decimal.Decimal {
	return annualPct.Div(decimal.NewFromInt(12)).Div(hundred)
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Lakh expresses an amount in lakhs (1 lakh = 1e5).
func Lakh(d decimal.Decimal) decimal.Decimal {
	return d.Div(decimal.NewFromInt(100000))
}

// Crore expresses an amount in crores (1 crore = 1e7).
func Crore(d decimal.Decimal) decimal.Decimal {
	return d.Div(decimal.NewFromInt(10000000))
}

// FormatINR renders an amount with the rupee sign and Indian digit grouping:
// the last three integer digits form one group, every two digits after that,
// e.g. 12345678.9 -> "₹1,23,45,678.90".
func FormatINR(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteRune('₹')
	b.WriteString(groupIndian(intPart))
	b.WriteString(fracPart)
	return b.String()
}

func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head := digits[:n-3]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, digits[n-3:])
	return strings.Join(groups, ",")
}
