package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// New wraps a decimal.Decimal as Money
func New(d decimal.Decimal) Money {
	return Money{d}
}

// Format renders the amount as dollars with thousands separators, e.g. $1,234,567.89
func (m Money) Format() string {
	return "$" + group(m.Decimal.StringFixed(2))
}

// FormatWhole renders the amount rounded to whole dollars, e.g. $1,234,568
func (m Money) FormatWhole() string {
	return "$" + group(m.Decimal.StringFixed(0))
}

// group inserts comma separators into the integer part of a fixed-point string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// FromPercent converts a percentage (5 for 5%) to a fraction (0.05)
func FromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Shift(-2)
}

// GrowthFactor returns 1 + percent/100. A zero rate yields exactly 1.
func GrowthFactor(percent decimal.Decimal) decimal.Decimal {
	return one.Add(FromPercent(percent))
}

// ApplyTaxRate removes a percentage tax from an amount
func ApplyTaxRate(amount, taxPercent decimal.Decimal) decimal.Decimal {
	return amount.Sub(amount.Mul(FromPercent(taxPercent)))
}

// Compound grows amount by percent for the given number of whole years.
// Non-positive year counts return the amount unchanged.
func Compound(amount, percent decimal.Decimal, years int) decimal.Decimal {
	factor := GrowthFactor(percent)
	for y := 0; y < years; y++ {
		amount = amount.Mul(factor)
	}
	return amount
}
