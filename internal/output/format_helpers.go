package output

import "github.com/shopspring/decimal"

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// Currency renders a float64 balance as a currency string. Simulation
// values stay float64 by contract; conversion to decimal happens only at
// the presentation edge.
func Currency(amount float64) string {
	return FormatCurrency(decimal.NewFromFloat(amount))
}

// Percent renders a fractional rate (e.g. 0.07) as a percentage string.
func Percent(rate float64) string {
	return FormatPercentage(decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)))
}
