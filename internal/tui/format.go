package tui

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the configured currency symbol.
func FormatMoney(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + d.Abs().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

// FormatSigned renders an amount with an explicit sign, for variance lines.
func FormatSigned(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + d.Abs().StringFixed(2)
	}
	return "+" + symbol + d.StringFixed(2)
}

// FormatCount pluralizes a simple noun.
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
