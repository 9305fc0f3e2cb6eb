package export

import "github.com/shopspring/decimal"

// money renders an amount with two decimal places for report output.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
