package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount to 2 decimal places for display.
// Example: 12.3456 returns "12.35".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
