package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with its currency symbol and exactly two
// decimal places.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	return symbol + amount.StringFixed(2)
}

// FormatDate renders a timestamp in the fixed human-readable format used on
// invoices.
func FormatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

// FormatDateForInput renders a timestamp for an HTML date input.
func FormatDateForInput(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseAmount parses free-form user input into a decimal, stripping currency
// symbols and separators. Anything that still fails to parse coerces to zero;
// the calculation layer never sees malformed numbers.
func ParseAmount(value string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, value)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
