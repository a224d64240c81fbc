package utils

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/invoice-studio/models"
)

var hundred = decimal.NewFromInt(100)

// ItemAmount returns quantity × rate. Rounding is a display concern and is
// never applied here.
func ItemAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// Subtotal sums the stored amount of each item. It trusts item.Amount rather
// than recomputing from quantity × rate; the editor is the only writer and
// keeps the stored amount consistent on every mutation.
func Subtotal(items []models.InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Amount)
	}
	return sum
}

// Tax returns subtotal × rate / 100. Rates outside [0, 100] are not clamped.
func Tax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Div(hundred)
}

// Discount returns the discount amount for the given mode. A fixed discount
// is taken verbatim and may exceed the subtotal.
func Discount(subtotal decimal.Decimal, discountType models.DiscountType, value decimal.Decimal) decimal.Decimal {
	if discountType == models.DiscountPercentage {
		return subtotal.Mul(value).Div(hundred)
	}
	return value
}

// Totals derives all invoice totals from items and settings. The grand total
// is floored at zero: a discount larger than subtotal + tax never produces a
// negative invoice.
func Totals(items []models.InvoiceItem, settings models.InvoiceSettings) models.InvoiceTotals {
	subtotal := Subtotal(items)
	taxAmount := Tax(subtotal, settings.TaxRate)
	discountAmount := Discount(subtotal, settings.DiscountType, settings.DiscountValue)

	total := subtotal.Add(taxAmount).Sub(discountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return models.InvoiceTotals{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		DiscountAmount: discountAmount,
		Total:          total,
	}
}
