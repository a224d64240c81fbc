package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/invoice-studio/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestItemAmount(t *testing.T) {
	assert.True(t, dec("150").Equal(ItemAmount(dec("3"), dec("50"))))
	assert.True(t, decimal.Zero.Equal(ItemAmount(dec("1"), dec("0"))))
	assert.True(t, dec("2.5").Equal(ItemAmount(dec("0.5"), dec("5"))))
}

func TestSubtotalAdditivity(t *testing.T) {
	items := []models.InvoiceItem{
		{Amount: dec("100")},
		{Amount: dec("49.99")},
		{Amount: dec("0.01")},
	}
	assert.True(t, dec("150").Equal(Subtotal(items)))
	assert.True(t, decimal.Zero.Equal(Subtotal(nil)))
}

func TestTaxLinearity(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		rate     string
		expected string
	}{
		{"zero rate", "100", "0", "0"},
		{"standard vat", "200", "18", "36"},
		{"full rate", "100", "100", "100"},
		{"beyond hundred", "100", "150", "150"},
		{"fractional", "99.99", "10", "9.999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tax(dec(tt.subtotal), dec(tt.rate))
			assert.True(t, dec(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestDiscountModes(t *testing.T) {
	assert.True(t, dec("10").Equal(Discount(dec("100"), models.DiscountPercentage, dec("10"))))
	assert.True(t, dec("10").Equal(Discount(dec("100"), models.DiscountFixed, dec("10"))))

	// A fixed discount is not capped to the subtotal.
	assert.True(t, dec("10").Equal(Discount(dec("5"), models.DiscountFixed, dec("10"))))
}

func TestTotals(t *testing.T) {
	items := []models.InvoiceItem{{Amount: dec("200")}}
	settings := models.InvoiceSettings{
		TaxRate:       dec("18"),
		DiscountType:  models.DiscountPercentage,
		DiscountValue: dec("10"),
	}

	totals := Totals(items, settings)

	assert.True(t, dec("200").Equal(totals.Subtotal))
	assert.True(t, dec("36").Equal(totals.TaxAmount))
	assert.True(t, dec("20").Equal(totals.DiscountAmount))
	assert.True(t, dec("216").Equal(totals.Total))
}

func TestTotalsFlooredAtZero(t *testing.T) {
	items := []models.InvoiceItem{{Amount: dec("50")}}
	settings := models.InvoiceSettings{
		TaxRate:       decimal.Zero,
		DiscountType:  models.DiscountFixed,
		DiscountValue: dec("80"),
	}

	totals := Totals(items, settings)

	assert.True(t, dec("80").Equal(totals.DiscountAmount), "discount itself is not capped")
	assert.True(t, totals.Total.IsZero(), "total must never go negative, got %s", totals.Total)
}

func TestTotalsIdempotent(t *testing.T) {
	items := []models.InvoiceItem{{Amount: dec("123.45")}, {Amount: dec("0.55")}}
	settings := models.InvoiceSettings{
		TaxRate:       dec("7.5"),
		DiscountType:  models.DiscountFixed,
		DiscountValue: dec("4"),
	}

	first := Totals(items, settings)
	second := Totals(items, settings)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.DiscountAmount.Equal(second.DiscountAmount))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestTotalsEmptyInvoice(t *testing.T) {
	totals := Totals(nil, models.InvoiceSettings{DiscountType: models.DiscountPercentage})

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}
