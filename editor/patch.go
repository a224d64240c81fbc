package editor

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/invoice-studio/models"
)

// ContactPatch updates individual fields of a contact record. Nil means
// "leave the field as it is", so a patch only ever touches what it names.
type ContactPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Logo    *string `json:"logo"`
}

// SettingsPatch updates individual invoice settings.
type SettingsPatch struct {
	Currency      *string              `json:"currency"`
	TaxRate       *decimal.Decimal     `json:"tax_rate"`
	TaxLabel      *string              `json:"tax_label"`
	DiscountType  *models.DiscountType `json:"discount_type"`
	DiscountValue *decimal.Decimal     `json:"discount_value"`
}

// ItemPatch updates individual fields of a line item.
type ItemPatch struct {
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Rate        *decimal.Decimal `json:"rate"`
}
