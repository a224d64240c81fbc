package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is set by the user, never derived. An invoice past its due
// date stays "sent" until someone marks it otherwise.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (d DiscountType) Valid() bool {
	return d == DiscountPercentage || d == DiscountFixed
}

// InvoiceItem is one billable line. Amount is derived from Quantity and Rate
// by the editor and must never be set independently.
type InvoiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

type BusinessDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Logo    string `json:"logo,omitempty"` // base64 encoded image, optionally a data URI
}

type ClientDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type InvoiceSettings struct {
	Currency      string          `json:"currency"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxLabel      string          `json:"tax_label"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// InvoiceTotals is fully derived from items and settings. It is recomputed
// after every mutation and never trusted from stored or external input.
type InvoiceTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

// Invoice is the aggregate root and the sole unit of persistence. Items,
// settings and totals have no identity outside their owning invoice.
type Invoice struct {
	ID              string          `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	CreatedAt       time.Time       `json:"created_at"`
	DueDate         time.Time       `json:"due_date"`
	BusinessDetails BusinessDetails `json:"business_details"`
	ClientDetails   ClientDetails   `json:"client_details"`
	Items           []InvoiceItem   `json:"items"`
	Settings        InvoiceSettings `json:"settings"`
	Totals          InvoiceTotals   `json:"totals"`
	Notes           string          `json:"notes"`
	Status          InvoiceStatus   `json:"status"`
}

// NewInvoice creates an empty draft with default settings and zeroed totals.
// The due date defaults to 30 days after creation.
func NewInvoice() *Invoice {
	now := time.Now()

	return &Invoice{
		ID:            GenerateID(),
		InvoiceNumber: GenerateInvoiceNumber(),
		CreatedAt:     now,
		DueDate:       now.AddDate(0, 0, 30),
		Items:         []InvoiceItem{},
		Settings: InvoiceSettings{
			Currency:      "USD",
			TaxRate:       decimal.Zero,
			TaxLabel:      "Tax",
			DiscountType:  DiscountPercentage,
			DiscountValue: decimal.Zero,
		},
		Totals: InvoiceTotals{
			Subtotal:       decimal.Zero,
			TaxAmount:      decimal.Zero,
			DiscountAmount: decimal.Zero,
			Total:          decimal.Zero,
		},
		Status: StatusDraft,
	}
}

// NewInvoiceItem creates a blank line item: quantity 1, rate 0, amount 0.
func NewInvoiceItem() InvoiceItem {
	return InvoiceItem{
		ID:       GenerateID(),
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.Zero,
		Amount:   decimal.Zero,
	}
}

// Clone returns a copy whose item slice is independent of the original.
func (inv *Invoice) Clone() *Invoice {
	out := *inv
	out.Items = append([]InvoiceItem(nil), inv.Items...)
	return &out
}

// GenerateID returns an opaque unique identifier.
func GenerateID() string {
	return uuid.NewString()
}

// GenerateInvoiceNumber returns a human-facing invoice number. Timestamp plus
// a random suffix is collision-resistant enough for a single-user session.
func GenerateInvoiceNumber() string {
	return fmt.Sprintf("INV-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
