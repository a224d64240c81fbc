package models

// Currency is a display label only. No conversion semantics are attached to
// the code; the symbol is used purely for formatting.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
}

// SymbolFor returns the display symbol for a currency code, or "$" when the
// code is unknown.
func SymbolFor(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return "$"
}

// TaxPreset is a convenience option surfaced by the client UI. A negative
// value marks the "enter your own rate" option.
type TaxPreset struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var TaxPresets = []TaxPreset{
	{Label: "No Tax", Value: 0},
	{Label: "VAT 5%", Value: 5},
	{Label: "VAT 10%", Value: 10},
	{Label: "VAT 18%", Value: 18},
	{Label: "VAT 20%", Value: 20},
	{Label: "Custom", Value: -1},
}
