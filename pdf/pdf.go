// Package pdf renders a fully-recalculated invoice into a print-ready A4
// portrait document. Callers are expected to hand it invoices straight from
// the editor, so totals are always current at render time.
package pdf

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/yourusername/invoice-studio/models"
	"github.com/yourusername/invoice-studio/utils"
)

const pageWidth = 210.0 // A4 width in mm

// Render produces the invoice PDF as a byte slice.
func Render(inv *models.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(15, 15, 15)
	doc.AddPage()

	symbol := models.SymbolFor(inv.Settings.Currency)
	money := func(d decimal.Decimal) string {
		return tr(utils.FormatAmount(d, symbol))
	}

	drawLogo(doc, inv.BusinessDetails.Logo)

	// Business block on the left, invoice metadata on the right.
	doc.SetFont("Arial", "B", 16)
	doc.Cell(120, 8, tr(inv.BusinessDetails.Name))
	doc.SetFont("Arial", "B", 14)
	doc.CellFormat(0, 8, "INVOICE", "", 1, "R", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(90, 90, 90)
	for _, line := range []string{
		inv.BusinessDetails.Address,
		inv.BusinessDetails.Email,
		inv.BusinessDetails.Phone,
	} {
		if line != "" {
			doc.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
		}
	}
	doc.Ln(4)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Arial", "B", 10)
	doc.Cell(95, 5, "BILL TO")
	doc.CellFormat(0, 5, tr(inv.InvoiceNumber), "", 1, "R", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.Cell(95, 5, tr(inv.ClientDetails.Name))
	doc.CellFormat(0, 5, "Issued: "+utils.FormatDate(inv.CreatedAt), "", 1, "R", false, 0, "")
	doc.Cell(95, 5, tr(inv.ClientDetails.Address))
	doc.CellFormat(0, 5, "Due: "+utils.FormatDate(inv.DueDate), "", 1, "R", false, 0, "")
	doc.Cell(95, 5, tr(inv.ClientDetails.Email))
	doc.CellFormat(0, 5, "Status: "+strings.ToUpper(string(inv.Status)), "", 1, "R", false, 0, "")
	if inv.ClientDetails.Phone != "" {
		doc.CellFormat(0, 5, tr(inv.ClientDetails.Phone), "", 1, "L", false, 0, "")
	}
	doc.Ln(8)

	// Items table.
	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(240, 240, 240)
	doc.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(30, 8, "Rate", "1", 0, "R", true, 0, "")
	doc.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		doc.CellFormat(90, 8, tr(item.Description), "1", 0, "L", false, 0, "")
		doc.CellFormat(25, 8, item.Quantity.String(), "1", 0, "R", false, 0, "")
		doc.CellFormat(30, 8, money(item.Rate), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 8, money(item.Amount), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	// Totals block, right-aligned.
	totalsRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Arial", style, 10)
		doc.Cell(115, 7, "")
		doc.CellFormat(30, 7, label, "", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, value, "", 1, "R", false, 0, "")
	}

	totalsRow("Subtotal", money(inv.Totals.Subtotal), false)
	if !inv.Settings.TaxRate.IsZero() {
		label := inv.Settings.TaxLabel + " (" + inv.Settings.TaxRate.String() + "%)"
		totalsRow(tr(label), money(inv.Totals.TaxAmount), false)
	}
	if !inv.Totals.DiscountAmount.IsZero() {
		totalsRow("Discount", "-"+money(inv.Totals.DiscountAmount), false)
	}
	totalsRow("Total", money(inv.Totals.Total), true)

	if inv.Notes != "" {
		doc.Ln(8)
		doc.SetFont("Arial", "B", 10)
		doc.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
		doc.SetFont("Arial", "", 10)
		doc.MultiCell(0, 5, tr(inv.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawLogo places the business logo in the top-right corner when one is set.
// A logo that fails to decode is skipped; it never blocks the export.
func drawLogo(doc *gofpdf.Fpdf, logo string) {
	if logo == "" {
		return
	}

	imageType := "PNG"
	payload := logo
	if strings.HasPrefix(logo, "data:") {
		idx := strings.Index(logo, ";base64,")
		if idx < 0 {
			return
		}
		if strings.Contains(logo[:idx], "jpeg") || strings.Contains(logo[:idx], "jpg") {
			imageType = "JPG"
		}
		payload = logo[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	doc.RegisterImageOptionsReader("business-logo", opts, bytes.NewReader(raw))
	if doc.Err() {
		// Undecodable image data; clear the error so the rest still renders.
		doc.ClearError()
		return
	}
	doc.ImageOptions("business-logo", pageWidth-45, 12, 30, 0, false, opts, 0, "")
}
