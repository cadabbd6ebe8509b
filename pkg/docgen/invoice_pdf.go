// Package docgen renders billing documents: PDF invoices and the XLSX
// bill ledger export. Layouts are fixed-geometry tables driven by the
// declarative column definitions below rather than inlined draw calls,
// so the tabular content can be tested apart from the PDF encoder.
package docgen

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopstack/billing-api/internal/domain/entity"
)

// Page geometry in points (Letter: 612x792).
const (
	pageWidth   = 612
	pageHeight  = 792
	pageMargin  = 40
	tableTop    = 180
	rowHeight   = 25
	rowFontSize = 11
)

// tableColumn describes one fixed column of the invoice item table.
type tableColumn struct {
	Title string
	X     float64
	Width float64
	Align string
}

// invoiceColumns is the invoice table layout: serial, name, quantity and
// amount, each at a fixed x-offset with centered text.
var invoiceColumns = []tableColumn{
	{Title: "S.No.", X: 40, Width: 60, Align: "C"},
	{Title: "Product Name", X: 100, Width: 250, Align: "C"},
	{Title: "Qty.", X: 350, Width: 100, Align: "C"},
	{Title: "Amount", X: 450, Width: 100, Align: "C"},
}

// FormatAmount renders a cent amount as a 2-decimal currency string.
// Rounding happens only here, never mid-computation.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("Rs. %.2f", float64(cents)/100)
}

// customerMobileOrFallback returns the literal placeholder the invoice
// prints when no customer phone was captured.
func customerMobileOrFallback(mobile string) string {
	if mobile == "" {
		return "Not provided"
	}
	return mobile
}

// InvoiceTableRows returns the item table content, one row per line item
// in column order. Both render paths share this, so a persisted bill
// always produces the same tabular content.
func InvoiceTableRows(inv *entity.Invoice) [][]string {
	rows := make([][]string, 0, len(inv.Items))
	for i, item := range inv.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Name,
			strconv.Itoa(item.Quantity),
			FormatAmount(item.Total),
		})
	}
	return rows
}

// RenderInvoicePDF renders an invoice as a PDF document. The creation
// date embedded in the PDF metadata comes from the invoice value, so
// re-rendering the same persisted bill is byte-for-byte identical.
func RenderInvoicePDF(inv *entity.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(inv.CreatedAt)
	pdf.SetModificationDate(inv.CreatedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	drawHeaderBand(pdf, inv.ShopName)
	drawMetadata(pdf, inv)
	y := drawItemTable(pdf, inv)
	drawFooter(pdf, inv, y)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// drawHeaderBand paints the two-tone header: a blue band with a lighter
// accent strip, shop name on the left, "INVOICE" on the right.
func drawHeaderBand(pdf *gofpdf.Fpdf, shopName string) {
	pdf.SetFillColor(0x2E, 0x86, 0xAB)
	pdf.Rect(0, 0, pageWidth, 70, "F")
	pdf.SetFillColor(0xA2, 0x3B, 0x72)
	pdf.Rect(0, 50, pageWidth, 20, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "", 20)
	pdf.SetXY(pageMargin, 15)
	pdf.CellFormat(350, 25, shopName, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 18)
	pdf.SetXY(pageWidth-120, 15)
	pdf.CellFormat(100, 25, "INVOICE", "", 0, "L", false, 0, "")
}

// drawMetadata writes the invoice number/date block on the right and the
// customer details block on the left.
func drawMetadata(pdf *gofpdf.Fpdf, inv *entity.Invoice) {
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageWidth-200, 90)
	pdf.CellFormat(150, 12, "Invoice No: "+inv.InvoiceNo, "", 0, "L", false, 0, "")
	pdf.SetXY(pageWidth-200, 110)
	pdf.CellFormat(150, 12, "Invoice Date: "+inv.Date, "", 0, "L", false, 0, "")

	pdf.SetXY(pageMargin, 90)
	pdf.CellFormat(150, 12, "Name:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(pageMargin, 105)
	pdf.CellFormat(250, 14, inv.CustomerName, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(pageMargin, 125)
	pdf.CellFormat(150, 12, "Phone:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(pageMargin, 140)
	pdf.CellFormat(250, 14, customerMobileOrFallback(inv.CustomerMobile), "", 0, "L", false, 0, "")
}

// drawItemTable draws the column headers and one row per line item with
// alternating row backgrounds. Returns the y position below the last row.
func drawItemTable(pdf *gofpdf.Fpdf, inv *entity.Invoice) float64 {
	drawTableHeader(pdf, tableTop)

	rows := InvoiceTableRows(inv)
	pdf.SetFont("Helvetica", "", rowFontSize)
	y := float64(tableTop + 30)

	for i, row := range rows {
		if y+rowHeight > pageHeight-pageMargin {
			pdf.AddPage()
			drawTableHeader(pdf, pageMargin)
			pdf.SetFont("Helvetica", "", rowFontSize)
			y = pageMargin + 30
		}

		if i%2 == 0 {
			pdf.SetFillColor(0xFA, 0xFA, 0xFA)
			pdf.Rect(pageMargin, y-8, pageWidth-2*pageMargin, rowHeight, "F")
		}

		pdf.SetTextColor(0, 0, 0)
		for c, col := range invoiceColumns {
			pdf.SetXY(col.X, y)
			pdf.CellFormat(col.Width, 14, row[c], "", 0, col.Align, false, 0, "")
		}
		y += rowHeight
	}

	return y
}

// drawTableHeader draws the shaded header row of the item table at the
// given top offset.
func drawTableHeader(pdf *gofpdf.Fpdf, top float64) {
	pdf.SetFillColor(0xF5, 0xF5, 0xF5)
	pdf.Rect(pageMargin, top-8, pageWidth-2*pageMargin, rowHeight, "F")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	for _, col := range invoiceColumns {
		pdf.SetXY(col.X, top)
		pdf.CellFormat(col.Width, 14, col.Title, "", 0, col.Align, false, 0, "")
	}

	pdf.SetDrawColor(0xDD, 0xDD, 0xDD)
	pdf.Line(pageMargin, top+17, pageWidth-pageMargin, top+17)
}

// drawFooter draws the rule above the total, the bold total amount and
// the closing line.
func drawFooter(pdf *gofpdf.Fpdf, inv *entity.Invoice, y float64) {
	if y+80 > pageHeight-pageMargin {
		pdf.AddPage()
		y = pageMargin
	}

	pdf.SetDrawColor(0x33, 0x33, 0x33)
	pdf.Line(350, y+10, pageWidth-pageMargin, y+10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0x2E, 0x86, 0xAB)
	pdf.SetXY(350, y+25)
	pdf.CellFormat(100, 16, "Total:", "", 0, "R", false, 0, "")
	pdf.SetXY(450, y+25)
	pdf.CellFormat(100, 16, FormatAmount(inv.Total), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(pageMargin, y+80)
	pdf.CellFormat(pageWidth-2*pageMargin, 14, "Thank you for your business!", "", 0, "C", false, 0, "")
}
