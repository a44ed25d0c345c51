package infra

// pdf.go — Invoice PDF generation using go-pdf/fpdf.
// Generates A4 invoices with:
//   - Issuer identity header (name, address, phone, registration)
//   - Invoice reference, dates and status
//   - Client block
//   - Item table in stored order (description, unit, qty, unit price, total)
//   - Subtotal / tax / bold total, taken from the stored header fields
//
// The output file is saved to storagePath/invoice_{reference}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"banaapro/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// IssuerIdentity is the company block printed at the top of every document.
type IssuerIdentity struct {
	Name         string
	Address      string
	Phone        string
	Registration string
}

// TaxLabel renders the active rate for the totals block, e.g. "Tax (19%)".
func TaxLabel(rate decimal.Decimal) string {
	return "Tax (" + rate.Mul(decimal.NewFromInt(100)).String() + "%)"
}

// GenerateInvoicePDF writes the archival PDF for a saved invoice.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateInvoicePDF(inv *model.Invoice, issuer IssuerIdentity, currency, taxLabel, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	ref := inv.ID.String()
	if len(ref) > 8 {
		ref = ref[:8]
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("invoice_%s.pdf", ref))

	title := "INVOICE"
	if inv.Type == model.InvoiceTypeProforma {
		title = "PROFORMA INVOICE"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30 // total margins = 30mm

	// ── Issuer header ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 8, issuer.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, issuer.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, issuer.Phone, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, issuer.Registration, "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("%s  %s", title, ref), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Date: "+inv.Date.Format("02/01/2006"), "", 1, "L", false, 0, "")
	if inv.DueDate != nil {
		pdf.CellFormat(contentW, 5, "Due: "+inv.DueDate.Format("02/01/2006"), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Status: "+inv.Status, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Client block ─────────────────────────────────────────────────────────
	if inv.Client != nil {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 5, "Billed to", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, inv.Client.Name, "", 1, "L", false, 0, "")
		if inv.Client.Address != "" {
			pdf.CellFormat(contentW, 5, inv.Client.Address, "", 1, "L", false, 0, "")
		}
		if inv.Client.Phone != "" {
			pdf.CellFormat(contentW, 5, inv.Client.Phone, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	// ── Items header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.40 // description
	col2 := contentW * 0.12 // unit
	col3 := contentW * 0.14 // qty
	col4 := contentW * 0.17 // unit price
	col5 := contentW * 0.17 // total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Unit", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Unit price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Total", "B", 1, "R", false, 0, "")

	// ── Item rows ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, item := range inv.Items {
		desc := item.Description
		if r := []rune(desc); len(r) > 45 {
			desc = string(r[:44]) + "…"
		}
		pdf.CellFormat(col1, 6, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, item.Unit, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, item.Quantity.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, item.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, item.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Totals — stored header figures, never recomputed from items ──────────
	labelW := col1 + col2 + col3
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(labelW, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4+col5, 6, inv.SubTotal.StringFixed(2)+" "+currency, "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, taxLabel+":", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4+col5, 6, inv.TaxAmount.StringFixed(2)+" "+currency, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4+col5, 8, inv.TotalAmount.StringFixed(2)+" "+currency, "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 4, "Thank you for your business.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
