// Package render produces printable invoice artifacts.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/saravanan/rentify-api/internal/domain/entity"
)

// InvoicePDFRenderer writes invoice PDFs into an output directory and
// returns the path of the generated file.
type InvoicePDFRenderer struct {
	outputDir string
}

func NewInvoicePDFRenderer(outputDir string) *InvoicePDFRenderer {
	return &InvoicePDFRenderer{outputDir: outputDir}
}

// Render generates the invoice PDF and returns its file path. Partially
// paid invoices get an "advance_invoice_" filename prefix so they are easy
// to spot in the output directory.
func (r *InvoicePDFRenderer) Render(inv *entity.InvoiceContent) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("render: failed to create output directory: %w", err)
	}

	prefix := "invoice_"
	if inv.IsPartiallyPaid() {
		prefix = "advance_invoice_"
	}
	filename := fmt.Sprintf("%s%s.pdf", prefix, inv.IssuedAt.Format("20060102_150405"))
	path := filepath.Join(r.outputDir, filename)

	pdf := buildInvoicePDF(inv)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("render: failed to write %s: %w", path, err)
	}
	return path, nil
}

func buildInvoicePDF(inv *entity.InvoiceContent) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	drawHeader(pdf, inv)
	drawMeta(pdf, inv)
	drawCustomer(pdf, inv)
	drawItems(pdf, inv)
	drawSummary(pdf, inv)
	drawFooter(pdf, inv)

	return pdf
}

func drawHeader(pdf *gofpdf.Fpdf, inv *entity.InvoiceContent) {
	// Title on the left, store block on the right
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(90, 10, "INVOICE", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(90, 6, inv.Header.StoreName, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(90, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, inv.Header.Address, "", 1, "R", false, 0, "")
	pdf.CellFormat(90, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, fmt.Sprintf("Phone: %s", inv.Header.Phone), "", 1, "R", false, 0, "")
	pdf.CellFormat(90, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, fmt.Sprintf("Email: %s", inv.Header.Email), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetDrawColor(180, 180, 180)
	x, y := pdf.GetXY()
	pdf.Line(x, y, 195, y)
	pdf.Ln(4)
}

func drawMeta(pdf *gofpdf.Fpdf, inv *entity.InvoiceContent) {
	pdf.SetTextColor(40, 40, 40)
	metaRow(pdf, "Invoice No:", inv.InvoiceNo)
	metaRow(pdf, "Date:", inv.IssuedAt.Format("02 Jan 2006 15:04"))
	metaRow(pdf, "Payment Method:", inv.PaymentMethod.String())
	metaRow(pdf, "Payment Status:", inv.Status)
	if inv.DueDate != nil {
		metaRow(pdf, "Balance Due Date:", inv.DueDate.Format("02 Jan 2006"))
	}
	pdf.Ln(4)
}

func metaRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(140, 6, value, "", 1, "L", false, 0, "")
}

func drawCustomer(pdf *gofpdf.Fpdf, inv *entity.InvoiceContent) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(180, 7, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(180, 5, inv.Customer.Name, "", 1, "L", false, 0, "")
	pdf.MultiCell(180, 5, inv.Customer.Address, "", "L", false)
	pdf.CellFormat(180, 5, fmt.Sprintf("Phone: %s", inv.Customer.PhoneOrFallback()), "", 1, "L", false, 0, "")
	pdf.CellFormat(180, 5, fmt.Sprintf("Email: %s", inv.Customer.EmailOrFallback()), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

func drawItems(pdf *gofpdf.Fpdf, inv *entity.InvoiceContent) {
	// Table header
	pdf.SetFillColor(50, 50, 50)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(12, 8, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(88, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 1, "R", true, 0, "")

	// Rows
	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(12, 8, fmt.Sprintf("%d", item.Index), "1", 0, "C", false, 0, "")
		pdf.CellFormat(88, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, item.UnitPrice.Format(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, item.LineTotal.Format(), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
}

func drawSummary(pdf *gofpdf.Fpdf, inv *entity.InvoiceContent) {
	summaryRow(pdf, "Subtotal", inv.SubTotal.FormatRupees(), false)
	summaryRow(pdf, "Grand Total", inv.GrandTotal.FormatRupees(), true)

	if inv.IsPartiallyPaid() {
		summaryRow(pdf, "Advance Paid", inv.AdvancePaid.FormatRupees(), false)
		summaryRow(pdf, "Balance Due", inv.BalanceDue.FormatRupees(), true)
	}
	pdf.Ln(4)
}

func summaryRow(pdf *gofpdf.Fpdf, label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(120, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, value, "", 1, "R", false, 0, "")
}

func drawFooter(pdf *gofpdf.Fpdf, inv *entity.InvoiceContent) {
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(180, 6, fmt.Sprintf("Amount in words: %s", inv.AmountInWords), "", "L", false)
	if inv.BalanceNote != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(180, 6, inv.BalanceNote, "", "L", false)
	}
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(180, 6, "Thank you for your business!", "", 1, "C", false, 0, "")
}
