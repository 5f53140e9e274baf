package service

import (
	"fmt"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/pkg/printer"
)

// receiptWidth is the character width of 58mm thermal paper.
const receiptWidth = 32

// EscposReceiptPrinter renders invoices as ESC/POS receipts and sends
// them to a thermal printer.
type EscposReceiptPrinter struct {
	device printer.Printer
}

func NewEscposReceiptPrinter(device printer.Printer) *EscposReceiptPrinter {
	return &EscposReceiptPrinter{device: device}
}

// PrintInvoice formats the invoice as a receipt and sends it to the printer.
func (p *EscposReceiptPrinter) PrintInvoice(inv *entity.InvoiceContent) error {
	if !p.device.IsConnected() {
		return fmt.Errorf("receipt printer is not connected")
	}
	return p.device.Print(FormatInvoiceReceipt(inv))
}

// FormatInvoiceReceipt builds the ESC/POS byte stream for an invoice.
func FormatInvoiceReceipt(inv *entity.InvoiceContent) []byte {
	d := printer.NewDocument(receiptWidth)

	// Store header
	d.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		SetBold(true).
		Text(inv.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if inv.Header.Address != "" {
		d.Text(inv.Header.Address)
	}
	if inv.Header.Phone != "" {
		d.Textf("Tel: %s", inv.Header.Phone)
	}
	d.Separator()

	// Invoice details
	d.SetAlign(printer.AlignLeft).
		KeyValue("Invoice", inv.InvoiceNo).
		KeyValue("Date", inv.IssuedAt.Format("02 Jan 2006 15:04")).
		KeyValue("Payment", inv.PaymentMethod.String()).
		KeyValue("Status", inv.Status)
	if inv.Customer.Name != "" {
		d.KeyValue("Customer", inv.Customer.Name)
	}
	d.Separator()

	// Items
	for _, item := range inv.Items {
		d.ItemLine(item.Name, item.Quantity, item.LineTotal.Format())
	}
	d.Separator()

	// Totals
	d.KeyValue("Subtotal", inv.SubTotal.Format()).
		SetBold(true).
		KeyValue("TOTAL", inv.GrandTotal.FormatRupees()).
		SetBold(false)

	if inv.IsPartiallyPaid() {
		d.KeyValue("Advance Paid", inv.AdvancePaid.Format()).
			SetBold(true).
			KeyValue("Balance Due", inv.BalanceDue.FormatRupees()).
			SetBold(false)
		if inv.DueDate != nil {
			d.KeyValue("Due By", inv.DueDate.Format("02 Jan 2006"))
		}
	}
	d.Separator()

	// Footer
	d.SetAlign(printer.AlignCenter).
		Text("Thank you for your business!").
		FeedLines(3).
		PartialCut()

	return d.Bytes()
}
