package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/pkg/email"
)

// SMTPInvoiceMailer emails a summary of the invoice to the customer.
type SMTPInvoiceMailer struct {
	sender email.Sender
}

func NewSMTPInvoiceMailer(sender email.Sender) *SMTPInvoiceMailer {
	return &SMTPInvoiceMailer{sender: sender}
}

// SendInvoice sends the invoice summary to the customer's email address.
func (m *SMTPInvoiceMailer) SendInvoice(to string, inv *entity.InvoiceContent, artifactPath string) error {
	if to == "" {
		return fmt.Errorf("mailer: recipient email is empty")
	}
	subject := fmt.Sprintf("Invoice %s from %s", inv.InvoiceNo, inv.Header.StoreName)
	return m.sender.Send(to, subject, buildInvoiceEmail(inv))
}

func buildInvoiceEmail(inv *entity.InvoiceContent) string {
	var b strings.Builder
	b.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	b.WriteString(fmt.Sprintf("<h2>%s</h2>", html.EscapeString(inv.Header.StoreName)))
	b.WriteString(fmt.Sprintf("<p>Dear %s,</p>", html.EscapeString(inv.Customer.Name)))
	b.WriteString("<p>Thank you for your order. Please find your invoice details below.</p>")

	b.WriteString("<table cellpadding=\"6\" style=\"border-collapse: collapse;\">")
	writeRow(&b, "Invoice No", inv.InvoiceNo)
	writeRow(&b, "Date", inv.IssuedAt.Format("02 Jan 2006 15:04"))
	writeRow(&b, "Payment Method", inv.PaymentMethod.String())
	writeRow(&b, "Status", inv.Status)
	b.WriteString("</table>")

	b.WriteString("<table cellpadding=\"6\" border=\"1\" style=\"border-collapse: collapse; margin-top: 12px;\">")
	b.WriteString("<tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr>")
	for _, item := range inv.Items {
		b.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(item.Name), item.Quantity,
			item.UnitPrice.FormatRupees(), item.LineTotal.FormatRupees(),
		))
	}
	b.WriteString(fmt.Sprintf(
		"<tr><td colspan=\"3\"><b>Grand Total</b></td><td><b>%s</b></td></tr>",
		inv.GrandTotal.FormatRupees(),
	))
	if inv.IsPartiallyPaid() {
		b.WriteString(fmt.Sprintf(
			"<tr><td colspan=\"3\">Advance Paid</td><td>%s</td></tr>",
			inv.AdvancePaid.FormatRupees(),
		))
		b.WriteString(fmt.Sprintf(
			"<tr><td colspan=\"3\"><b>Balance Due</b></td><td><b>%s</b></td></tr>",
			inv.BalanceDue.FormatRupees(),
		))
	}
	b.WriteString("</table>")

	b.WriteString(fmt.Sprintf("<p><i>%s</i></p>", html.EscapeString(inv.AmountInWords)))
	if inv.BalanceNote != "" {
		b.WriteString(fmt.Sprintf("<p><b>%s</b></p>", html.EscapeString(inv.BalanceNote)))
	}
	b.WriteString("<p>Regards,<br>")
	b.WriteString(html.EscapeString(inv.Header.StoreName))
	b.WriteString("</p>")
	b.WriteString("</body></html>")
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf(
		"<tr><td><b>%s</b></td><td>%s</td></tr>",
		label, html.EscapeString(value),
	))
}
