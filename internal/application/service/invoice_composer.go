package service

import (
	"fmt"
	"time"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/pkg/money"
	"github.com/saravanan/rentify-api/pkg/numword"
)

// invoiceNoPrefix + second-resolution timestamp gives invoice numbers like
// INV-20260830-142501. Two checkouts inside the same second would collide;
// acceptable for a single-cashier terminal.
const invoiceNoPrefix = "INV-"

// ComposeInvoice derives the renderer-agnostic invoice content from the cart
// line, payment plan, customer identity and store contact block. It is a pure
// function: issuedAt is passed in so callers (and tests) control the clock.
func ComposeInvoice(
	line *entity.CartLine,
	plan *entity.PaymentPlan,
	customer *entity.CustomerIdentity,
	contact *entity.ContactInfo,
	storeName string,
	issuedAt time.Time,
) *entity.InvoiceContent {
	// recover the per-unit price from the aggregated line total
	unitPrice := line.LineTotal
	if line.Quantity > 0 {
		unitPrice = line.LineTotal / money.Paise(line.Quantity)
	}

	content := &entity.InvoiceContent{
		InvoiceNo:     invoiceNoPrefix + issuedAt.Format("20060102-150405"),
		IssuedAt:      issuedAt,
		PaymentMethod: plan.Method,
		Header: entity.InvoiceHeader{
			StoreName: storeName,
			Address:   contact.Address,
			Phone:     contact.Phone,
			Email:     contact.Email,
		},
		Customer: *customer,
		Items: []entity.InvoiceItem{
			{
				Index:     1,
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
				LineTotal: line.LineTotal,
			},
		},
		SubTotal:   line.LineTotal,
		GrandTotal: line.LineTotal, // no tax line
	}

	if plan.IsPartiallyPaid() {
		content.Status = entity.InvoiceStatusPartiallyPaid
		content.DueDate = plan.DueDate
		content.AdvancePaid = plan.AdvanceAmount
		content.BalanceDue = plan.BalanceAmount
		content.AmountInWords = numword.AmountInWords(plan.AdvanceAmount) + " only"
		content.BalanceNote = fmt.Sprintf("Balance due: Rs.%s to be paid by %s",
			plan.BalanceAmount.Format(), dueDateString(plan.DueDate))
	} else {
		content.Status = entity.InvoiceStatusPaid
		content.AmountInWords = numword.AmountInWords(content.GrandTotal) + " only"
	}

	return content
}

func dueDateString(due *time.Time) string {
	if due == nil {
		return "due date"
	}
	return due.Format("02 Jan 2006")
}
