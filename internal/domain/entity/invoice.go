package entity

import (
	"encoding/json"
	"time"

	"github.com/saravanan/rentify-api/internal/domain/enum"
	"github.com/saravanan/rentify-api/pkg/money"
)

// Payment status labels shown on the invoice
const (
	InvoiceStatusPaid          = "Paid"
	InvoiceStatusPartiallyPaid = "Partially Paid"
)

// InvoiceHeader holds the store block printed at the top of an invoice
type InvoiceHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// InvoiceItem is a single line item row on an invoice
type InvoiceItem struct {
	Index     int         `json:"index"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Paise `json:"-"`
	LineTotal money.Paise `json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (i InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(i),
		UnitPrice: i.UnitPrice.Rupees(),
		LineTotal: i.LineTotal.Rupees(),
	})
}

// InvoiceContent is the renderer-agnostic description of a sale. It is NOT a
// database entity — it is composed once per checkout, handed to a renderer,
// and discarded.
type InvoiceContent struct {
	InvoiceNo     string             `json:"invoice_no"`
	IssuedAt      time.Time          `json:"issued_at"`
	Status        string             `json:"status"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	DueDate       *time.Time         `json:"due_date,omitempty"`

	Header   InvoiceHeader    `json:"header"`
	Customer CustomerIdentity `json:"customer"`
	Items    []InvoiceItem    `json:"items"`

	SubTotal   money.Paise `json:"-"`
	GrandTotal money.Paise `json:"-"`

	// Set only for partially paid invoices
	AdvancePaid money.Paise `json:"-"`
	BalanceDue  money.Paise `json:"-"`

	// AmountInWords spells out the grand total, or the advance for partially
	// paid invoices; BalanceNote is the balance-due reminder sentence.
	AmountInWords string `json:"amount_in_words"`
	BalanceNote   string `json:"balance_note,omitempty"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (c InvoiceContent) MarshalJSON() ([]byte, error) {
	type Alias InvoiceContent
	return json.Marshal(&struct {
		Alias
		SubTotal    float64 `json:"sub_total"`
		GrandTotal  float64 `json:"grand_total"`
		AdvancePaid float64 `json:"advance_paid"`
		BalanceDue  float64 `json:"balance_due"`
	}{
		Alias:       Alias(c),
		SubTotal:    c.SubTotal.Rupees(),
		GrandTotal:  c.GrandTotal.Rupees(),
		AdvancePaid: c.AdvancePaid.Rupees(),
		BalanceDue:  c.BalanceDue.Rupees(),
	})
}

// IsPartiallyPaid reports whether the invoice carries advance/balance rows
func (c *InvoiceContent) IsPartiallyPaid() bool {
	return c.Status == InvoiceStatusPartiallyPaid
}
