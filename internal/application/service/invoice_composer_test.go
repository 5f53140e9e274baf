package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/internal/domain/enum"
	"github.com/saravanan/rentify-api/pkg/money"
)

var testContact = &entity.ContactInfo{
	Phone:   "+91 12345 67890",
	Email:   "support@premiumstore.com",
	Address: "123 Business Street, City, State 123456",
}

func TestComposeInvoice_FullPayment(t *testing.T) {
	chair := testProduct("Plastic Chair", 50, 10)
	line := cartLineFor(chair, 3)
	plan := entity.FullPaymentPlan(line.LineTotal, enum.PaymentMethodCash)
	issuedAt := time.Date(2026, 8, 30, 14, 25, 1, 0, time.Local)

	inv := ComposeInvoice(line, plan, testCustomer(), testContact, "Baskaran Events", issuedAt)

	assert.Equal(t, "INV-20260830-142501", inv.InvoiceNo)
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, enum.PaymentMethodCash, inv.PaymentMethod)
	assert.Nil(t, inv.DueDate)

	assert.Equal(t, "Baskaran Events", inv.Header.StoreName)
	assert.Equal(t, testContact.Address, inv.Header.Address)
	assert.Equal(t, testContact.Phone, inv.Header.Phone)

	require.Len(t, inv.Items, 1)
	item := inv.Items[0]
	assert.Equal(t, 1, item.Index)
	assert.Equal(t, "Plastic Chair", item.Name)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, money.FromRupees(50), item.UnitPrice)
	assert.Equal(t, money.FromRupees(150), item.LineTotal)

	// No tax line, so the subtotal and the grand total agree.
	assert.Equal(t, inv.SubTotal, inv.GrandTotal)
	assert.Equal(t, money.FromRupees(150), inv.GrandTotal)
	assert.Equal(t, "One Hundred Fifty Rupees only", inv.AmountInWords)
	assert.Empty(t, inv.BalanceNote)
}

func TestComposeInvoice_AdvancePayment(t *testing.T) {
	table := testProduct("Round Table", 500, 5)
	line := cartLineFor(table, 3)
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	plan, err := entity.AdvancePaymentPlan(line.LineTotal, money.FromRupees(600), due, enum.PaymentMethodUPI)
	require.NoError(t, err)
	issuedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)

	inv := ComposeInvoice(line, plan, testCustomer(), testContact, "Baskaran Events", issuedAt)

	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, inv.Status)
	require.NotNil(t, inv.DueDate)
	assert.Equal(t, due, *inv.DueDate)
	assert.Equal(t, money.FromRupees(600), inv.AdvancePaid)
	assert.Equal(t, money.FromRupees(900), inv.BalanceDue)
	assert.Equal(t, money.FromRupees(1500), inv.GrandTotal)

	// Words spell the advance, not the grand total.
	assert.Equal(t, "Six Hundred Rupees only", inv.AmountInWords)
	assert.Equal(t, "Balance due: Rs.900.00 to be paid by 15 Sep 2026", inv.BalanceNote)
}

func TestComposeInvoice_FullAdvanceIsPaid(t *testing.T) {
	chair := testProduct("Plastic Chair", 50, 10)
	line := cartLineFor(chair, 2)
	plan, err := entity.AdvancePaymentPlan(line.LineTotal, line.LineTotal, time.Time{}, enum.PaymentMethodCash)
	require.NoError(t, err)

	inv := ComposeInvoice(line, plan, testCustomer(), testContact, "Baskaran Events", time.Now())

	// Advance covering the whole amount settles the invoice.
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, money.Paise(0), inv.BalanceDue)
	assert.Empty(t, inv.BalanceNote)
}

func TestComposeInvoice_UnitPriceRecoveredFromLineTotal(t *testing.T) {
	chair := testProduct("Plastic Chair", 33.33, 10)
	line := cartLineFor(chair, 3)
	plan := entity.FullPaymentPlan(line.LineTotal, enum.PaymentMethodCash)

	inv := ComposeInvoice(line, plan, testCustomer(), testContact, "Baskaran Events", time.Now())

	assert.Equal(t, line.LineTotal/3, inv.Items[0].UnitPrice)
}

func TestComposeInvoice_CustomerFallbacks(t *testing.T) {
	chair := testProduct("Plastic Chair", 50, 10)
	line := cartLineFor(chair, 1)
	plan := entity.FullPaymentPlan(line.LineTotal, enum.PaymentMethodCash)
	customer := &entity.CustomerIdentity{Name: "Arjun Kumar", Address: "42 Temple Road"}

	inv := ComposeInvoice(line, plan, customer, testContact, "Baskaran Events", time.Now())

	assert.Equal(t, "Not provided", inv.Customer.PhoneOrFallback())
	assert.Equal(t, "Not provided", inv.Customer.EmailOrFallback())
}
