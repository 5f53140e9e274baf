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

type recordingDevice struct {
	data      []byte
	connected bool
}

func (d *recordingDevice) Print(data []byte) error {
	d.data = data
	return nil
}

func (d *recordingDevice) IsConnected() bool {
	return d.connected
}

func receiptInvoice(t *testing.T, advance bool) *entity.InvoiceContent {
	t.Helper()
	table := testProduct("Round Table", 500, 5)
	line := cartLineFor(table, 3)

	var plan *entity.PaymentPlan
	if advance {
		p, err := entity.AdvancePaymentPlan(line.LineTotal, money.FromRupees(600), futureDate(7), enum.PaymentMethodUPI)
		require.NoError(t, err)
		plan = p
	} else {
		plan = entity.FullPaymentPlan(line.LineTotal, enum.PaymentMethodCash)
	}
	return ComposeInvoice(line, plan, testCustomer(), testContact, "Baskaran Events", time.Now())
}

func TestFormatInvoiceReceipt(t *testing.T) {
	data := string(FormatInvoiceReceipt(receiptInvoice(t, false)))

	assert.Contains(t, data, "Baskaran Events")
	assert.Contains(t, data, "Round Table")
	assert.Contains(t, data, "x3 1,500.00")
	assert.Contains(t, data, "Rs.1,500.00")
	assert.Contains(t, data, "Paid")
	assert.NotContains(t, data, "Balance Due")
}

func TestFormatInvoiceReceipt_Advance(t *testing.T) {
	data := string(FormatInvoiceReceipt(receiptInvoice(t, true)))

	assert.Contains(t, data, "Partially Paid")
	assert.Contains(t, data, "Advance Paid")
	assert.Contains(t, data, "600.00")
	assert.Contains(t, data, "Balance Due")
	assert.Contains(t, data, "Rs.900.00")
	assert.Contains(t, data, "Due By")
}

func TestEscposReceiptPrinter(t *testing.T) {
	inv := receiptInvoice(t, false)

	device := &recordingDevice{connected: true}
	p := NewEscposReceiptPrinter(device)
	require.NoError(t, p.PrintInvoice(inv))
	assert.NotEmpty(t, device.data)

	device.connected = false
	err := p.PrintInvoice(inv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}
