package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravanan/rentify-api/internal/domain/enum"
	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/money"
)

func TestFullPaymentPlan(t *testing.T) {
	for _, total := range []float64{0.01, 500, 1500, 99999.99} {
		plan := FullPaymentPlan(money.FromRupees(total), enum.PaymentMethodCash)

		assert.Equal(t, enum.PaymentKindFull, plan.Kind)
		assert.Equal(t, money.FromRupees(total), plan.AdvanceAmount)
		assert.Equal(t, money.Paise(0), plan.BalanceAmount)
		assert.Nil(t, plan.DueDate)
		assert.False(t, plan.IsPartiallyPaid())
	}
}

func TestAdvancePaymentPlan(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)

	plan, err := AdvancePaymentPlan(money.FromRupees(1500), money.FromRupees(600), due, enum.PaymentMethodCash)

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentKindAdvance, plan.Kind)
	assert.Equal(t, money.FromRupees(600), plan.AdvanceAmount)
	assert.Equal(t, money.FromRupees(900), plan.BalanceAmount)
	require.NotNil(t, plan.DueDate)
	assert.True(t, plan.IsPartiallyPaid())
}

func TestAdvancePaymentPlanSplitClosure(t *testing.T) {
	due := time.Now().AddDate(0, 0, 1)
	totals := []float64{1500, 1250.50, 0.03, 100000}
	advances := []float64{0.01, 600, 1250.50}

	for _, total := range totals {
		for _, advance := range advances {
			if advance > total {
				continue
			}
			plan, err := AdvancePaymentPlan(money.FromRupees(total), money.FromRupees(advance), due, enum.PaymentMethodUPI)
			require.NoError(t, err)
			assert.Equal(t, plan.TotalAmount, plan.AdvanceAmount+plan.BalanceAmount)
		}
	}
}

func TestAdvancePaymentPlanFullAdvanceNeedsNoDueDate(t *testing.T) {
	// a past due date is fine when nothing remains due
	past := time.Now().AddDate(0, 0, -30)

	plan, err := AdvancePaymentPlan(money.FromRupees(1500), money.FromRupees(1500), past, enum.PaymentMethodCash)

	require.NoError(t, err)
	assert.Equal(t, money.Paise(0), plan.BalanceAmount)
	assert.Nil(t, plan.DueDate)
	assert.False(t, plan.IsPartiallyPaid())
}

func TestAdvancePaymentPlanInvalidAmount(t *testing.T) {
	due := time.Now().AddDate(0, 0, 7)
	tests := []struct {
		name    string
		advance float64
	}{
		{"zero", 0},
		{"negative", -100},
		{"exceeds total", 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AdvancePaymentPlan(money.FromRupees(1500), money.FromRupees(tt.advance), due, enum.PaymentMethodCash)
			require.Error(t, err)
			assert.True(t, apperror.IsKind(err, apperror.KindInvalidAmount))
		})
	}
}

func TestAdvancePaymentPlanPastDueDate(t *testing.T) {
	past := time.Now().AddDate(0, 0, -1)

	_, err := AdvancePaymentPlan(money.FromRupees(1500), money.FromRupees(600), past, enum.PaymentMethodCash)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidDueDate))
}

func TestAdvancePaymentPlanDueToday(t *testing.T) {
	// "today" is a valid due date for the remaining balance
	plan, err := AdvancePaymentPlan(money.FromRupees(1500), money.FromRupees(600), time.Now(), enum.PaymentMethodCash)

	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(900), plan.BalanceAmount)
}

func TestCustomerIdentityValidate(t *testing.T) {
	valid := &CustomerIdentity{Name: "Arun", Address: "12 Temple Road"}
	require.NoError(t, valid.Validate())

	missing := &CustomerIdentity{Name: " ", Address: ""}
	err := missing.Validate()
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindMissingRequiredField))
	appErr := apperror.GetAppError(err)
	assert.Len(t, appErr.Errors, 2)
}

func TestCustomerIdentityFallbacks(t *testing.T) {
	c := &CustomerIdentity{Name: "Arun", Address: "12 Temple Road"}
	assert.Equal(t, "Not provided", c.PhoneOrFallback())
	assert.Equal(t, "Not provided", c.EmailOrFallback())

	c.Phone = "+91 98000 00000"
	c.Email = "arun@example.com"
	assert.Equal(t, "+91 98000 00000", c.PhoneOrFallback())
	assert.Equal(t, "arun@example.com", c.EmailOrFallback())
}
