package entity

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/saravanan/rentify-api/internal/domain/enum"
	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/money"
)

// PaymentPlan is the full/advance split chosen for a single checkout attempt.
// It is created fresh per attempt and never persisted.
// Invariants: AdvanceAmount + BalanceAmount == TotalAmount, and a Full plan
// always has a zero balance.
type PaymentPlan struct {
	Kind          enum.PaymentKind   `json:"kind"`
	Method        enum.PaymentMethod `json:"method"`
	TotalAmount   money.Paise        `json:"-"`
	AdvanceAmount money.Paise        `json:"-"`
	BalanceAmount money.Paise        `json:"-"`
	DueDate       *time.Time         `json:"due_date,omitempty"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (p PaymentPlan) MarshalJSON() ([]byte, error) {
	type Alias PaymentPlan
	return json.Marshal(&struct {
		Alias
		TotalAmount   float64 `json:"total_amount"`
		AdvanceAmount float64 `json:"advance_amount"`
		BalanceAmount float64 `json:"balance_amount"`
	}{
		Alias:         Alias(p),
		TotalAmount:   p.TotalAmount.Rupees(),
		AdvanceAmount: p.AdvanceAmount.Rupees(),
		BalanceAmount: p.BalanceAmount.Rupees(),
	})
}

// FullPaymentPlan builds a plan that settles the whole total up front
func FullPaymentPlan(total money.Paise, method enum.PaymentMethod) *PaymentPlan {
	return &PaymentPlan{
		Kind:          enum.PaymentKindFull,
		Method:        method,
		TotalAmount:   total,
		AdvanceAmount: total,
		BalanceAmount: 0,
	}
}

// AdvancePaymentPlan builds a plan where advance is paid now and the balance
// is due by dueDate. The advance must be positive and no more than the total;
// when a balance remains the due date must not be in the past.
func AdvancePaymentPlan(total, advance money.Paise, dueDate time.Time, method enum.PaymentMethod) (*PaymentPlan, error) {
	if advance <= 0 {
		return nil, apperror.NewKindError(http.StatusUnprocessableEntity, apperror.KindInvalidAmount,
			fmt.Sprintf("advance amount %s must be greater than 0", advance.Format()))
	}
	if advance > total {
		return nil, apperror.NewKindError(http.StatusUnprocessableEntity, apperror.KindInvalidAmount,
			fmt.Sprintf("advance amount %s exceeds the total %s", advance.Format(), total.Format()))
	}

	balance := total - advance
	plan := &PaymentPlan{
		Kind:          enum.PaymentKindAdvance,
		Method:        method,
		TotalAmount:   total,
		AdvanceAmount: advance,
		BalanceAmount: balance,
	}

	if balance > 0 {
		today := truncateToDay(time.Now())
		if truncateToDay(dueDate).Before(today) {
			return nil, apperror.NewKindError(http.StatusUnprocessableEntity, apperror.KindInvalidDueDate,
				fmt.Sprintf("due date %s is in the past", dueDate.Format("02 Jan 2006")))
		}
		due := dueDate
		plan.DueDate = &due
	}

	return plan, nil
}

// IsPartiallyPaid reports whether a balance remains after the advance
func (p *PaymentPlan) IsPartiallyPaid() bool {
	return p.Kind == enum.PaymentKindAdvance && p.BalanceAmount > 0
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
