package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/money"
)

func cartLineFor(p *entity.Product, qty int) *entity.CartLine {
	return &entity.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.PricePerHour,
		Quantity:  qty,
		LineTotal: p.PricePerHour * money.Paise(qty),
	}
}

func TestStockValidator_Sufficient(t *testing.T) {
	chair := testProduct("Plastic Chair", 50, 5)
	v := NewStockValidator(newMockProductRepo(chair))

	err := v.Validate(context.Background(), cartLineFor(chair, 5))
	assert.NoError(t, err)
}

func TestStockValidator_Shortfall(t *testing.T) {
	chair := testProduct("Plastic Chair", 50, 3)
	v := NewStockValidator(newMockProductRepo(chair))

	err := v.Validate(context.Background(), cartLineFor(chair, 4))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))
	assert.Contains(t, err.Error(), "only 3 units of Plastic Chair are available, you requested 4")
}

func TestStockValidator_ProductDisabledAfterAdd(t *testing.T) {
	chair := testProduct("Plastic Chair", 50, 5)
	repo := newMockProductRepo(chair)
	v := NewStockValidator(repo)
	line := cartLineFor(chair, 2)

	repo.products[chair.ID].IsAvailable = false

	err := v.Validate(context.Background(), line)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientStock))
}

func TestStockValidator_ProductDeleted(t *testing.T) {
	chair := testProduct("Plastic Chair", 50, 5)
	v := NewStockValidator(newMockProductRepo())

	err := v.Validate(context.Background(), cartLineFor(chair, 1))
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestStockValidator_EmptyCart(t *testing.T) {
	v := NewStockValidator(newMockProductRepo())

	err := v.Validate(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindEmptyCart))
}

func TestStockValidator_UnknownLineProduct(t *testing.T) {
	v := NewStockValidator(newMockProductRepo())
	line := &entity.CartLine{ProductID: uuid.New(), Name: "Ghost", Quantity: 1}

	err := v.Validate(context.Background(), line)
	require.Error(t, err)
}
