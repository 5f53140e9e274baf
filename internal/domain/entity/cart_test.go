package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/money"
)

func TestCartAddToEmpty(t *testing.T) {
	cart := NewCart()
	id := uuid.New()

	require.NoError(t, cart.Add(id, "Sound System", money.FromRupees(500), 3))

	line := cart.Snapshot()
	require.NotNil(t, line)
	assert.Equal(t, id, line.ProductID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, money.FromRupees(500), line.LineTotal)
}

func TestCartAddOutOfStock(t *testing.T) {
	cart := NewCart()

	err := cart.Add(uuid.New(), "Sound System", money.FromRupees(500), 0)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindOutOfStock))
	assert.True(t, cart.IsEmpty())
}

func TestCartAddSameProductIncreases(t *testing.T) {
	cart := NewCart()
	id := uuid.New()

	require.NoError(t, cart.Add(id, "Sound System", money.FromRupees(500), 3))
	require.NoError(t, cart.Add(id, "Sound System", money.FromRupees(500), 3))

	line := cart.Snapshot()
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, money.FromRupees(1000), line.LineTotal)
}

func TestCartAddDifferentProductRequiresConfirmation(t *testing.T) {
	cart := NewCart()
	first := uuid.New()
	require.NoError(t, cart.Add(first, "Sound System", money.FromRupees(500), 3))

	err := cart.Add(uuid.New(), "Projector", money.FromRupees(800), 5)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindReplacementRequired))
	assert.Contains(t, err.Error(), "Sound System")
	assert.Contains(t, err.Error(), "Projector")

	// the cart is untouched until the caller confirms
	line := cart.Snapshot()
	assert.Equal(t, first, line.ProductID)
	assert.Equal(t, 1, line.Quantity)
}

func TestCartReplace(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(uuid.New(), "Sound System", money.FromRupees(500), 3))

	second := uuid.New()
	require.NoError(t, cart.Replace(second, "Projector", money.FromRupees(800), 5))

	line := cart.Snapshot()
	assert.Equal(t, second, line.ProductID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, money.FromRupees(800), line.LineTotal)
}

func TestCartReplaceOutOfStock(t *testing.T) {
	cart := NewCart()
	first := uuid.New()
	require.NoError(t, cart.Add(first, "Sound System", money.FromRupees(500), 3))

	err := cart.Replace(uuid.New(), "Projector", money.FromRupees(800), 0)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindOutOfStock))
	assert.Equal(t, first, cart.Snapshot().ProductID)
}

func TestCartIncreaseStopsAtStockLimit(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(uuid.New(), "Sound System", money.FromRupees(500), 3))
	require.NoError(t, cart.Increase(3))
	require.NoError(t, cart.Increase(3))

	err := cart.Increase(3)

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStockLimitReached))
	assert.Contains(t, err.Error(), "only 3 units")

	// repeated attempts at the boundary leave the quantity unchanged
	require.Error(t, cart.Increase(3))
	assert.Equal(t, 3, cart.Snapshot().Quantity)
}

func TestCartIncreaseEmpty(t *testing.T) {
	cart := NewCart()
	err := cart.Increase(5)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindEmptyCart))
}

func TestCartLineTotalConsistency(t *testing.T) {
	cart := NewCart()
	id := uuid.New()
	price := money.FromRupees(499.99)
	require.NoError(t, cart.Add(id, "Sound System", price, 10))

	for i := 0; i < 9; i++ {
		require.NoError(t, cart.Increase(10))
		line := cart.Snapshot()
		assert.Equal(t, price*money.Paise(line.Quantity), line.LineTotal)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(uuid.New(), "Sound System", money.FromRupees(500), 3))

	cart.Remove()
	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.Snapshot())
	assert.Equal(t, money.Paise(0), cart.Total())
	assert.Equal(t, 0, cart.UnitCount())

	// no-op on an empty cart
	cart.Remove()
	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartSnapshotIsACopy(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(uuid.New(), "Sound System", money.FromRupees(500), 3))

	line := cart.Snapshot()
	line.Quantity = 99

	assert.Equal(t, 1, cart.Snapshot().Quantity)
}

// The walkthrough from the product brief: price 500, stock 3.
func TestCartScenario(t *testing.T) {
	cart := NewCart()
	id := uuid.New()

	require.NoError(t, cart.Add(id, "P", money.FromRupees(500), 3))
	assert.Equal(t, money.FromRupees(500), cart.Total())

	require.NoError(t, cart.Increase(3))
	require.NoError(t, cart.Increase(3))
	assert.Equal(t, 3, cart.UnitCount())
	assert.Equal(t, money.FromRupees(1500), cart.Total())

	err := cart.Increase(3)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStockLimitReached))
	assert.Equal(t, 3, cart.UnitCount())
	assert.Equal(t, money.FromRupees(1500), cart.Total())
}
