package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/money"
)

func TestCartService_AddFetchesLiveProduct(t *testing.T) {
	ctx := context.Background()
	chair := testProduct("Plastic Chair", 50, 10)
	svc := NewCartService(newMockProductRepo(chair))

	line, err := svc.Add(ctx, chair.ID)
	require.NoError(t, err)
	assert.Equal(t, chair.ID, line.ProductID)
	assert.Equal(t, "Plastic Chair", line.Name)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, money.FromRupees(50), line.LineTotal)
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	svc := NewCartService(newMockProductRepo())

	_, err := svc.Add(context.Background(), uuid.New())
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
	assert.Nil(t, svc.Snapshot())
}

func TestCartService_AddUnavailableProduct(t *testing.T) {
	tent := testProduct("Canopy Tent", 2000, 5)
	tent.IsAvailable = false
	svc := NewCartService(newMockProductRepo(tent))

	_, err := svc.Add(context.Background(), tent.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindOutOfStock))
}

func TestCartService_AddDifferentProductRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	chair := testProduct("Plastic Chair", 50, 10)
	table := testProduct("Round Table", 150, 4)
	svc := NewCartService(newMockProductRepo(chair, table))

	_, err := svc.Add(ctx, chair.ID)
	require.NoError(t, err)

	_, err = svc.Add(ctx, table.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindReplacementRequired))

	// Cart still holds the chair until the replacement is confirmed.
	line := svc.Snapshot()
	require.NotNil(t, line)
	assert.Equal(t, chair.ID, line.ProductID)

	line, err = svc.ConfirmReplace(ctx, table.ID)
	require.NoError(t, err)
	assert.Equal(t, table.ID, line.ProductID)
	assert.Equal(t, 1, line.Quantity)
}

func TestCartService_IncreaseBoundedByLiveStock(t *testing.T) {
	ctx := context.Background()
	chair := testProduct("Plastic Chair", 50, 2)
	repo := newMockProductRepo(chair)
	svc := NewCartService(repo)

	_, err := svc.Add(ctx, chair.ID)
	require.NoError(t, err)

	line, err := svc.Increase(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	_, err = svc.Increase(ctx)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStockLimitReached))
	assert.Equal(t, 2, svc.Snapshot().Quantity)
}

func TestCartService_IncreaseSeesAdminStockChange(t *testing.T) {
	ctx := context.Background()
	chair := testProduct("Plastic Chair", 50, 5)
	repo := newMockProductRepo(chair)
	svc := NewCartService(repo)

	_, err := svc.Add(ctx, chair.ID)
	require.NoError(t, err)

	// Stock drops after the item was added.
	repo.products[chair.ID].StockQuantity = 1

	_, err = svc.Increase(ctx)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStockLimitReached))
}

func TestCartService_IncreaseEmptyCart(t *testing.T) {
	svc := NewCartService(newMockProductRepo())

	_, err := svc.Increase(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindEmptyCart))
}

func TestCartService_Summary(t *testing.T) {
	ctx := context.Background()
	table := testProduct("Round Table", 150, 4)
	svc := NewCartService(newMockProductRepo(table))

	sum := svc.Summary()
	assert.Nil(t, sum.Line)
	assert.Equal(t, 0, sum.Units)
	assert.Equal(t, money.Paise(0), sum.Total)

	_, err := svc.Add(ctx, table.ID)
	require.NoError(t, err)
	_, err = svc.Increase(ctx)
	require.NoError(t, err)

	sum = svc.Summary()
	require.NotNil(t, sum.Line)
	assert.Equal(t, 2, sum.Units)
	assert.Equal(t, money.FromRupees(300), sum.Total)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	chair := testProduct("Plastic Chair", 50, 10)
	svc := NewCartService(newMockProductRepo(chair))

	_, err := svc.Add(ctx, chair.ID)
	require.NoError(t, err)

	svc.Remove()
	assert.Nil(t, svc.Snapshot())

	_, err = svc.Add(ctx, chair.ID)
	require.NoError(t, err)
	svc.Clear()
	assert.Nil(t, svc.Snapshot())
}
