package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravanan/rentify-api/pkg/apperror"
)

func TestProductService_SetStock(t *testing.T) {
	product := testProduct("Folding Table", 200, 4)
	repo := newMockProductRepo(product)
	svc := NewProductService(repo)

	updated, err := svc.SetStock(context.Background(), product.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.StockQuantity)
	assert.Equal(t, 9, repo.products[product.ID].StockQuantity)
}

func TestProductService_SetStockNegativeQuantity(t *testing.T) {
	product := testProduct("Folding Table", 200, 4)
	repo := newMockProductRepo(product)
	svc := NewProductService(repo)

	_, err := svc.SetStock(context.Background(), product.ID, -1)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, 4, repo.products[product.ID].StockQuantity)
}

func TestProductService_SetStockUnknownProduct(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo)

	_, err := svc.SetStock(context.Background(), uuid.New(), 5)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
