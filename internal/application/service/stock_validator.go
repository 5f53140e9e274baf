package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/internal/domain/repository"
	"github.com/saravanan/rentify-api/pkg/apperror"
)

// StockValidator re-checks live inventory counts immediately before a sale is
// committed. The stock snapshot captured when the item was added may be stale
// by checkout time (an administrator may have edited the product), so the
// cart quantity is compared against a fresh read.
type StockValidator struct {
	productRepo repository.ProductRepository
}

// NewStockValidator creates a new stock validator
func NewStockValidator(productRepo repository.ProductRepository) *StockValidator {
	return &StockValidator{productRepo: productRepo}
}

// Validate returns nil when the cart line can be fulfilled from current
// stock, or an INSUFFICIENT_STOCK error naming the shortfall.
func (v *StockValidator) Validate(ctx context.Context, line *entity.CartLine) error {
	if line == nil {
		return apperror.NewKindError(http.StatusBadRequest, apperror.KindEmptyCart, "your cart is empty")
	}

	product, err := v.productRepo.GetByID(ctx, line.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product " + line.Name)
	}

	available := availableStock(product)
	if line.Quantity > available {
		return apperror.NewKindError(http.StatusConflict, apperror.KindInsufficientStock,
			fmt.Sprintf("only %d units of %s are available, you requested %d", available, product.Name, line.Quantity))
	}
	return nil
}
