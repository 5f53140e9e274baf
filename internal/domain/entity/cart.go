package entity

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/money"
)

// CartLine is the single active product selection in a cart.
// UnitPrice is captured when the line is created and never changes for the
// life of the line; LineTotal is kept equal to UnitPrice * Quantity on every
// mutation.
type CartLine struct {
	ProductID uuid.UUID   `json:"product_id"`
	Name      string      `json:"name"`
	UnitPrice money.Paise `json:"-"`
	Quantity  int         `json:"quantity"`
	LineTotal money.Paise `json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (l CartLine) MarshalJSON() ([]byte, error) {
	type Alias CartLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(l),
		UnitPrice: l.UnitPrice.Rupees(),
		LineTotal: l.LineTotal.Rupees(),
	})
}

// Cart holds at most one product line at a time: one product type, any
// quantity of it. It is a value object, never persisted.
type Cart struct {
	line *CartLine
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Add puts a product into the cart.
//
// An empty cart gets a fresh line with quantity 1. Adding the product already
// in the cart increases its quantity (bounded by availableStock). Adding a
// different product does not mutate anything; it fails with a
// REPLACEMENT_REQUIRED error naming both lines so the caller can ask for
// confirmation and then call Replace.
func (c *Cart) Add(productID uuid.UUID, name string, unitPrice money.Paise, availableStock int) error {
	if c.line == nil {
		if availableStock <= 0 {
			return errOutOfStock(name)
		}
		c.line = &CartLine{
			ProductID: productID,
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  1,
			LineTotal: unitPrice,
		}
		return nil
	}

	if c.line.ProductID == productID {
		return c.Increase(availableStock)
	}

	return apperror.NewKindError(http.StatusConflict, apperror.KindReplacementRequired,
		fmt.Sprintf("your cart already contains '%s'; confirm to replace it with '%s'", c.line.Name, name))
}

// Increase raises the line quantity by one. The caller supplies the current
// stock level from a fresh inventory read; the quantity never exceeds it.
func (c *Cart) Increase(availableStock int) error {
	if c.line == nil {
		return apperror.NewKindError(http.StatusBadRequest, apperror.KindEmptyCart, "your cart is empty")
	}
	if c.line.Quantity+1 > availableStock {
		return apperror.NewKindError(http.StatusConflict, apperror.KindStockLimitReached,
			fmt.Sprintf("only %d units of %s are available in stock", availableStock, c.line.Name))
	}
	c.line.Quantity++
	c.line.LineTotal = c.line.UnitPrice * money.Paise(c.line.Quantity)
	return nil
}

// Replace discards the current line and starts a fresh one with quantity 1.
// Called after the user confirms a REPLACEMENT_REQUIRED result.
func (c *Cart) Replace(productID uuid.UUID, name string, unitPrice money.Paise, availableStock int) error {
	if availableStock <= 0 {
		return errOutOfStock(name)
	}
	c.line = &CartLine{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
		LineTotal: unitPrice,
	}
	return nil
}

// Remove empties the cart. A no-op when already empty.
func (c *Cart) Remove() {
	c.line = nil
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.line = nil
}

// IsEmpty reports whether the cart has no line
func (c *Cart) IsEmpty() bool {
	return c.line == nil
}

// Snapshot returns a copy of the current line, or nil for an empty cart.
// Mutating the returned value does not affect the cart.
func (c *Cart) Snapshot() *CartLine {
	if c.line == nil {
		return nil
	}
	line := *c.line
	return &line
}

// Total returns the cart total (the single line's total, or zero)
func (c *Cart) Total() money.Paise {
	if c.line == nil {
		return 0
	}
	return c.line.LineTotal
}

// UnitCount returns the number of units in the cart
func (c *Cart) UnitCount() int {
	if c.line == nil {
		return 0
	}
	return c.line.Quantity
}

func errOutOfStock(name string) *apperror.AppError {
	return apperror.NewKindError(http.StatusConflict, apperror.KindOutOfStock,
		fmt.Sprintf("sorry, %s is out of stock", name))
}
