package service

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/internal/domain/repository"
	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/money"
)

// CartService owns the session cart. Every stock-sensitive mutation re-reads
// the product so the cart never trusts a stale availability snapshot.
type CartService struct {
	mu          sync.Mutex
	cart        *entity.Cart
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service with an empty cart
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cart:        entity.NewCart(),
		productRepo: productRepo,
	}
}

// CartSummary reports the cart total and unit count
type CartSummary struct {
	Line  *entity.CartLine `json:"line,omitempty"`
	Units int              `json:"units"`
	Total money.Paise      `json:"-"`
}

// Add puts a product into the cart (or bumps its quantity when it is already
// there). A different product in the cart yields a REPLACEMENT_REQUIRED error;
// the caller confirms with ConfirmReplace.
func (s *CartService) Add(ctx context.Context, productID uuid.UUID) (*entity.CartLine, error) {
	product, err := s.fetchProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Add(product.ID, product.Name, product.PricePerHour, availableStock(product)); err != nil {
		return nil, err
	}
	return s.cart.Snapshot(), nil
}

// ConfirmReplace swaps the cart line for the given product after the user
// confirmed the replacement
func (s *CartService) ConfirmReplace(ctx context.Context, productID uuid.UUID) (*entity.CartLine, error) {
	product, err := s.fetchProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Replace(product.ID, product.Name, product.PricePerHour, availableStock(product)); err != nil {
		return nil, err
	}
	return s.cart.Snapshot(), nil
}

// Increase bumps the quantity of the current line by one, bounded by a fresh
// stock read
func (s *CartService) Increase(ctx context.Context) (*entity.CartLine, error) {
	s.mu.Lock()
	line := s.cart.Snapshot()
	s.mu.Unlock()
	if line == nil {
		return nil, apperror.NewKindError(http.StatusBadRequest, apperror.KindEmptyCart, "your cart is empty")
	}

	product, err := s.fetchProduct(ctx, line.ProductID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Increase(availableStock(product)); err != nil {
		return nil, err
	}
	return s.cart.Snapshot(), nil
}

// Remove empties the cart
func (s *CartService) Remove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove()
}

// Clear empties the cart
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Snapshot returns a copy of the current cart line (nil when empty)
func (s *CartService) Snapshot() *entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// Summary returns the cart line, unit count and total
func (s *CartService) Summary() *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &CartSummary{
		Line:  s.cart.Snapshot(),
		Units: s.cart.UnitCount(),
		Total: s.cart.Total(),
	}
}

func (s *CartService) fetchProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// availableStock treats an unavailable product as having no sellable stock
func availableStock(p *entity.Product) int {
	if !p.IsAvailable {
		return 0
	}
	return p.StockQuantity
}

// MarshalJSON converts the summary total to decimal rupees
func (s CartSummary) MarshalJSON() ([]byte, error) {
	type Alias CartSummary
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(s),
		Total: s.Total.Rupees(),
	})
}
