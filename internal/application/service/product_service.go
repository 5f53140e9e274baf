package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/internal/domain/repository"
	"github.com/saravanan/rentify-api/pkg/apperror"
)

// ProductService handles inventory browsing and the admin CRUD surface
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name          string
	Description   string
	PricePerHour  float64
	StockQuantity int
	IsAvailable   bool
}

// UpdateProductInput represents the update product input; nil fields are
// left unchanged
type UpdateProductInput struct {
	Name          *string
	Description   *string
	PricePerHour  *float64
	StockQuantity *int
	IsAvailable   *bool
	ImagePath     *string
}

// Create adds a new product to the inventory
func (s *ProductService) Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("product name is required")
	}
	if input.PricePerHour < 0 {
		return nil, apperror.NewBadRequestError("price per hour cannot be negative")
	}
	if input.StockQuantity < 0 {
		return nil, apperror.NewBadRequestError("stock quantity cannot be negative")
	}

	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		StockQuantity: input.StockQuantity,
		IsAvailable:   input.IsAvailable,
	}
	product.SetPriceFromDecimal(input.PricePerHour)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns a single product
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// List returns every product, newest first (admin view)
func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// ListAvailable returns products the storefront shows
func (s *ProductService) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListAvailable(ctx)
}

// Search matches a case-insensitive substring against product names and
// descriptions. An empty query behaves like List.
func (s *ProductService) Search(ctx context.Context, text string) ([]entity.Product, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.productRepo.List(ctx)
	}
	return s.productRepo.Search(ctx, text)
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewBadRequestError("product name cannot be empty")
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.PricePerHour != nil {
		if *input.PricePerHour < 0 {
			return nil, apperror.NewBadRequestError("price per hour cannot be negative")
		}
		product.SetPriceFromDecimal(*input.PricePerHour)
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return nil, apperror.NewBadRequestError("stock quantity cannot be negative")
		}
		product.StockQuantity = *input.StockQuantity
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	if input.ImagePath != nil {
		product.ImagePath = input.ImagePath
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetStock sets the absolute stock quantity for a product
func (s *ProductService) SetStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, apperror.NewBadRequestError("stock quantity cannot be negative")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.productRepo.UpdateStock(ctx, id, quantity); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a product from the inventory
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// Count returns the number of products in the inventory
func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.productRepo.Count(ctx)
}
