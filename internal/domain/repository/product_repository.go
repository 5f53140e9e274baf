package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/saravanan/rentify-api/internal/domain/entity"
)

// ProductRepository defines the interface for inventory data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// List returns all products, newest first
	List(ctx context.Context) ([]entity.Product, error)
	// ListAvailable returns products that can be rented (available, in stock)
	ListAvailable(ctx context.Context) ([]entity.Product, error)
	// Search matches a case-insensitive substring against name or description
	Search(ctx context.Context, text string) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	// UpdateStock sets the absolute stock quantity for a product
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error
	// AtomicDecrementStock decrements stock only if sufficient quantity exists.
	// Uses a single conditional UPDATE so a future multi-session deployment
	// gets real locking without changing the call shape.
	// Returns (true, nil) if successful, (false, nil) if insufficient stock,
	// (false, err) on error.
	AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error)
}
