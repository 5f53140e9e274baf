package repository

import (
	"context"

	"github.com/saravanan/rentify-api/internal/domain/entity"
)

// ContactRepository defines the interface for store contact info operations
type ContactRepository interface {
	// GetLatest returns the most recently written contact info row
	GetLatest(ctx context.Context) (*entity.ContactInfo, error)
	// Create appends a new contact info row (updates keep history)
	Create(ctx context.Context, info *entity.ContactInfo) error
	Count(ctx context.Context) (int64, error)
}
