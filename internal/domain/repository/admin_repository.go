package repository

import (
	"context"

	"github.com/saravanan/rentify-api/internal/domain/entity"
)

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	Create(ctx context.Context, user *entity.AdminUser) error
	Count(ctx context.Context) (int64, error)
}
