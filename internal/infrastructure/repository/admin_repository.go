package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	domainRepo "github.com/saravanan/rentify-api/internal/domain/repository"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin account repository
func NewAdminRepository(db *gorm.DB) domainRepo.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	var user entity.AdminUser
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *adminRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.AdminUser{}).Count(&count).Error
	return count, err
}
