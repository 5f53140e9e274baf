package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	domainRepo "github.com/saravanan/rentify-api/internal/domain/repository"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact info repository
func NewContactRepository(db *gorm.DB) domainRepo.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetLatest(ctx context.Context) (*entity.ContactInfo, error) {
	var info entity.ContactInfo
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &info, err
}

func (r *contactRepository) Create(ctx context.Context, info *entity.ContactInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ContactInfo{}).Count(&count).Error
	return count, err
}
