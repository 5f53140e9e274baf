package service

import (
	"context"
	"strings"

	"github.com/saravanan/rentify-api/internal/domain/entity"
	"github.com/saravanan/rentify-api/internal/domain/repository"
	"github.com/saravanan/rentify-api/pkg/apperror"
)

// ContactService handles the store contact info shown on invoices
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Get returns the current contact info, falling back to the seeded defaults
// when the table is empty
func (s *ContactService) Get(ctx context.Context) (*entity.ContactInfo, error) {
	info, err := s.contactRepo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return defaultContactInfo(), nil
	}
	return info, nil
}

// UpdateContactInput represents the contact info update input
type UpdateContactInput struct {
	Phone   string
	Email   string
	Address string
}

// Update records new contact info. Each update is a fresh row; earlier
// values stay behind as history.
func (s *ContactService) Update(ctx context.Context, input *UpdateContactInput) (*entity.ContactInfo, error) {
	if strings.TrimSpace(input.Address) == "" {
		return nil, apperror.NewBadRequestError("store address is required")
	}

	info := &entity.ContactInfo{
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.contactRepo.Create(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}
