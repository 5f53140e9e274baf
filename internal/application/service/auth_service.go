package service

import (
	"context"

	"github.com/saravanan/rentify-api/internal/domain/repository"
	"github.com/saravanan/rentify-api/pkg/apperror"
	"github.com/saravanan/rentify-api/pkg/utils"
)

// AuthService handles the admin login
type AuthService struct {
	adminRepo  repository.AdminRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repository.AdminRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
	}
}

// LoginResult carries the issued session token
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login checks the admin credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Username: user.Username}, nil
}
