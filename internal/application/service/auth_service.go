package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/domain/entity"
	"github.com/shopstack/billing-api/internal/domain/repository"
	"github.com/shopstack/billing-api/pkg/apperror"
	"github.com/shopstack/billing-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// RegisterInput represents the registration input
type RegisterInput struct {
	ShopName          string
	MobileNumber      string
	Password          string
	PreferredLanguage string
}

// AuthOutput is returned by Register and Login: the account plus a
// freshly minted bearer token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// Register creates a new shop owner account. A mobile number can back
// only one account: login is by mobile number, so duplicates are
// rejected rather than silently creating a second identity.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error) {
	existing, err := s.userRepo.GetByMobileNumber(ctx, input.MobileNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewBadRequestError("Mobile number already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	language := input.PreferredLanguage
	if language == "" {
		language = "en"
	}

	user := &entity.User{
		ShopName:          input.ShopName,
		MobileNumber:      input.MobileNumber,
		Password:          hashedPassword,
		PreferredLanguage: language,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.MobileNumber)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{User: user, Token: token}, nil
}

// LoginInput represents the login input
type LoginInput struct {
	MobileNumber string
	Password     string
}

// Login authenticates a user by mobile number and password
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthOutput, error) {
	user, err := s.userRepo.GetByMobileNumber(ctx, input.MobileNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.MobileNumber)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{User: user, Token: token}, nil
}

// GetCurrentUser returns the authenticated user's account
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ChangePasswordInput represents a password change request
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword updates the caller's password after verifying the
// current one. Previously issued tokens remain valid; there is no
// revocation mechanism.
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashedPassword

	return s.userRepo.Update(ctx, user)
}
