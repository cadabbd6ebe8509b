package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
