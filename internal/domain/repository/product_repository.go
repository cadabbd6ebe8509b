package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/domain/entity"
	"github.com/shopstack/billing-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations.
// Every read and write is scoped to the owning user.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID retrieves a product owned by userID, or nil when absent or
	// owned by another user.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple owned products in a single query (prevents N+1)
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Product, int64, error)
}
