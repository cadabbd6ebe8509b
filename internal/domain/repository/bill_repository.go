package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopstack/billing-api/internal/domain/entity"
	"github.com/shopstack/billing-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations.
// Bills are immutable after creation; there is no update method.
type BillRepository interface {
	// Create persists a bill together with its line items.
	Create(ctx context.Context, bill *entity.Bill) error
	// GetByID retrieves a bill with its items, scoped to the owning user.
	// Returns nil when absent or owned by another user.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Bill, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Bill, int64, error)
	// ListAll retrieves every bill owned by the user, in insertion order.
	ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Bill, error)
}
