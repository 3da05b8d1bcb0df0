package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders based on
// their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfPending persists the order's assignment conditionally: the
	// write only applies when the stored order is still in Pending status.
	// Returns errs.ErrConcurrentModification when another writer moved the
	// order out of Pending in the meantime.
	UpdateIfPending(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves all orders in Pending status, ordered by
	// creation time. Used by the bulk run to build its work queue.
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}
