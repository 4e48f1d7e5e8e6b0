package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lines and status transition audit rows are stored with their order.
type OrderRepository interface {
	// Add persists a new order with its lines and pending transitions.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, delivered-at, line allocation flags and pending
	// transitions of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetManyForUpdate locks and retrieves several orders, in id order. A missing
	// id fails with *errs.ObjectNotFoundError.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// Transitions returns the audit trail of an order, oldest first.
	Transitions(ctx context.Context, id kernel.UUID) ([]order.Transition, error)

	// Delete removes an order, its lines and its audit rows. Reference checks are
	// the caller's job (see services.IntegrityGuard).
	Delete(ctx context.Context, id kernel.UUID) error
}
