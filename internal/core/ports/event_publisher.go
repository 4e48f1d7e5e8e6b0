package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// EventPublisher delivers committed domain events to a sink (audit log, metrics,
// message broker). Errors are reported to the caller, which logs them; a
// committed transaction is never undone because of a publisher.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
