package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusChangedEventName identifies StatusChanged on every event sink.
const StatusChangedEventName = "order.status_changed"

// Transition is the audit record of one status change. It is written in the same
// transaction as the change and is also the payload of StatusChanged.
type Transition struct {
	OrderID    kernel.UUID `json:"orderId"`
	From       Status      `json:"-"`
	To         Status      `json:"-"`
	FromName   string      `json:"from"`
	ToName     string      `json:"to"`
	OccurredAt time.Time   `json:"occurredAt"`
}

func newTransition(orderID kernel.UUID, from, to Status, at time.Time) Transition {
	return Transition{
		OrderID:    orderID,
		From:       from,
		To:         to,
		FromName:   from.String(),
		ToName:     to.String(),
		OccurredAt: at,
	}
}

// StatusChanged is recorded on every order transition.
type StatusChanged struct {
	Transition Transition  `json:"transition"`
	CustomerID kernel.UUID `json:"customerId"`
}

func (e StatusChanged) EventName() string        { return StatusChangedEventName }
func (e StatusChanged) AggregateID() kernel.UUID { return e.Transition.OrderID }
func (e StatusChanged) OccurredAt() time.Time    { return e.Transition.OccurredAt }
