package route

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

const (
	StopDeliveredEventName  = "route.stop_delivered"
	RouteCompletedEventName = "route.completed"
)

// StopDelivered is recorded when a stop reports delivery.
type StopDelivered struct {
	RouteID   kernel.UUID  `json:"routeId"`
	StopID    kernel.UUID  `json:"stopId"`
	OrderID   *kernel.UUID `json:"orderId,omitempty"`
	StopOrder int          `json:"stopOrder"`
	At        time.Time    `json:"at"`
}

func (e StopDelivered) EventName() string        { return StopDeliveredEventName }
func (e StopDelivered) AggregateID() kernel.UUID { return e.RouteID }
func (e StopDelivered) OccurredAt() time.Time    { return e.At }

// RouteCompleted is recorded when the last stop of a route is delivered.
type RouteCompleted struct {
	RouteID kernel.UUID `json:"routeId"`
	Name    string      `json:"name"`
	Stops   int         `json:"stops"`
	At      time.Time   `json:"at"`
}

func (e RouteCompleted) EventName() string        { return RouteCompletedEventName }
func (e RouteCompleted) AggregateID() kernel.UUID { return e.RouteID }
func (e RouteCompleted) OccurredAt() time.Time    { return e.At }
