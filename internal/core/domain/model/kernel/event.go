package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate while a command runs. Events are
// published only after the unit of work commits.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// EventRecorder is embedded by aggregates to collect their events.
type EventRecorder struct {
	events []DomainEvent
}

// Record appends an event.
func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the recorded events in order.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	return r.events
}

// ClearDomainEvents drops all recorded events.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
