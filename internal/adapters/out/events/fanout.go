package events

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// NamedPublisher labels a sink in joined errors.
type NamedPublisher struct {
	Name      string
	Publisher ports.EventPublisher
}

// FailureObserver is told how many events a sink failed to publish.
type FailureObserver func(sink string, events int)

// Fanout publishes to every sink in order.
type Fanout struct {
	sinks    []NamedPublisher
	observer FailureObserver
}

func NewFanout(sinks ...NamedPublisher) *Fanout {
	active := make([]NamedPublisher, 0, len(sinks))
	for _, sink := range sinks {
		if sink.Publisher != nil {
			active = append(active, sink)
		}
	}
	return &Fanout{sinks: active}
}

// OnFailure registers an observer for sink failures.
func (f *Fanout) OnFailure(observer FailureObserver) *Fanout {
	f.observer = observer
	return f
}

func (f *Fanout) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var errList []error
	for _, sink := range f.sinks {
		if err := sink.Publisher.Publish(ctx, events...); err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", sink.Name, err))
			if f.observer != nil {
				f.observer(sink.Name, len(events))
			}
		}
	}
	return errors.Join(errList...)
}
