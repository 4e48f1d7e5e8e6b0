package route

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrStopIsNotConstructed is returned when a Stop was not created via a constructor.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// StopSpec carries what a caller supplies for a stop. The estimated arrival is an
// opaque string from the routing service.
type StopSpec struct {
	OrderID          *kernel.UUID
	Address          kernel.Address
	EstimatedArrival string
}

// Stop is one delivery address on a route.
type Stop struct {
	id               kernel.UUID
	orderID          *kernel.UUID
	stopOrder        int
	address          kernel.Address
	estimatedArrival string
	actualArrival    *time.Time
	status           StopStatus
	guard            guard.ConstructorGuard
}

// NewStop creates a Pending stop at the given 1-based position.
func NewStop(id kernel.UUID, stopOrder int, spec StopSpec) (*Stop, error) {
	return RestoreStop(id, stopOrder, spec, StopStatusPending, nil)
}

// RestoreStop reconstructs a stop from storage.
func RestoreStop(
	id kernel.UUID,
	stopOrder int,
	spec StopSpec,
	status StopStatus,
	actualArrival *time.Time,
) (*Stop, error) {
	stop := &Stop{
		orderID:          spec.OrderID,
		estimatedArrival: strings.TrimSpace(spec.EstimatedArrival),
		actualArrival:    actualArrival,
		status:           status,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stop.setID(id),
		stop.setStopOrder(stopOrder),
		stop.setAddress(spec.Address),
		stop.setOrderID(spec.OrderID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return stop, nil
}

func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

func (s *Stop) ID() kernel.UUID           { return s.id }
func (s *Stop) OrderID() *kernel.UUID     { return s.orderID }
func (s *Stop) StopOrder() int            { return s.stopOrder }
func (s *Stop) Address() kernel.Address   { return s.address }
func (s *Stop) EstimatedArrival() string  { return s.estimatedArrival }
func (s *Stop) ActualArrival() *time.Time { return s.actualArrival }
func (s *Stop) Status() StopStatus        { return s.status }
func (s *Stop) IsDelivered() bool         { return s.status == StopStatusDelivered }

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setStopOrder(stopOrder int) error {
	if stopOrder < 1 {
		return errs.NewValueIsOutOfRangeError("stopOrder", stopOrder, 1, "unbounded")
	}
	s.stopOrder = stopOrder
	return nil
}

func (s *Stop) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}

func (s *Stop) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	return nil
}
