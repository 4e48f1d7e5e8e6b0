package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineNotFound is returned when a line id does not belong to the order.
	ErrLineNotFound = errors.New("order line not found")
)

// deliveredPseudoStatus names the delivery confirmation in transition errors. It
// is not a Status: delivery sets delivered-at on a fulfilled order.
const deliveredPseudoStatus = "DELIVERED"

// Order is the aggregate root of a customer order. It owns its lines and is the
// only place where an order status may change.
//
// Order follows these invariants:
//   - Total equals the sum of line totals
//   - Lines are added only while Pending and never change afterwards, except for
//     the allocated flag
//   - Status changes only through the transition table in Status.TransitionTo
//   - Every status change produces a Transition audit record and a StatusChanged event
//   - Delivered-at is set only on a Fulfilled order, when its route stop is delivered
type Order struct {
	kernel.EventRecorder

	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the ordering customer
	customerID kernel.UUID

	// address is the delivery snapshot exported to routing
	address kernel.Address

	// status represents the current state in the order lifecycle
	status Status

	// orderedAt is when the order was placed
	orderedAt time.Time

	// deliveredAt is set when the route stop carrying the order is delivered
	deliveredAt *time.Time

	// lines are kept in insertion order
	lines []*Line

	// transitions not yet written to the audit table
	transitions []Transition

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a Pending order without lines.
//
// Example:
//
//	address, _ := kernel.NewAddress("Cellar 52", "52 Vine St", "Napa", "CA", "94559", "")
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, address, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	_ = o.AddLine(line)
//	_ = o.Submit(time.Now())
func NewOrder(id, customerID kernel.UUID, address kernel.Address, orderedAt time.Time) (*Order, error) {
	return RestoreOrder(id, customerID, address, Pending, orderedAt, nil, nil)
}

// RestoreOrder reconstructs an order from storage. No transition or event is recorded.
func RestoreOrder(
	id, customerID kernel.UUID,
	address kernel.Address,
	status Status,
	orderedAt time.Time,
	deliveredAt *time.Time,
	lines []*Line,
) (*Order, error) {
	order := &Order{
		status:        status,
		orderedAt:     orderedAt,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setAddress(address),
		status.Validate(),
		order.setOrderedAt(orderedAt),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the delivery snapshot.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns when the order was placed.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// DeliveredAt returns the delivery time or nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Lines returns a copy of the line slice. The lines themselves are shared.
func (o *Order) Lines() []*Line {
	return append([]*Line(nil), o.lines...)
}

// Line returns the line with the given id.
func (o *Order) Line(lineID kernel.UUID) (*Line, error) {
	for _, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("orderLine", lineID.String(), ErrLineNotFound)
}

// Total returns the sum of line totals.
func (o *Order) Total() kernel.Money {
	total := kernel.Zero
	for _, line := range o.lines {
		total = total.Add(line.Total())
	}
	return total
}

// PendingTransitions returns the transitions recorded since the last save.
func (o *Order) PendingTransitions() []Transition {
	return o.transitions
}

// ClearPendingTransitions is called by the repository after the audit rows are written.
func (o *Order) ClearPendingTransitions() {
	o.transitions = nil
}

// AddLine appends a line. Only Pending orders accept lines.
func (o *Order) AddLine(line *Line) error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("lines",
			fmt.Errorf("lines can only be added to a pending order, order is %s", o.status))
	}
	if err := line.Validate(); err != nil {
		return err
	}
	for _, existing := range o.lines {
		if existing.ID().IsEqual(line.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("line %s is already on the order", line.ID()))
		}
	}

	o.lines = append(o.lines, line)
	return nil
}

// Submit moves a Pending order with at least one line to Submitted.
func (o *Order) Submit(at time.Time) error {
	if len(o.lines) == 0 {
		return errors.Join(
			errs.NewInvalidStateTransitionError("order", o.status.String(), Submitted.String()),
			errs.NewValueIsRequiredError("lines"),
		)
	}

	return o.transition(Submitted, at)
}

// Cancel withdraws a Pending or Submitted order. Fulfilled, partially fulfilled and
// cancelled orders are rejected with *errs.InvalidStateTransitionError.
func (o *Order) Cancel(at time.Time) error {
	return o.transition(Cancelled, at)
}

// AllocateLine marks a line as allocated once stock for it has been deducted.
// Allocating the same line twice is rejected, so completing a pick sheet twice can
// never deduct twice.
func (o *Order) AllocateLine(lineID kernel.UUID) error {
	if o.status != Submitted && o.status != PartiallyFulfilled {
		return errs.NewInvalidStateTransitionError("order", o.status.String(), PartiallyFulfilled.String())
	}

	line, err := o.Line(lineID)
	if err != nil {
		return err
	}
	if line.allocated {
		return errs.NewValueIsInvalidErrorWithCause("orderLine", fmt.Errorf("line %s is already allocated", lineID))
	}

	line.allocated = true
	return nil
}

// AdvanceFulfillment moves the order to Fulfilled when every line is allocated,
// or to PartiallyFulfilled when only some are. It does nothing when no line is
// allocated or when the order is already partially fulfilled and still incomplete.
func (o *Order) AdvanceFulfillment(at time.Time) error {
	allocated := o.allocatedLines()
	switch {
	case allocated == 0:
		return nil
	case allocated == len(o.lines):
		return o.MarkFulfilled(at)
	case o.status == PartiallyFulfilled:
		return nil
	default:
		return o.MarkPartiallyFulfilled(at)
	}
}

// MarkPartiallyFulfilled records that some but not all lines are allocated.
func (o *Order) MarkPartiallyFulfilled(at time.Time) error {
	allocated := o.allocatedLines()
	if allocated == 0 || allocated == len(o.lines) {
		return errors.Join(
			errs.NewInvalidStateTransitionError("order", o.status.String(), PartiallyFulfilled.String()),
			errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("%d of %d lines allocated", allocated, len(o.lines))),
		)
	}

	return o.transition(PartiallyFulfilled, at)
}

// MarkFulfilled records that every line is allocated.
func (o *Order) MarkFulfilled(at time.Time) error {
	if allocated := o.allocatedLines(); len(o.lines) == 0 || allocated != len(o.lines) {
		return errors.Join(
			errs.NewInvalidStateTransitionError("order", o.status.String(), Fulfilled.String()),
			errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("%d of %d lines allocated", allocated, len(o.lines))),
		)
	}

	return o.transition(Fulfilled, at)
}

// MarkDelivered sets delivered-at. The order must be Fulfilled and not yet delivered.
func (o *Order) MarkDelivered(at time.Time) error {
	if o.status != Fulfilled || o.deliveredAt != nil {
		return errs.NewInvalidStateTransitionError("order", o.status.String(), deliveredPseudoStatus)
	}

	deliveredAt := at
	o.deliveredAt = &deliveredAt
	return nil
}

func (o *Order) transition(to Status, at time.Time) error {
	from := o.status
	next, err := from.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = next
	t := newTransition(o.id, from, next, at)
	o.transitions = append(o.transitions, t)
	o.Record(StatusChanged{Transition: t, CustomerID: o.customerID})
	return nil
}

func (o *Order) allocatedLines() int {
	n := 0
	for _, line := range o.lines {
		if line.allocated {
			n++
		}
	}
	return n
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = append([]*Line(nil), lines...)
	return nil
}
