package order

import (
	"fmt"
	"slices"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Submitted ──┬──> PartiallyFulfilled ──> Fulfilled
//	   │            │       └──────────────────────────> Fulfilled
//	   └────────────┴──> Cancelled
//
// Fulfilled and Cancelled are terminal. A partially fulfilled order has stock
// deducted for some of its lines and can no longer be cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. Lines can only be added while pending.
	Pending

	// Submitted orders are eligible for pick sheet generation.
	Submitted

	// PartiallyFulfilled orders have some but not all lines allocated.
	PartiallyFulfilled

	// Fulfilled orders have every line allocated. They can be put on a route.
	Fulfilled

	// Cancelled orders are withdrawn before any stock was deducted.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "UNKNOWN",
		Pending:            "PENDING",
		Submitted:          "SUBMITTED",
		PartiallyFulfilled: "PARTIALLY_FULFILLED",
		Fulfilled:          "FULFILLED",
		Cancelled:          "CANCELLED",
	}
}

// getTransitions is the single source of truth for permitted status changes.
// A status missing from the map has no outgoing transitions.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses are intentionally absent
	return map[Status][]Status{
		Pending:            {Submitted, Cancelled},
		Submitted:          {PartiallyFulfilled, Fulfilled, Cancelled},
		PartiallyFulfilled: {Fulfilled},
	}
}

// ParseStatus converts the persisted or transported name of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper case name of the status, e.g. "PARTIALLY_FULFILLED".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether the table permits s -> to.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(getTransitions()[s], to)
}

// TransitionTo returns to when the table permits it, and an
// *errs.InvalidStateTransitionError otherwise. Order uses it for every change.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewInvalidStateTransitionError("order", s.String(), to.String())
	}
	return to, nil
}
