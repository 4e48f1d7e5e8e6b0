package errs

import (
	"errors"
	"fmt"
)

// Fulfillment pipeline conditions. All of them are recoverable by the caller.
var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInsufficientInventory  = errors.New("insufficient inventory")
	ErrInvalidLocationCode    = errors.New("invalid location code")
	ErrDuplicateStopOrder     = errors.New("duplicate stop order")
	ErrReferencedEntityExists = errors.New("referenced entity exists")
	ErrRoutingUnavailable     = errors.New("routing unavailable")
)

// InvalidStateTransitionError is returned when an operation is attempted from a
// state that does not permit it. It is never auto-corrected.
type InvalidStateTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidStateTransitionError(entity, from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Entity: entity,
		From:   from,
		To:     to,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidStateTransition, e.Entity, e.From, e.To)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// InsufficientInventoryError is returned when an allocation would drive on-hand
// quantity below zero.
type InsufficientInventoryError struct {
	ItemID    string
	Requested int
	Available int
}

func NewInsufficientInventoryError(itemID string, requested, available int) *InsufficientInventoryError {
	return &InsufficientInventoryError{
		ItemID:    itemID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s: item %s requested %d, available %d",
		ErrInsufficientInventory, e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// InvalidLocationCodeError is returned for a warehouse location code that does not
// follow the <Aisle>-<Rack>-<Shelf> format.
type InvalidLocationCodeError struct {
	Code  string
	Cause error
}

func NewInvalidLocationCodeError(code string) *InvalidLocationCodeError {
	return &InvalidLocationCodeError{Code: code}
}

func NewInvalidLocationCodeErrorWithCause(code string, cause error) *InvalidLocationCodeError {
	return &InvalidLocationCodeError{
		Code:  code,
		Cause: cause,
	}
}

func (e *InvalidLocationCodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q (cause: %v)", ErrInvalidLocationCode, sanitize(e.Code), e.Cause)
	}
	return fmt.Sprintf("%s: %q", ErrInvalidLocationCode, sanitize(e.Code))
}

func (e *InvalidLocationCodeError) Unwrap() error {
	return ErrInvalidLocationCode
}

// DuplicateStopOrderError is returned when a stop-order value is already taken
// inside a route.
type DuplicateStopOrderError struct {
	RouteID   string
	StopOrder int
	Cause     error
}

func NewDuplicateStopOrderError(routeID string, stopOrder int) *DuplicateStopOrderError {
	return &DuplicateStopOrderError{
		RouteID:   routeID,
		StopOrder: stopOrder,
	}
}

func NewDuplicateStopOrderErrorWithCause(routeID string, stopOrder int, cause error) *DuplicateStopOrderError {
	return &DuplicateStopOrderError{
		RouteID:   routeID,
		StopOrder: stopOrder,
		Cause:     cause,
	}
}

func (e *DuplicateStopOrderError) Error() string {
	msg := fmt.Sprintf("%s: stop %d is already used in route %s", ErrDuplicateStopOrder, e.StopOrder, e.RouteID)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *DuplicateStopOrderError) Unwrap() error {
	return ErrDuplicateStopOrder
}

// ReferencedEntityExistsError is returned when a delete is blocked by dependents.
// The caller must delete the dependents first.
type ReferencedEntityExistsError struct {
	Entity    string
	ID        string
	Dependent string
	Count     int64
}

func NewReferencedEntityExistsError(entity, id, dependent string, count int64) *ReferencedEntityExistsError {
	return &ReferencedEntityExistsError{
		Entity:    entity,
		ID:        id,
		Dependent: dependent,
		Count:     count,
	}
}

func (e *ReferencedEntityExistsError) Error() string {
	return fmt.Sprintf("%s: %s %s is referenced by %d %s",
		ErrReferencedEntityExists, e.Entity, e.ID, e.Count, e.Dependent)
}

func (e *ReferencedEntityExistsError) Unwrap() error {
	return ErrReferencedEntityExists
}

// RoutingUnavailableError is returned when the external routing hand-off failed
// or timed out. No route is persisted when it is returned.
type RoutingUnavailableError struct {
	Service string
	Cause   error
}

func NewRoutingUnavailableError(service string, cause error) *RoutingUnavailableError {
	return &RoutingUnavailableError{
		Service: service,
		Cause:   cause,
	}
}

func (e *RoutingUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrRoutingUnavailable, e.Service, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrRoutingUnavailable, e.Service)
}

func (e *RoutingUnavailableError) Unwrap() error {
	return ErrRoutingUnavailable
}
