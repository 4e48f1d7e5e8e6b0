package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReassignLocationsCommandIsNotConstructed = errors.New(
	"ReassignLocationsCommand must be created via NewReassignLocationsCommand constructor",
)

// LocationAssignment moves one stock unit. A nil Code clears the location.
type LocationAssignment struct {
	ItemID kernel.UUID
	Code   *string
}

// ReassignLocationsCommand moves one or more stock units in a single transaction.
// Either every assignment is applied or none is.
type ReassignLocationsCommand struct { //nolint:recvcheck //using for validation
	assignments []LocationAssignment
	guard       guard.ConstructorGuard
}

func NewReassignLocationsCommand(assignments []LocationAssignment) (ReassignLocationsCommand, error) {
	if len(assignments) == 0 {
		return ReassignLocationsCommand{}, errs.NewValueIsRequiredError("assignments")
	}

	seen := make(map[kernel.UUID]bool, len(assignments))
	for i, a := range assignments {
		if err := a.ItemID.Validate(); err != nil {
			return ReassignLocationsCommand{}, errs.NewValueIsRequiredErrorWithCause(
				fmt.Sprintf("assignments[%d].itemID", i), err)
		}
		if seen[a.ItemID] {
			return ReassignLocationsCommand{}, errs.NewValueIsInvalidErrorWithCause("assignments",
				fmt.Errorf("item %s is assigned twice", a.ItemID))
		}
		seen[a.ItemID] = true
	}

	return ReassignLocationsCommand{
		assignments: append([]LocationAssignment(nil), assignments...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignLocationsCommand) Validate() error {
	return c.guard.Validate(ErrReassignLocationsCommandIsNotConstructed)
}

func (c ReassignLocationsCommand) Assignments() []LocationAssignment {
	return append([]LocationAssignment(nil), c.assignments...)
}

func (c ReassignLocationsCommand) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.assignments))
	for _, a := range c.assignments {
		ids = append(ids, a.ItemID)
	}
	return ids
}
