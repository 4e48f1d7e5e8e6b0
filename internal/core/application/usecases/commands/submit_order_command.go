package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand moves a Pending order to Submitted.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewSubmitOrderCommand(orderID kernel.UUID) (SubmitOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitOrderCommand{}, err
	}
	return SubmitOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
