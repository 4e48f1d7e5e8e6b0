package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput asks for quantity units of an inventory item.
type OrderLineInput struct {
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a request to place a new Pending order.
// Unit prices are taken from the inventory items at creation time.
//
// Example:
//
//	address, _ := kernel.NewAddress("Cellar 52", "52 Vine St", "Napa", "CA", "94559", "")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, address, []OrderLineInput{
//	    {ItemID: cabernetID, Quantity: 6},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	address    kernel.Address
	lines      []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates ids, the address and every line.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	address kernel.Address,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setAddress(address),
		command.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) Address() kernel.Address { return c.address }

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return append([]OrderLineInput(nil), c.lines...)
}

// ItemIDs returns the distinct inventory items the order asks for.
func (c CreateOrderCommand) ItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]bool, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if !seen[line.ItemID] {
			seen[line.ItemID] = true
			ids = append(ids, line.ItemID)
		}
	}
	return ids
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for i, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("lines[%d].itemID", i), err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lines[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}
	c.lines = append([]OrderLineInput(nil), lines...)
	return nil
}
