package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetUnlocatedInventoryQueryIsNotConstructed = errors.New(
		"GetUnlocatedInventoryQuery must be created via NewGetUnlocatedInventoryQuery constructor",
	)
)

// GetUnlocatedInventoryQuery lists stock units that have no bin location. Such
// units are still picked, last on every sheet, but need a location assigned.
//
// Example:
//
//	items, err := handler.Handle(ctx, NewGetUnlocatedInventoryQuery())
//	if err != nil {
//	    return err
//	}
//
//	for _, item := range items {
//	    logger.Info("stock without location", "sku", item.SKU, "onHand", item.OnHand)
//	}
type GetUnlocatedInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnlocatedInventoryQuery creates a parameterless query.
func NewGetUnlocatedInventoryQuery() GetUnlocatedInventoryQuery {
	return GetUnlocatedInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnlocatedInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetUnlocatedInventoryQueryIsNotConstructed)
}

// GetUnlocatedInventoryQueryResponse is one stock unit awaiting a location.
type GetUnlocatedInventoryQueryResponse struct {
	ID     kernel.UUID
	SKU    string
	Name   string
	OnHand int
}
