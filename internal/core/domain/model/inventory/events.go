package inventory

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

const (
	AllocatedEventName          = "inventory.allocated"
	ReleasedEventName           = "inventory.released"
	AdjustedEventName           = "inventory.adjusted"
	LocationReassignedEventName = "inventory.location_reassigned"
)

// Movement is recorded for every on-hand change. Delta is negative for allocations.
// Reference is the order that caused the movement, if any.
type Movement struct {
	Name        string      `json:"-"`
	ItemID      kernel.UUID `json:"itemId"`
	SKU         string      `json:"sku"`
	Delta       int         `json:"delta"`
	OnHandAfter int         `json:"onHandAfter"`
	Reference   *string     `json:"reference,omitempty"`
	At          time.Time   `json:"at"`
}

func newMovement(name string, item *Item, delta int, reference kernel.UUID, at time.Time) Movement {
	m := Movement{
		Name:        name,
		ItemID:      item.id,
		SKU:         item.sku,
		Delta:       delta,
		OnHandAfter: item.onHand,
		At:          at,
	}
	if reference.Validate() == nil {
		ref := reference.String()
		m.Reference = &ref
	}
	return m
}

func (m Movement) EventName() string        { return m.Name }
func (m Movement) AggregateID() kernel.UUID { return m.ItemID }
func (m Movement) OccurredAt() time.Time    { return m.At }

// LocationReassigned is recorded when an item moves to another bin.
type LocationReassigned struct {
	ItemID           kernel.UUID     `json:"itemId"`
	SKU              string          `json:"sku"`
	PreviousLocation *string         `json:"previousLocation,omitempty"`
	Location         *string         `json:"location,omitempty"`
	PickRank         kernel.PickRank `json:"pickRank"`
	At               time.Time       `json:"at"`
}

func (e LocationReassigned) EventName() string        { return LocationReassignedEventName }
func (e LocationReassigned) AggregateID() kernel.UUID { return e.ItemID }
func (e LocationReassigned) OccurredAt() time.Time    { return e.At }
