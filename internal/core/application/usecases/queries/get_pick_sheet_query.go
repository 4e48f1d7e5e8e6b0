package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetPickSheetQueryIsNotConstructed = errors.New(
		"GetPickSheetQuery must be created via NewGetPickSheetQuery constructor",
	)
)

// GetPickSheetQuery retrieves one pick sheet with its items in walking order.
//
// Example:
//
//	query, err := NewGetPickSheetQuery(sheetID)
//	if err != nil {
//	    return err
//	}
//
//	sheet, err := handler.Handle(ctx, query)
//	for _, item := range sheet.Items {
//	    fmt.Printf("%s  %-8s x%d\n", item.LocationOrBlank(), item.SKU, item.Quantity)
//	}
type GetPickSheetQuery struct {
	pickSheetID kernel.UUID
	guard       guard.ConstructorGuard
}

// NewGetPickSheetQuery creates a query for the given pick sheet.
func NewGetPickSheetQuery(pickSheetID kernel.UUID) (GetPickSheetQuery, error) {
	if err := pickSheetID.Validate(); err != nil {
		return GetPickSheetQuery{}, errs.NewValueIsRequiredErrorWithCause("pickSheetID", err)
	}

	return GetPickSheetQuery{
		pickSheetID: pickSheetID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickSheetQuery) Validate() error {
	return q.guard.Validate(ErrGetPickSheetQueryIsNotConstructed)
}

func (q GetPickSheetQuery) PickSheetID() kernel.UUID {
	return q.pickSheetID
}

// GetPickSheetQueryResponse is the printable pick sheet.
type GetPickSheetQueryResponse struct {
	ID          kernel.UUID
	Number      string
	Status      string
	CreatedAt   time.Time
	PickerName  *string
	StartedAt   *time.Time
	CompletedAt *time.Time
	Items       []PickSheetItemView
}

// PickSheetItemView is one line of the printed sheet.
type PickSheetItemView struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	OrderLineID     kernel.UUID
	InventoryItemID *kernel.UUID
	SKU             string
	ProductName     string
	Quantity        int
	Location        *string
	PickRank        int
	PickedAt        *time.Time
	Abandoned       bool
}

// LocationOrBlank returns the location code, or an empty string for un-located stock.
func (v PickSheetItemView) LocationOrBlank() string {
	if v.Location == nil {
		return ""
	}
	return *v.Location
}
