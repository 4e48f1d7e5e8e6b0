package services

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/pkg/errs"
)

// OrderReferences counts the rows that still point at an order.
type OrderReferences struct {
	PickSheetItems int64
	RouteStops     int64
}

// IntegrityGuard enforces the delete and cancel rules between orders and the pick
// sheets and routes that reference them. Pick sheets and routes own their children
// and cascade; orders are restricted.
type IntegrityGuard struct{}

func NewIntegrityGuard() IntegrityGuard {
	return IntegrityGuard{}
}

// CheckOrderDeletable returns *errs.ReferencedEntityExistsError for every kind of
// row still referencing the order.
func (g IntegrityGuard) CheckOrderDeletable(orderID kernel.UUID, refs OrderReferences) error {
	var errList []error
	if refs.PickSheetItems > 0 {
		errList = append(errList,
			errs.NewReferencedEntityExistsError("order", orderID.String(), "pick sheet items", refs.PickSheetItems))
	}
	if refs.RouteStops > 0 {
		errList = append(errList,
			errs.NewReferencedEntityExistsError("order", orderID.String(), "route stops", refs.RouteStops))
	}
	return errors.Join(errList...)
}

// CancelOrder cancels the order and abandons its items on pending sheets. A
// completed sheet that references the order makes the cancellation fail before
// anything changes. It returns the sheets that were modified.
func (g IntegrityGuard) CancelOrder(
	o *order.Order,
	sheets []*picksheet.PickSheet,
	at time.Time,
) ([]*picksheet.PickSheet, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, sheet := range sheets {
		if sheet.Status() == picksheet.Completed && sheet.ReferencesOrder(o.ID()) {
			return nil, errs.NewInvalidStateTransitionError("order", o.Status().String(), order.Cancelled.String())
		}
	}

	if err := o.Cancel(at); err != nil {
		return nil, err
	}

	modified := make([]*picksheet.PickSheet, 0, len(sheets))
	for _, sheet := range sheets {
		if sheet.Status() != picksheet.Pending {
			continue
		}
		abandoned, err := sheet.AbandonOrder(o.ID())
		if err != nil {
			return nil, err
		}
		if abandoned > 0 {
			modified = append(modified, sheet)
		}
	}
	return modified, nil
}
