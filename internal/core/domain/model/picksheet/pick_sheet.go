package picksheet

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const numberPrefix = "PS-"

var (
	// ErrPickSheetIsNotConstructed is returned when a PickSheet was not created via a constructor.
	ErrPickSheetIsNotConstructed = errors.New("PickSheet must be created via NewPickSheet constructor")

	// ErrItemNotFound is returned when an item id does not belong to the sheet.
	ErrItemNotFound = errors.New("pick sheet item not found")

	numberPattern = regexp.MustCompile(`^PS-\d{6,}$`)
)

// FormatNumber renders a sheet number from its sequence value, e.g. 1 -> "PS-000001".
func FormatNumber(seq int64) (string, error) {
	if seq <= 0 {
		return "", errs.NewValueIsOutOfRangeError("sequence", seq, 1, "unbounded")
	}
	return fmt.Sprintf("%s%06d", numberPrefix, seq), nil
}

// ParseNumber returns the sequence value of a sheet number.
func ParseNumber(number string) (int64, error) {
	if !numberPattern.MatchString(number) {
		return 0, errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%q is not a pick sheet number", number))
	}
	return strconv.ParseInt(strings.TrimPrefix(number, numberPrefix), 10, 64)
}

// PickSheet is the worklist a picker walks through. It may batch items of several
// orders. Items are always kept sorted by (pick rank, location).
//
// Business rules:
//   - A sheet is created with at least one item
//   - Items can be picked, and a picker assigned, only while the sheet is Pending
//   - Completion requires every non-abandoned item to be picked; a completed sheet
//     cannot be completed again, so stock is never allocated twice
//   - Cancelling an order abandons its items; a sheet whose items are all abandoned
//     becomes Abandoned
//   - Cancelling a Pending sheet abandons every item, which frees the order lines
//     for a new sheet
type PickSheet struct {
	kernel.EventRecorder

	id          kernel.UUID
	number      string
	status      Status
	createdAt   time.Time
	pickerName  *string
	startedAt   *time.Time
	completedAt *time.Time
	items       []*Item

	isConstructed bool
}

// NewPickSheet creates a Pending sheet and sorts its items.
func NewPickSheet(id kernel.UUID, number string, createdAt time.Time, items []*Item) (*PickSheet, error) {
	return RestorePickSheet(id, number, Pending, createdAt, nil, nil, nil, items)
}

// RestorePickSheet reconstructs a sheet from storage.
func RestorePickSheet(
	id kernel.UUID,
	number string,
	status Status,
	createdAt time.Time,
	pickerName *string,
	startedAt *time.Time,
	completedAt *time.Time,
	items []*Item,
) (*PickSheet, error) {
	sheet := &PickSheet{
		status:        status,
		createdAt:     createdAt,
		pickerName:    pickerName,
		startedAt:     startedAt,
		completedAt:   completedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		sheet.setID(id),
		sheet.setNumber(number),
		status.Validate(),
		sheet.setItems(items),
	); err != nil {
		return nil, err
	}

	return sheet, nil
}

// Validate ensures the sheet was built by a constructor.
func (p *PickSheet) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPickSheetIsNotConstructed
	}
	return nil
}

func (p *PickSheet) ID() kernel.UUID         { return p.id }
func (p *PickSheet) Number() string          { return p.number }
func (p *PickSheet) Status() Status          { return p.status }
func (p *PickSheet) CreatedAt() time.Time    { return p.createdAt }
func (p *PickSheet) PickerName() *string     { return p.pickerName }
func (p *PickSheet) StartedAt() *time.Time   { return p.startedAt }
func (p *PickSheet) CompletedAt() *time.Time { return p.completedAt }

// Items returns the items in picking order.
func (p *PickSheet) Items() []*Item {
	return append([]*Item(nil), p.items...)
}

// ActiveItems returns the items that are not abandoned, in picking order.
func (p *PickSheet) ActiveItems() []*Item {
	active := make([]*Item, 0, len(p.items))
	for _, item := range p.items {
		if !item.abandoned {
			active = append(active, item)
		}
	}
	return active
}

// OrderIDs returns the distinct orders referenced by the sheet, in picking order
// of their first item.
func (p *PickSheet) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0)
	for _, item := range p.items {
		if !slices.ContainsFunc(ids, item.orderID.IsEqual) {
			ids = append(ids, item.orderID)
		}
	}
	return ids
}

// ReferencesOrder reports whether any item belongs to orderID.
func (p *PickSheet) ReferencesOrder(orderID kernel.UUID) bool {
	return slices.ContainsFunc(p.items, func(item *Item) bool { return item.orderID.IsEqual(orderID) })
}

// AssignPicker records who is walking the sheet and when they started.
func (p *PickSheet) AssignPicker(name string, at time.Time) error {
	if p.status != Pending {
		return errs.NewInvalidStateTransitionError("pick sheet", p.status.String(), "PICKING")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("pickerName")
	}

	startedAt := at
	p.pickerName = &name
	p.startedAt = &startedAt
	return nil
}

// MarkItemPicked sets the picked flag of an item. Picking an item twice is a no-op.
func (p *PickSheet) MarkItemPicked(itemID kernel.UUID, at time.Time) error {
	if p.status != Pending {
		return errs.NewInvalidStateTransitionError("pick sheet", p.status.String(), "PICKING")
	}

	item, err := p.item(itemID)
	if err != nil {
		return err
	}
	if item.abandoned {
		return errs.NewValueIsInvalidErrorWithCause("pickSheetItem", fmt.Errorf("item %s is abandoned", itemID))
	}
	if item.pickedAt == nil {
		pickedAt := at
		item.pickedAt = &pickedAt
	}
	return nil
}

// Complete marks a Pending sheet Completed. The caller allocates stock for
// ActiveItems in the same unit of work.
func (p *PickSheet) Complete(at time.Time) error {
	if p.status != Pending {
		return errs.NewInvalidStateTransitionError("pick sheet", p.status.String(), Completed.String())
	}

	unpicked := 0
	for _, item := range p.ActiveItems() {
		if !item.IsPicked() {
			unpicked++
		}
	}
	if unpicked > 0 {
		return errs.NewValueIsInvalidErrorWithCause("pickSheet", fmt.Errorf("%d items are not picked", unpicked))
	}

	completedAt := at
	p.status = Completed
	p.completedAt = &completedAt
	p.Record(SheetCompleted{
		PickSheetID: p.id,
		Number:      p.number,
		Items:       len(p.ActiveItems()),
		At:          at,
	})
	return nil
}

// Cancel abandons every item of a Pending sheet and marks it Abandoned.
func (p *PickSheet) Cancel(at time.Time) error {
	if p.status != Pending {
		return errs.NewInvalidStateTransitionError("pick sheet", p.status.String(), Abandoned.String())
	}

	for _, item := range p.items {
		item.abandoned = true
	}
	p.status = Abandoned
	p.Record(SheetCancelled{
		PickSheetID: p.id,
		Number:      p.number,
		OrderIDs:    p.OrderIDs(),
		At:          at,
	})
	return nil
}

// AbandonOrder marks every item of orderID abandoned and returns how many items
// changed. A completed sheet refuses: its stock has already left the building.
func (p *PickSheet) AbandonOrder(orderID kernel.UUID) (int, error) {
	if p.status == Completed {
		return 0, errs.NewInvalidStateTransitionError("pick sheet", p.status.String(), Abandoned.String())
	}

	abandoned := 0
	for _, item := range p.items {
		if item.orderID.IsEqual(orderID) && !item.abandoned {
			item.abandoned = true
			abandoned++
		}
	}

	if len(p.ActiveItems()) == 0 {
		p.status = Abandoned
	}
	return abandoned, nil
}

func (p *PickSheet) item(itemID kernel.UUID) (*Item, error) {
	for _, item := range p.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("pickSheetItem", itemID.String(), ErrItemNotFound)
}

func (p *PickSheet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PickSheet) setNumber(number string) error {
	if _, err := ParseNumber(number); err != nil {
		return err
	}
	p.number = number
	return nil
}

func (p *PickSheet) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	sorted := append([]*Item(nil), items...)
	slices.SortStableFunc(sorted, (*Item).less)
	p.items = sorted
	return nil
}
