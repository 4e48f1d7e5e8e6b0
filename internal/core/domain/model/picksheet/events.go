package picksheet

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

const (
	SheetCompletedEventName = "pick_sheet.completed"
	SheetCancelledEventName = "pick_sheet.cancelled"
)

// SheetCompleted is recorded when a sheet is completed and its stock allocated.
type SheetCompleted struct {
	PickSheetID kernel.UUID `json:"pickSheetId"`
	Number      string      `json:"number"`
	Items       int         `json:"items"`
	At          time.Time   `json:"at"`
}

func (e SheetCompleted) EventName() string        { return SheetCompletedEventName }
func (e SheetCompleted) AggregateID() kernel.UUID { return e.PickSheetID }
func (e SheetCompleted) OccurredAt() time.Time    { return e.At }

// SheetCancelled is recorded when a pending sheet is cancelled. OrderIDs lists
// the orders whose lines can go on a new sheet.
type SheetCancelled struct {
	PickSheetID kernel.UUID   `json:"pickSheetId"`
	Number      string        `json:"number"`
	OrderIDs    []kernel.UUID `json:"orderIds"`
	At          time.Time     `json:"at"`
}

func (e SheetCancelled) EventName() string        { return SheetCancelledEventName }
func (e SheetCancelled) AggregateID() kernel.UUID { return e.PickSheetID }
func (e SheetCancelled) OccurredAt() time.Time    { return e.At }
