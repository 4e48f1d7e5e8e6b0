package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	DefaultPickSheetPageSize = 50
	MaxPickSheetPageSize     = 200
)

var (
	ErrListPickSheetsQueryIsNotConstructed = errors.New(
		"ListPickSheetsQuery must be created via NewListPickSheetsQuery constructor",
	)
)

// ListPickSheetsQuery pages through pick sheets, the newest first, optionally
// filtered by status.
type ListPickSheetsQuery struct {
	status *picksheet.Status
	limit  int
	offset int
	guard  guard.ConstructorGuard
}

// NewListPickSheetsQuery creates a page request. A zero limit means
// DefaultPickSheetPageSize.
func NewListPickSheetsQuery(status *picksheet.Status, limit, offset int) (ListPickSheetsQuery, error) {
	if limit == 0 {
		limit = DefaultPickSheetPageSize
	}

	var errList []error
	if status != nil {
		errList = append(errList, status.Validate())
	}
	if limit < 1 || limit > MaxPickSheetPageSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPickSheetPageSize))
	}
	if offset < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return ListPickSheetsQuery{}, err
	}

	return ListPickSheetsQuery{
		status: status,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListPickSheetsQuery) Validate() error {
	return q.guard.Validate(ErrListPickSheetsQueryIsNotConstructed)
}

func (q ListPickSheetsQuery) Status() *picksheet.Status { return q.status }
func (q ListPickSheetsQuery) Limit() int                { return q.limit }
func (q ListPickSheetsQuery) Offset() int               { return q.offset }

// ListPickSheetsQueryResponse summarizes one sheet. ItemCount includes
// abandoned items.
type ListPickSheetsQueryResponse struct {
	ID          kernel.UUID
	Number      string
	Status      string
	PickerName  *string
	CreatedAt   time.Time
	CompletedAt *time.Time
	ItemCount   int
}
