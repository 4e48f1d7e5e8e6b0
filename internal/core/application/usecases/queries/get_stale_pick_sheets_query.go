package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetStalePickSheetsQueryIsNotConstructed = errors.New(
		"GetStalePickSheetsQuery must be created via NewGetStalePickSheetsQuery constructor",
	)
)

// GetStalePickSheetsQuery lists pending pick sheets created before a cutoff.
type GetStalePickSheetsQuery struct {
	createdBefore time.Time
	guard         guard.ConstructorGuard
}

// NewGetStalePickSheetsQuery creates a query for sheets still pending at createdBefore.
func NewGetStalePickSheetsQuery(createdBefore time.Time) (GetStalePickSheetsQuery, error) {
	if createdBefore.IsZero() {
		return GetStalePickSheetsQuery{}, errs.NewValueIsRequiredError("createdBefore")
	}

	return GetStalePickSheetsQuery{
		createdBefore: createdBefore,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetStalePickSheetsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePickSheetsQueryIsNotConstructed)
}

func (q GetStalePickSheetsQuery) CreatedBefore() time.Time {
	return q.createdBefore
}

// GetStalePickSheetsQueryResponse summarizes one stale sheet. OpenItems counts
// items that are neither picked nor abandoned.
type GetStalePickSheetsQueryResponse struct {
	ID         kernel.UUID
	Number     string
	CreatedAt  time.Time
	PickerName *string
	OpenItems  int
}
