package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetPickSheetQuery{}.Validate(), queries.ErrGetPickSheetQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetRouteQuery{}.Validate(), queries.ErrGetRouteQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetUnlocatedInventoryQuery{}.Validate(), queries.ErrGetUnlocatedInventoryQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetStalePickSheetsQuery{}.Validate(), queries.ErrGetStalePickSheetsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.CheckAvailabilityQuery{}.Validate(), queries.ErrCheckAvailabilityQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListPickSheetsQuery{}.Validate(), queries.ErrListPickSheetsQueryIsNotConstructed)
}

func TestNewGetPickSheetQuery(t *testing.T) {
	_, err := queries.NewGetPickSheetQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	id := kernel.NewUUID()
	query, err := queries.NewGetPickSheetQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.PickSheetID())
}

func TestNewGetRouteQuery(t *testing.T) {
	_, err := queries.NewGetRouteQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetRouteQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetStalePickSheetsQuery(t *testing.T) {
	_, err := queries.NewGetStalePickSheetsQuery(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cutoff := time.Now().Add(-time.Hour)
	query, err := queries.NewGetStalePickSheetsQuery(cutoff)
	require.NoError(t, err)
	assert.Equal(t, cutoff, query.CreatedBefore())
}

func TestNewListPickSheetsQuery(t *testing.T) {
	query, err := queries.NewListPickSheetsQuery(nil, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, query.Status())
	assert.Equal(t, queries.DefaultPickSheetPageSize, query.Limit())
	assert.Equal(t, 0, query.Offset())

	completed := picksheet.Completed
	query, err = queries.NewListPickSheetsQuery(&completed, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, picksheet.Completed, *query.Status())
	assert.Equal(t, 10, query.Limit())
	assert.Equal(t, 20, query.Offset())

	_, err = queries.NewListPickSheetsQuery(nil, queries.MaxPickSheetPageSize+1, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	_, err = queries.NewListPickSheetsQuery(nil, 10, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	unknown := picksheet.Unknown
	_, err = queries.NewListPickSheetsQuery(&unknown, 10, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCheckAvailabilityQuery(t *testing.T) {
	tests := []struct {
		name     string
		sku      string
		quantity int
		wantErr  error
	}{
		{"blank sku", "  ", 1, errs.ErrValueIsRequired},
		{"zero quantity", "WINE-001", 0, errs.ErrValueIsInvalid},
		{"negative quantity", "WINE-001", -3, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewCheckAvailabilityQuery(tt.sku, tt.quantity)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	query, err := queries.NewCheckAvailabilityQuery(" WINE-001 ", 6)
	require.NoError(t, err)
	assert.Equal(t, "WINE-001", query.SKU())
	assert.Equal(t, 6, query.Quantity())
}

func TestPickSheetItemView_LocationOrBlank(t *testing.T) {
	code := "C-05-10"
	assert.Equal(t, "C-05-10", queries.PickSheetItemView{Location: &code}.LocationOrBlank())
	assert.Empty(t, queries.PickSheetItemView{}.LocationOrBlank())
}
