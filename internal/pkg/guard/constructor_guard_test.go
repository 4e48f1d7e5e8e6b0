package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errSheetNotConstructed := errors.New("pick sheet not constructed")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errSheetNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero guard returns the caller's error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Same(t, errSheetNotConstructed, g.Validate(errSheetNotConstructed))
	})

	t.Run("zero guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_ZeroDomainValuesAreRejected(t *testing.T) {
	var (
		zeroLine *order.Line
		zeroStop *route.Stop
	)

	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"warehouse location", kernel.WarehouseLocation{}.Validate, kernel.ErrWarehouseLocationIsNotConstructed},
		{"address", kernel.Address{}.Validate, kernel.ErrAddressIsNotConstructed},
		{"order line", (&order.Line{}).Validate, order.ErrLineIsNotConstructed},
		{"nil order line", zeroLine.Validate, order.ErrLineIsNotConstructed},
		{"route stop", (&route.Stop{}).Validate, route.ErrStopIsNotConstructed},
		{"nil route stop", zeroStop.Validate, route.ErrStopIsNotConstructed},
		{"pick sheet item", (&picksheet.Item{}).Validate, picksheet.ErrItemIsNotConstructed},
		{"cancel pick sheet command", commands.CancelPickSheetCommand{}.Validate,
			commands.ErrCancelPickSheetCommandIsNotConstructed},
		{"delete pick sheet command", commands.DeletePickSheetCommand{}.Validate,
			commands.ErrDeletePickSheetCommandIsNotConstructed},
		{"list pick sheets query", queries.ListPickSheetsQuery{}.Validate,
			queries.ErrListPickSheetsQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestConstructorGuard_ConstructedDomainValuesPass(t *testing.T) {
	location, err := kernel.ParseWarehouseLocation("c-5-10")
	require.NoError(t, err)

	address, err := kernel.NewAddress("Cellar 52", "52 Vine St", "Napa", "CA", "94559", "")
	require.NoError(t, err)

	price, err := kernel.NewMoney(1250)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 6, price)
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	stop, err := route.NewStop(kernel.NewUUID(), 1, route.StopSpec{OrderID: &orderID, Address: address})
	require.NoError(t, err)

	code := location.Code()
	rank, err := kernel.CalculatePickRank(&code)
	require.NoError(t, err)
	item, err := picksheet.NewItem(kernel.NewUUID(), picksheet.ItemSpec{
		OrderID:     orderID,
		OrderLineID: line.ID(),
		SKU:         "WINE-CAB-750",
		ProductName: "Cabernet 750ml",
		Quantity:    6,
		Location:    &code,
		PickRank:    rank,
	})
	require.NoError(t, err)

	cancel, err := commands.NewCancelPickSheetCommand(kernel.NewUUID())
	require.NoError(t, err)

	list, err := queries.NewListPickSheetsQuery(nil, 0, 0)
	require.NoError(t, err)

	require.NoError(t, location.Validate())
	require.NoError(t, address.Validate())
	require.NoError(t, line.Validate())
	require.NoError(t, stop.Validate())
	require.NoError(t, item.Validate())
	require.NoError(t, cancel.Validate())
	require.NoError(t, list.Validate())

	t.Run("copies keep the guard", func(t *testing.T) {
		copied := location
		require.NoError(t, copied.Validate())

		equal, err := copied.IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("comparing against a zero location fails", func(t *testing.T) {
		_, err := location.IsEqual(kernel.WarehouseLocation{})

		assert.ErrorIs(t, err, kernel.ErrWarehouseLocationIsNotConstructed)
	})
}
