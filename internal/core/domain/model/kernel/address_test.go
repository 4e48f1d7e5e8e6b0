package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("valid address without phone", func(t *testing.T) {
		a, err := kernel.NewAddress(" Wine Bar ", "1 Main St", "Austin", "TX", "73301", "")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Wine Bar", a.CustomerName())
		assert.Equal(t, "1 Main St", a.Street())
		assert.Equal(t, "Austin", a.City())
		assert.Equal(t, "TX", a.State())
		assert.Equal(t, "73301", a.Zip())
		assert.Empty(t, a.Phone())
	})

	t.Run("collects every missing field", func(t *testing.T) {
		_, err := kernel.NewAddress("", " ", "", "TX", "", "555-0100")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "zip")
		assert.NotContains(t, err.Error(), "state")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var a kernel.Address
		require.ErrorIs(t, a.Validate(), kernel.ErrAddressIsNotConstructed)
	})
}
