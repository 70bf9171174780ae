package commands_test

import (
	"testing"
	"time"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		delivery := orderDate.AddDate(0, 6, 0)

		cmd, err := commands.NewCreateOrderCommand(
			id, "citrus", "Valencia", "Grafting", 500, orderDate, &delivery)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "citrus", cmd.CropType())
		assert.Equal(t, budwood.Grafting, cmd.Method())
		assert.Equal(t, 500, cmd.TotalQuantity())
		require.NotNil(t, cmd.RequestedDelivery())
		assert.Equal(t, delivery, *cmd.RequestedDelivery())
	})

	t.Run("should fail with empty crop type", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "", "Valencia", "grafting", 500, orderDate, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unrecognized method", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "citrus", "Valencia", "layering", 500, orderDate, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "citrus", "Valencia", "grafting", 0, orderDate, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation when created directly", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
