package commands_test

import (
	"testing"
	"time"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransferOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		perf := order.WorkerPerformance{TimeInStageDays: 2, QualityScore: 95}

		cmd, err := commands.NewTransferOrderCommand(
			id, "grafting_operation", "greenhouse-2", 420, "Maria", "bench 3", &perf, orderDate)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.GraftingOperation, cmd.ToStage())
		assert.Equal(t, "greenhouse-2", cmd.ToSection())
		assert.Equal(t, 420, cmd.Quantity())
		require.NotNil(t, cmd.Performance())
		assert.Equal(t, 2, cmd.Performance().TimeInStageDays)
	})

	t.Run("should allow nil performance", func(t *testing.T) {
		cmd, err := commands.NewTransferOrderCommand(
			kernel.NewUUID(), "hardening", "yard-1", 100, "Maria", "", nil, orderDate)

		require.NoError(t, err)
		assert.Nil(t, cmd.Performance())
	})

	t.Run("should fail with unrecognized stage", func(t *testing.T) {
		_, err := commands.NewTransferOrderCommand(
			kernel.NewUUID(), "germination", "yard-1", 100, "Maria", "", nil, orderDate)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := commands.NewTransferOrderCommand(
			kernel.NewUUID(), "hardening", "yard-1", 0, "Maria", "", nil, orderDate)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without operator", func(t *testing.T) {
		_, err := commands.NewTransferOrderCommand(
			kernel.NewUUID(), "hardening", "yard-1", 100, "", "", nil, orderDate)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero date", func(t *testing.T) {
		_, err := commands.NewTransferOrderCommand(
			kernel.NewUUID(), "hardening", "yard-1", 100, "Maria", "", nil, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation when created directly", func(t *testing.T) {
		var cmd commands.TransferOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrTransferOrderCommandIsNotConstructed)
	})
}
