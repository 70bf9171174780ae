package commands_test

import (
	"testing"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanBudwoodCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlanBudwoodCommand(kernel.NewUUID(), 15, 10)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.InDelta(t, 15.0, cmd.WasteFactorPercent(), 0.001)
		assert.Equal(t, 10, cmd.ExtraForSafety())
	})

	t.Run("should accept zero waste and safety", func(t *testing.T) {
		cmd, err := commands.NewPlanBudwoodCommand(kernel.NewUUID(), 0, 0)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, cmd.WasteFactorPercent(), 0.001)
	})

	t.Run("should fail with waste factor out of range", func(t *testing.T) {
		_, err := commands.NewPlanBudwoodCommand(kernel.NewUUID(), 50.1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with negative safety buffer", func(t *testing.T) {
		_, err := commands.NewPlanBudwoodCommand(kernel.NewUUID(), 15, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation when created directly", func(t *testing.T) {
		var cmd commands.PlanBudwoodCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPlanBudwoodCommandIsNotConstructed)
	})
}
