package commands_test

import (
	"testing"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStageCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStageCommand(
			kernel.NewUUID(), "post_graft_care", "Ivan", "re-inspection", orderDate)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.PostGraftCare, cmd.ToStage())
		assert.Equal(t, "Ivan", cmd.Operator())
	})

	t.Run("should fail with unrecognized stage", func(t *testing.T) {
		_, err := commands.NewChangeOrderStageCommand(
			kernel.NewUUID(), "germination", "Ivan", "", orderDate)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without operator", func(t *testing.T) {
		_, err := commands.NewChangeOrderStageCommand(
			kernel.NewUUID(), "post_graft_care", "", "", orderDate)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation when created directly", func(t *testing.T) {
		var cmd commands.ChangeOrderStageCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStageCommandIsNotConstructed)
	})
}
