package order_test

import (
	"testing"
	"time"

	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistoryEntry(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid history entry", func(t *testing.T) {
		entry, err := order.NewHistoryEntry(
			order.EntryTransfer, order.GraftingOperation, date, 420, "Maria", "moved to bench 3")

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, order.EntryTransfer, entry.Kind())
		assert.Equal(t, order.GraftingOperation, entry.Stage())
		assert.Equal(t, date, entry.Date())
		assert.Equal(t, 420, entry.Quantity())
		assert.Equal(t, "Maria", entry.Operator())
		assert.Equal(t, "moved to bench 3", entry.Notes())
		assert.Nil(t, entry.Performance())
		assert.Nil(t, entry.SurvivalRate())
	})

	t.Run("should allow zero quantity", func(t *testing.T) {
		entry, err := order.NewHistoryEntry(
			order.EntryHealthAssessment, order.PostGraftCare, date, 0, "Maria", "")

		require.NoError(t, err)
		assert.Equal(t, 0, entry.Quantity())
	})

	t.Run("should fail with invalid kind", func(t *testing.T) {
		_, err := order.NewHistoryEntry(
			order.HistoryEntryKind("audit"), order.PostGraftCare, date, 10, "Maria", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with invalid stage", func(t *testing.T) {
		_, err := order.NewHistoryEntry(order.EntryTransfer, order.Unknown, date, 10, "Maria", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero date", func(t *testing.T) {
		_, err := order.NewHistoryEntry(
			order.EntryTransfer, order.Hardening, time.Time{}, 10, "Maria", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewHistoryEntry(order.EntryTransfer, order.Hardening, date, -1, "Maria", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without operator", func(t *testing.T) {
		_, err := order.NewHistoryEntry(order.EntryTransfer, order.Hardening, date, 10, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation when created directly", func(t *testing.T) {
		var entry order.HistoryEntry

		require.ErrorIs(t, entry.Validate(), order.ErrHistoryEntryIsNotConstructed)
	})
}

func TestHistoryEntryAnnotations(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("should annotate copy with performance", func(t *testing.T) {
		entry, err := order.NewHistoryEntry(
			order.EntryTransfer, order.PostGraftCare, date, 400, "Maria", "")
		require.NoError(t, err)

		annotated := entry.WithPerformance(order.WorkerPerformance{
			TimeInStageDays:  3,
			QualityScore:     92.5,
			EfficiencyRating: 88.0,
		})

		require.NotNil(t, annotated.Performance())
		assert.Equal(t, 3, annotated.Performance().TimeInStageDays)
		assert.InDelta(t, 92.5, annotated.Performance().QualityScore, 0.001)
		assert.Nil(t, entry.Performance(), "original entry must stay unannotated")
	})

	t.Run("should annotate copy with survival rate", func(t *testing.T) {
		entry, err := order.NewHistoryEntry(
			order.EntryHealthAssessment, order.PostGraftCare, date, 15, "Maria", "")
		require.NoError(t, err)

		annotated := entry.WithSurvivalRate(81.0)

		require.NotNil(t, annotated.SurvivalRate())
		assert.InDelta(t, 81.0, *annotated.SurvivalRate(), 0.001)
		assert.Nil(t, entry.SurvivalRate(), "original entry must stay unannotated")
	})
}
