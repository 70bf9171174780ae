package services_test

import (
	"testing"
	"time"

	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return orderDate.AddDate(0, 0, n)
}

func createTestOrder(t *testing.T, totalQuantity int, delivery *time.Time) *order.Order {
	t.Helper()
	number, err := kernel.NewOrderNumber("PO-2024-001")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number,
		"citrus", "Valencia", budwood.Grafting,
		totalQuantity, orderDate, delivery,
	)
	require.NoError(t, err)
	return o
}

func transferTo(t *testing.T, o *order.Order, stage order.Stage, quantity int, at time.Time) {
	t.Helper()
	require.NoError(t, o.Transfer(stage, "section-1", quantity, "Maria", "", nil, at))
}

func blockerMessages(blockers []order.Blocker) []string {
	messages := make([]string, 0, len(blockers))
	for _, b := range blockers {
		messages = append(messages, b.Message)
	}
	return messages
}

func TestQuantityChecker(t *testing.T) {
	checker := services.QuantityChecker{}

	t.Run("should pass full order", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)

		result := checker.Check(o, day(1))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})

	t.Run("should fail empty stage with critical blocker", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		require.NoError(t, o.RecordHealthAssessment(100, "Ivan", "", day(1)))

		result := checker.Check(o, day(2))

		assert.False(t, result.Valid)
		require.NotEmpty(t, result.Blockers)
		assert.Equal(t, "No plants available in current stage", result.Blockers[0].Message)
		assert.Equal(t, order.SeverityCritical, result.Blockers[0].Severity)
		assert.True(t, result.Blockers[0].IsCritical())
	})

	t.Run("should warn on high loss while staying valid", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		require.NoError(t, o.RecordHealthAssessment(40, "Ivan", "", day(1)))

		result := checker.Check(o, day(2))

		assert.True(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "High plant loss detected (40.0%)", result.Blockers[0].Message)
		assert.Equal(t, order.SeverityWarning, result.Blockers[0].Severity)
	})

	t.Run("should not warn at exactly thirty percent loss", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		require.NoError(t, o.RecordHealthAssessment(30, "Ivan", "", day(1)))

		result := checker.Check(o, day(2))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})
}

func TestWorkerChecker(t *testing.T) {
	checker := services.WorkerChecker{}

	t.Run("should warn when staffing is absent entirely", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)

		result := checker.Check(o, day(1))

		assert.False(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "No workers assigned to this order", result.Blockers[0].Message)
		assert.Equal(t, order.SeverityWarning, result.Blockers[0].Severity)
	})

	t.Run("should fail when stage role is unfilled", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		require.NoError(t, o.AssignWorker(order.RoleBudwoodCollector, "Ivan"))
		transferTo(t, o, order.GraftingOperation, 100, day(3))

		result := checker.Check(o, day(4))

		assert.False(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "No grafter assigned for grafting_operation", result.Blockers[0].Message)
		assert.Equal(t, order.SeverityCritical, result.Blockers[0].Severity)
		assert.Equal(t, "Assign a qualified grafter to this order", result.Blockers[0].Action)
	})

	t.Run("should pass when stage role is filled", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		require.NoError(t, o.AssignWorker(order.RoleGrafter, "Maria"))
		transferTo(t, o, order.GraftingOperation, 100, day(3))

		result := checker.Check(o, day(4))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})

	t.Run("should pass staffed order in stage without required role", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		require.NoError(t, o.AssignWorker(order.RoleGrafter, "Maria"))

		result := checker.Check(o, day(1))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})
}

func TestEnvironmentalChecker(t *testing.T) {
	checker := services.EnvironmentalChecker{}

	t.Run("should warn for monitored stages", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.PostGraftCare, 100, day(5))

		result := checker.Check(o, day(6))

		assert.True(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t,
			"Environmental conditions not monitored for post_graft_care",
			result.Blockers[0].Message)
		assert.Equal(t, order.SeverityWarning, result.Blockers[0].Severity)
	})

	t.Run("should stay silent for unmonitored stages", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)

		result := checker.Check(o, day(1))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})
}

func TestTimingChecker(t *testing.T) {
	checker := services.TimingChecker{}

	t.Run("should warn below minimum duration", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.PostGraftCare, 100, day(5))

		result := checker.Check(o, day(10))

		assert.True(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "Minimum stage duration not met (5/14 days)", result.Blockers[0].Message)
		assert.Equal(t, order.SeverityWarning, result.Blockers[0].Severity)
	})

	t.Run("should pass within duration window", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.PostGraftCare, 100, day(5))

		result := checker.Check(o, day(21))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})

	t.Run("should pass up to one and a half times maximum", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.PostGraftCare, 100, day(5))

		result := checker.Check(o, day(5+31))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})

	t.Run("should escalate to critical when overdue", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.PostGraftCare, 100, day(5))

		result := checker.Check(o, day(5+32))

		assert.False(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "Stage overdue (32/21 days)", result.Blockers[0].Message)
		assert.Equal(t, order.SeverityCritical, result.Blockers[0].Severity)
	})

	t.Run("should measure from latest entry of current stage", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.PostGraftCare, 100, day(5))
		require.NoError(t, o.RecordHealthAssessment(5, "Ivan", "", day(18)))

		result := checker.Check(o, day(20))

		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "Minimum stage duration not met (2/14 days)", result.Blockers[0].Message)
	})

	t.Run("should flag overdue delivery deadline", func(t *testing.T) {
		delivery := day(10)
		o := createTestOrder(t, 100, &delivery)

		result := checker.Check(o, day(17))

		assert.False(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "Order is 7 days overdue", result.Blockers[0].Message)
		assert.Equal(t, order.SeverityCritical, result.Blockers[0].Severity)
	})

	t.Run("should flag deadline crossed by calendar date", func(t *testing.T) {
		delivery := day(10).Add(15 * time.Hour)
		o := createTestOrder(t, 100, &delivery)

		result := checker.Check(o, day(11))

		assert.False(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "Order is 1 days overdue", result.Blockers[0].Message)
		assert.Equal(t, order.SeverityCritical, result.Blockers[0].Severity)
	})

	t.Run("should not flag deadline later the same day", func(t *testing.T) {
		delivery := day(17)
		o := createTestOrder(t, 100, &delivery)

		result := checker.Check(o, day(17).Add(6*time.Hour))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})

	t.Run("should not flag future delivery deadline", func(t *testing.T) {
		delivery := day(60)
		o := createTestOrder(t, 100, &delivery)

		result := checker.Check(o, day(17))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})
}

func TestStageSpecificChecker(t *testing.T) {
	checker := services.StageSpecificChecker{}

	t.Run("should require budwood plan at grafting", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.GraftingOperation, 100, day(3))

		result := checker.Check(o, day(4))

		assert.False(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "Budwood calculation not completed", result.Blockers[0].Message)
		assert.Equal(t, order.BlockerMaterial, result.Blockers[0].Type)
		assert.Equal(t, order.SeverityCritical, result.Blockers[0].Severity)
	})

	t.Run("should require positive budwood allocation at grafting", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		plan, err := budwood.Calculate(100, budwood.Seed, 15, 0)
		require.NoError(t, err)
		require.NoError(t, o.AttachBudwoodPlan(plan))
		transferTo(t, o, order.GraftingOperation, 100, day(3))

		result := checker.Check(o, day(4))

		assert.False(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "No budwood allocated for grafting", result.Blockers[0].Message)
	})

	t.Run("should pass grafting with allocated budwood", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		plan, err := budwood.Calculate(100, budwood.Grafting, 15, 10)
		require.NoError(t, err)
		require.NoError(t, o.AttachBudwoodPlan(plan))
		transferTo(t, o, order.GraftingOperation, 100, day(3))

		result := checker.Check(o, day(4))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})

	t.Run("should require quality controller at quality check", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.QualityCheck, 100, day(20))

		result := checker.Check(o, day(21))

		assert.False(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "No quality controller assigned", result.Blockers[0].Message)
		assert.Equal(t, order.BlockerWorker, result.Blockers[0].Type)
	})

	t.Run("should warn on missing container size before dispatch", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		transferTo(t, o, order.PreDispatch, 100, day(30))

		result := checker.Check(o, day(31))

		assert.True(t, result.Valid)
		require.Len(t, result.Blockers, 1)
		assert.Equal(t, "Container size not specified", result.Blockers[0].Message)
		assert.Equal(t, order.BlockerPackaging, result.Blockers[0].Type)
		assert.Equal(t, order.SeverityWarning, result.Blockers[0].Severity)
	})

	t.Run("should pass dispatch preparation with container size", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)
		require.NoError(t, o.SetContainerSize("C-40"))
		transferTo(t, o, order.PreDispatch, 100, day(30))

		result := checker.Check(o, day(31))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})

	t.Run("should stay silent for stages without specific rules", func(t *testing.T) {
		o := createTestOrder(t, 100, nil)

		result := checker.Check(o, day(1))

		assert.True(t, result.Valid)
		assert.Empty(t, result.Blockers)
	})
}
