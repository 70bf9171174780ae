package services

import (
	"fmt"
	"time"

	"floratrack/internal/core/domain/model/order"
)

// CheckResult is the verdict of a single rule checker: whether the order
// passes the checker's requirement, plus zero or more structured blockers.
// A checker can emit warning blockers while still reporting Valid; only the
// aggregating validator decides overall readiness from the severities.
type CheckResult struct {
	Valid    bool
	Blockers []order.Blocker
}

// RuleChecker is a pure predicate over an order snapshot. Checkers never
// mutate the order and never perform I/O; the evaluation date is passed in so
// results are deterministic and replayable.
type RuleChecker interface {
	Check(o *order.Order, at time.Time) CheckResult
}

// highLossThresholdPercent is the plant-loss ratio above which the quantity
// checker flags a warning.
const highLossThresholdPercent = 30.0

// QuantityChecker verifies that the current stage still holds plants and flags
// orders that have lost a large share of their original quantity.
type QuantityChecker struct{}

func (QuantityChecker) Check(o *order.Order, _ time.Time) CheckResult {
	result := CheckResult{Valid: true}

	if o.CurrentStageQuantity() <= 0 {
		result.Valid = false
		result.Blockers = append(result.Blockers, order.Blocker{
			Type:     order.BlockerQuantity,
			Message:  "No plants available in current stage",
			Severity: order.SeverityCritical,
			Action:   "Check previous stage for plant losses or transfer issues",
		})
	}

	if o.TotalQuantity() > 0 {
		lossPercent := float64(o.TotalQuantity()-o.CurrentStageQuantity()) /
			float64(o.TotalQuantity()) * 100
		if lossPercent > highLossThresholdPercent {
			result.Blockers = append(result.Blockers, order.Blocker{
				Type:     order.BlockerQuantity,
				Message:  fmt.Sprintf("High plant loss detected (%.1f%%)", lossPercent),
				Severity: order.SeverityWarning,
				Action:   "Review previous stages for quality issues",
			})
		}
	}

	return result
}

// WorkerChecker verifies that the order is staffed and that the role the
// current stage depends on is filled.
type WorkerChecker struct{}

func (WorkerChecker) Check(o *order.Order, _ time.Time) CheckResult {
	workers := o.Workers()

	if workers.IsAbsent() {
		return CheckResult{
			Valid: false,
			Blockers: []order.Blocker{{
				Type:     order.BlockerWorker,
				Message:  "No workers assigned to this order",
				Severity: order.SeverityWarning,
				Action:   "Assign qualified workers to each stage",
			}},
		}
	}

	result := CheckResult{Valid: true}

	if role, required := o.Stage().RequiredRole(); required {
		if _, ok := workers.Worker(role); !ok {
			result.Valid = false
			result.Blockers = append(result.Blockers, order.Blocker{
				Type:     order.BlockerWorker,
				Message:  fmt.Sprintf("No %s assigned for %s", role, o.Stage()),
				Severity: order.SeverityCritical,
				Action:   fmt.Sprintf("Assign a qualified %s to this order", role),
			})
		}
	}

	return result
}

// conditionRange is an inclusive target range for a monitored growing condition.
type conditionRange struct {
	min int
	max int
}

// environmentalRequirements lists the target growing conditions per stage.
// Stages not listed have no environmental requirement.
func environmentalRequirements() map[order.Stage]struct {
	temperature conditionRange
	humidity    conditionRange
} {
	return map[order.Stage]struct {
		temperature conditionRange
		humidity    conditionRange
	}{
		order.BudwoodCollection: {conditionRange{15, 25}, conditionRange{60, 80}},
		order.GraftingOperation: {conditionRange{20, 25}, conditionRange{85, 95}},
		order.PostGraftCare:     {conditionRange{20, 25}, conditionRange{85, 95}},
		order.Hardening:         {conditionRange{18, 28}, conditionRange{50, 70}},
	}
}

// EnvironmentalChecker flags stages with environmental requirements that have
// no sensor data backing them. Live sensor integration does not exist yet, so
// for the listed stages this checker always produces a monitoring warning and
// never forces invalidity.
type EnvironmentalChecker struct{}

func (EnvironmentalChecker) Check(o *order.Order, _ time.Time) CheckResult {
	result := CheckResult{Valid: true}

	if _, monitored := environmentalRequirements()[o.Stage()]; monitored {
		result.Blockers = append(result.Blockers, order.Blocker{
			Type:     order.BlockerEnvironment,
			Message:  fmt.Sprintf("Environmental conditions not monitored for %s", o.Stage()),
			Severity: order.SeverityWarning,
			Action:   "Install environmental monitoring or verify conditions manually",
		})
	}

	return result
}

// stageDuration is the expected time window for a stage, in days.
type stageDuration struct {
	min int
	max int
}

// overdueFactor is how far past the maximum duration a stage may run before
// the timing checker escalates to critical.
const overdueFactor = 1.5

// stageDurations lists the expected duration window per stage. Stages not
// listed (creation and the terminal stage) have no timing requirement.
func stageDurations() map[order.Stage]stageDuration {
	return map[order.Stage]stageDuration{
		order.BudwoodCollection: {min: 1, max: 2},
		order.GraftingSetup:     {min: 1, max: 1},
		order.GraftingOperation: {min: 1, max: 3},
		order.PostGraftCare:     {min: 14, max: 21},
		order.QualityCheck:      {min: 1, max: 2},
		order.Hardening:         {min: 7, max: 14},
		order.PreDispatch:       {min: 1, max: 3},
	}
}

// TimingChecker verifies stage dwell time against the expected duration window
// and checks the requested delivery deadline.
type TimingChecker struct{}

func (TimingChecker) Check(o *order.Order, at time.Time) CheckResult {
	result := CheckResult{Valid: true}

	if entry, ok := o.LatestEntryForStage(o.Stage()); ok {
		if duration, limited := stageDurations()[o.Stage()]; limited {
			daysInStage := daysBetween(entry.Date(), at)

			switch {
			case daysInStage < duration.min:
				result.Blockers = append(result.Blockers, order.Blocker{
					Type: order.BlockerTiming,
					Message: fmt.Sprintf("Minimum stage duration not met (%d/%d days)",
						daysInStage, duration.min),
					Severity: order.SeverityWarning,
					Action:   "Allow more time for proper development",
				})
			case float64(daysInStage) > float64(duration.max)*overdueFactor:
				result.Valid = false
				result.Blockers = append(result.Blockers, order.Blocker{
					Type: order.BlockerTiming,
					Message: fmt.Sprintf("Stage overdue (%d/%d days)",
						daysInStage, duration.max),
					Severity: order.SeverityCritical,
					Action:   "Immediate action required to prevent losses",
				})
			}
		}
	}

	if delivery := o.RequestedDelivery(); delivery != nil {
		if daysOverdue := daysBetween(*delivery, at); daysOverdue > 0 {
			result.Valid = false
			result.Blockers = append(result.Blockers, order.Blocker{
				Type:     order.BlockerTiming,
				Message:  fmt.Sprintf("Order is %d days overdue", daysOverdue),
				Severity: order.SeverityCritical,
				Action:   "Expedite processing or notify client of delay",
			})
		}
	}

	return result
}

// StageSpecificChecker applies the requirements unique to individual stages:
// budwood planning before grafting, a signed-on quality controller before
// inspection, and packaging data before dispatch preparation.
//
// The quality-controller rule deliberately duplicates the worker checker: the
// staffing rule belongs to both the general staffing policy and the inspection
// stage itself, and each must keep failing independently of the other.
type StageSpecificChecker struct{}

func (StageSpecificChecker) Check(o *order.Order, _ time.Time) CheckResult {
	result := CheckResult{Valid: true}

	switch o.Stage() {
	case order.GraftingOperation:
		plan := o.BudwoodPlan()
		switch {
		case plan == nil:
			result.Valid = false
			result.Blockers = append(result.Blockers, order.Blocker{
				Type:     order.BlockerMaterial,
				Message:  "Budwood calculation not completed",
				Severity: order.SeverityCritical,
				Action:   "Calculate and verify budwood requirements",
			})
		case plan.TotalRequired() <= 0:
			result.Valid = false
			result.Blockers = append(result.Blockers, order.Blocker{
				Type:     order.BlockerMaterial,
				Message:  "No budwood allocated for grafting",
				Severity: order.SeverityCritical,
				Action:   "Ensure adequate budwood supply",
			})
		}

	case order.QualityCheck:
		if _, ok := o.Workers().Worker(order.RoleQualityController); !ok {
			result.Valid = false
			result.Blockers = append(result.Blockers, order.Blocker{
				Type:     order.BlockerWorker,
				Message:  "No quality controller assigned",
				Severity: order.SeverityCritical,
				Action:   "Assign certified quality controller",
			})
		}

	case order.PreDispatch:
		if o.ContainerSize() == "" {
			result.Blockers = append(result.Blockers, order.Blocker{
				Type:     order.BlockerPackaging,
				Message:  "Container size not specified",
				Severity: order.SeverityWarning,
				Action:   "Confirm packaging requirements with client",
			})
		}
	}

	return result
}

// daysBetween returns the number of calendar days from one date to the other.
// Time-of-day is ignored: a delivery deadline late in the evening is still a
// full day overdue the next morning.
func daysBetween(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}
