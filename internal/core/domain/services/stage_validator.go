package services

import (
	"time"

	"floratrack/internal/core/domain/model/order"
)

// totalChecks is the number of rule checkers the validator runs per order.
const totalChecks = 5

// ValidationSummary is the aggregate tally of one validation run.
type ValidationSummary struct {
	TotalChecks    int
	PassedChecks   int
	CriticalIssues int
	Warnings       int
}

// ValidationResult is the verdict of a full stage validation: the overall
// readiness booleans, the concatenated blockers of every checker, derived
// remediation advice, and the summary tally.
//
// CurrentStageComplete and ReadyForNextStage are currently always equal; the
// model has a single readiness tier with no "complete but not ready"
// intermediate state. Both fields exist so callers do not break if the tiers
// ever diverge.
type ValidationResult struct {
	CurrentStageComplete bool
	ReadyForNextStage    bool
	Blockers             []order.Blocker
	Recommendations      []string
	Summary              ValidationSummary
}

// StageValidator is the domain service that decides whether an order meets the
// requirements of its current stage. It runs the five rule checkers in a fixed
// order (quantity, worker, environmental, timing, stage-specific), concatenates
// their blockers, and derives overall readiness from the blocker severities:
// only critical blockers force invalidity, warnings and advisories never do.
//
// The validator is stateless; a single instance is safe for concurrent use.
type StageValidator struct {
	checkers []RuleChecker
}

// NewStageValidator creates a validator with the standard rule checkers.
func NewStageValidator() StageValidator {
	return StageValidator{
		checkers: []RuleChecker{
			QuantityChecker{},
			WorkerChecker{},
			EnvironmentalChecker{},
			TimingChecker{},
			StageSpecificChecker{},
		},
	}
}

// Validate runs all rule checkers against the order as of the evaluation date.
//
// The evaluation date must be supplied by the caller; the validator never reads
// a wall clock, so identical inputs always produce identical verdicts.
func (v StageValidator) Validate(o *order.Order, evaluationDate time.Time) (ValidationResult, error) {
	if err := o.Validate(); err != nil {
		return ValidationResult{}, err
	}

	result := ValidationResult{
		Summary: ValidationSummary{TotalChecks: totalChecks},
	}

	for _, checker := range v.checkers {
		check := checker.Check(o, evaluationDate)
		if check.Valid {
			result.Summary.PassedChecks++
		}
		result.Blockers = append(result.Blockers, check.Blockers...)
	}

	for _, blocker := range result.Blockers {
		switch blocker.Severity {
		case order.SeverityCritical:
			result.Summary.CriticalIssues++
		case order.SeverityWarning:
			result.Summary.Warnings++
		}
	}

	ready := result.Summary.CriticalIssues == 0
	result.CurrentStageComplete = ready
	result.ReadyForNextStage = ready
	result.Recommendations = recommendations(o.Stage(), result.Blockers)

	return result, nil
}

// Snapshot converts a validation result into the denormalized form cached on
// the order for read paths.
func (r ValidationResult) Snapshot(at time.Time) order.StageValidationSnapshot {
	return order.StageValidationSnapshot{
		CurrentStageComplete: r.CurrentStageComplete,
		ReadyForNextStage:    r.ReadyForNextStage,
		Blockers:             append([]order.Blocker(nil), r.Blockers...),
		ValidatedAt:          at,
	}
}

// typeRecommendations maps a blocker type to generic remediation advice.
func typeRecommendations() map[order.BlockerType][]string {
	return map[order.BlockerType][]string{
		order.BlockerQuantity: {
			"Review plant health management protocols",
			"Consider increasing initial quantities to account for losses",
		},
		order.BlockerWorker: {
			"Ensure proper worker training and certification",
			"Maintain backup worker assignments for critical stages",
		},
		order.BlockerTiming: {
			"Review and optimize stage duration planning",
			"Implement early warning system for deadline management",
		},
		order.BlockerEnvironment: {
			"Install comprehensive environmental monitoring",
			"Establish automated alerts for out-of-range conditions",
		},
	}
}

// stageRecommendations lists practice tips surfaced whenever the order sits in
// the given stage, independent of any blocker.
func stageRecommendations() map[order.Stage][]string {
	return map[order.Stage][]string{
		order.GraftingOperation: {
			"Maintain optimal humidity levels during grafting",
			"Use sterilized tools and work surfaces",
		},
		order.PostGraftCare: {
			"Monitor graft union development closely",
			"Maintain consistent temperature and humidity",
		},
		order.QualityCheck: {
			"Document all quality assessments",
			"Remove any failed grafts to maintain nursery health",
		},
	}
}

// recommendations derives remediation advice from the set of blocker types
// present plus the stage-specific tips, deduplicated. Callers must not rely on
// the ordering.
func recommendations(stage order.Stage, blockers []order.Blocker) []string {
	types := make(map[order.BlockerType]struct{}, len(blockers))
	for _, blocker := range blockers {
		types[blocker.Type] = struct{}{}
	}

	seen := make(map[string]struct{})
	var result []string
	add := func(items []string) {
		for _, item := range items {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}

	catalogue := typeRecommendations()
	for _, blockerType := range []order.BlockerType{
		order.BlockerQuantity,
		order.BlockerWorker,
		order.BlockerTiming,
		order.BlockerEnvironment,
	} {
		if _, ok := types[blockerType]; ok {
			add(catalogue[blockerType])
		}
	}

	add(stageRecommendations()[stage])

	return result
}
