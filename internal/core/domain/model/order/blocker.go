package order

import "time"

// Severity grades how strongly a blocker holds an order back.
// Only Critical blockers force an order to be considered not ready.
type Severity string

const (
	// SeverityInfo is advisory only.
	SeverityInfo Severity = "info"

	// SeverityWarning flags a concern that does not block progression.
	SeverityWarning Severity = "warning"

	// SeverityCritical blocks progression to the next stage.
	SeverityCritical Severity = "critical"
)

// BlockerType classifies which requirement a blocker belongs to.
type BlockerType string

const (
	// BlockerQuantity covers plant stock problems.
	BlockerQuantity BlockerType = "quantity"

	// BlockerWorker covers staffing problems.
	BlockerWorker BlockerType = "worker"

	// BlockerEnvironment covers growing-condition problems.
	BlockerEnvironment BlockerType = "environment"

	// BlockerTiming covers stage duration and deadline problems.
	BlockerTiming BlockerType = "timing"

	// BlockerMaterial covers missing budwood planning.
	BlockerMaterial BlockerType = "material"

	// BlockerPackaging covers dispatch preparation problems.
	BlockerPackaging BlockerType = "packaging"
)

// Blocker is a structured, inspectable reason an order cannot be considered
// complete or ready. Blockers are data, not errors: an order can be invalid
// without any operation failing.
type Blocker struct {
	Type     BlockerType
	Message  string
	Severity Severity
	Action   string
}

// IsCritical reports whether the blocker forces overall invalidity.
func (b Blocker) IsCritical() bool {
	return b.Severity == SeverityCritical
}

// StageValidationSnapshot is the denormalized copy of the last validation
// verdict stored on the order for read paths. The validator remains the source
// of truth; this cache exists so list views do not re-run the rule checkers.
type StageValidationSnapshot struct {
	CurrentStageComplete bool
	ReadyForNextStage    bool
	Blockers             []Blocker
	ValidatedAt          time.Time
}
