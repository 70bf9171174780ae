package order

import (
	"errors"
	"fmt"
	"time"

	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created via NewHistoryEntry. History entries are validated at construction,
// never at read sites.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntryKind distinguishes why a history entry was written.
type HistoryEntryKind string

const (
	// EntryCreated marks the synthetic entry written when the order is registered.
	EntryCreated HistoryEntryKind = "created"

	// EntryTransfer marks a production transfer into a new stage.
	EntryTransfer HistoryEntryKind = "transfer"

	// EntryStageChange marks an administrative stage change.
	EntryStageChange HistoryEntryKind = "stage_change"

	// EntryHealthAssessment marks a recorded plant loss.
	EntryHealthAssessment HistoryEntryKind = "health_assessment"
)

// WorkerPerformance captures optional per-entry performance figures supplied by
// the operator recording a transfer. There is no synthetic rating: fields the
// caller does not know stay zero.
type WorkerPerformance struct {
	TimeInStageDays  int
	QualityScore     float64
	EfficiencyRating float64
}

// HistoryEntry is one record in an order's append-only audit trail.
// Entries are immutable once constructed; the trail is never reordered and
// entries are never edited or removed by normal operation.
type HistoryEntry struct { //nolint:recvcheck //using for validation
	kind         HistoryEntryKind
	stage        Stage
	date         time.Time
	quantity     int
	operator     string
	notes        string
	performance  *WorkerPerformance
	survivalRate *float64

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates a validated history entry.
//
// Parameters:
//   - kind: why the entry is written
//   - stage: the workflow stage the entry records
//   - date: the date of the recorded event
//   - quantity: the plant quantity the entry records (transferred, remaining,
//     or lost depending on kind; must not be negative)
//   - operator: who performed the operation (required)
//   - notes: free-form remarks (optional)
func NewHistoryEntry(
	kind HistoryEntryKind,
	stage Stage,
	date time.Time,
	quantity int,
	operator string,
	notes string,
) (HistoryEntry, error) {
	entry := HistoryEntry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setKind(kind),
		entry.setStage(stage),
		entry.setDate(date),
		entry.setQuantity(quantity),
		entry.setOperator(operator),
	); err != nil {
		return HistoryEntry{}, err
	}

	entry.notes = notes
	return entry, nil
}

// WithPerformance returns a copy of the entry annotated with worker performance
// figures. Used on transfer entries when the operator supplies them.
func (e HistoryEntry) WithPerformance(performance WorkerPerformance) HistoryEntry {
	p := performance
	e.performance = &p
	return e
}

// WithSurvivalRate returns a copy of the entry annotated with the percentage of
// the original order quantity still alive. Used on health-assessment entries.
func (e HistoryEntry) WithSurvivalRate(rate float64) HistoryEntry {
	r := rate
	e.survivalRate = &r
	return e
}

// Validate ensures the entry was created through NewHistoryEntry.
func (e HistoryEntry) Validate() error {
	return e.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// Kind returns why the entry was written.
func (e HistoryEntry) Kind() HistoryEntryKind {
	return e.kind
}

// Stage returns the workflow stage the entry records.
func (e HistoryEntry) Stage() Stage {
	return e.stage
}

// Date returns the date of the recorded event.
func (e HistoryEntry) Date() time.Time {
	return e.date
}

// Quantity returns the plant quantity the entry records.
func (e HistoryEntry) Quantity() int {
	return e.quantity
}

// Operator returns who performed the operation.
func (e HistoryEntry) Operator() string {
	return e.operator
}

// Notes returns the free-form remarks attached to the entry.
func (e HistoryEntry) Notes() string {
	return e.notes
}

// Performance returns the optional worker performance annotation.
// Returns nil when none was recorded.
func (e HistoryEntry) Performance() *WorkerPerformance {
	if e.performance == nil {
		return nil
	}
	p := *e.performance
	return &p
}

// SurvivalRate returns the optional survival-rate annotation.
// Returns nil for entries that do not record plant losses.
func (e HistoryEntry) SurvivalRate() *float64 {
	if e.survivalRate == nil {
		return nil
	}
	r := *e.survivalRate
	return &r
}

func (e *HistoryEntry) setKind(kind HistoryEntryKind) error {
	switch kind {
	case EntryCreated, EntryTransfer, EntryStageChange, EntryHealthAssessment:
		e.kind = kind
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"history entry kind", fmt.Errorf("%q is not a valid kind", string(kind)))
	}
}

func (e *HistoryEntry) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	e.stage = stage
	return nil
}

func (e *HistoryEntry) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("history entry date")
	}
	e.date = date
	return nil
}

func (e *HistoryEntry) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"history entry quantity", fmt.Errorf("%d is negative", quantity))
	}
	e.quantity = quantity
	return nil
}

func (e *HistoryEntry) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}
	e.operator = operator
	return nil
}
