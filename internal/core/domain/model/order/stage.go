package order

import (
	"fmt"

	"floratrack/internal/pkg/errs"
)

// Stage represents a discrete phase of the propagation workflow.
// It implements a state machine over the fixed production sequence to ensure
// orders move through the nursery in the correct direction.
//
// Stage sequence:
//
//	OrderCreated → BudwoodCollection → GraftingSetup → GraftingOperation →
//	PostGraftCare → QualityCheck → Hardening → PreDispatch → Dispatched
//
// Dispatched is terminal. Transfers may skip stages forward (a tissue-culture
// order has no grafting work, for example) and may re-enter the current stage
// (each transfer models a real plant movement, a re-transfer within a stage
// included), but never move backward; backward corrections go through the
// administrative stage-change path instead.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// OrderCreated is the initial stage when an order is registered.
	OrderCreated

	// BudwoodCollection covers harvesting scion material from mother trees.
	BudwoodCollection

	// GraftingSetup covers preparing rootstock, tools, and the grafting area.
	GraftingSetup

	// GraftingOperation is the stage where scions are joined to rootstock.
	GraftingOperation

	// PostGraftCare covers the humidity-chamber recovery period after grafting.
	PostGraftCare

	// QualityCheck is the inspection stage where failed grafts are culled.
	QualityCheck

	// Hardening acclimatizes plants to ambient conditions.
	Hardening

	// PreDispatch covers packaging and shipping preparation.
	PreDispatch

	// Dispatched indicates the order has left the nursery.
	// This is a terminal stage with no further transitions allowed.
	Dispatched
)

// getStageStrings returns a map of Stage values to their string representations.
// The names are the workflow identifiers used in history entries and persistence.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:           "unknown",
		OrderCreated:      "order_created",
		BudwoodCollection: "budwood_collection",
		GraftingSetup:     "grafting_setup",
		GraftingOperation: "grafting_operation",
		PostGraftCare:     "post_graft_care",
		QualityCheck:      "quality_check",
		Hardening:         "hardening",
		PreDispatch:       "pre_dispatch",
		Dispatched:        "dispatched",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
func getValidStageStrings() map[Stage]string {
	valid := getStageStrings()
	delete(valid, Unknown)
	return valid
}

// StageFromString parses a workflow stage identifier such as "grafting_operation".
// Returns an error for unknown identifiers.
func StageFromString(s string) (Stage, error) {
	for stage, name := range getValidStageStrings() {
		if name == s {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"stage", fmt.Errorf("%q is not a valid stage", s))
}

// Validate checks if the Stage value is valid.
// Unknown (0) and any out-of-sequence values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the workflow identifier of the stage, e.g. "post_graft_care".
// Implements the fmt.Stringer interface and is safe on invalid values.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the stage ends the workflow.
func (s Stage) IsTerminal() bool {
	return s == Dispatched
}

// ValidateTransferTo checks whether a production transfer from this stage to
// the target stage is legal, without performing the transition.
//
// Transfers must not move backward in the stage sequence. Skipping stages
// forward is allowed, and so is a transfer into the current stage: a same-stage
// move relocates plants within the stage and is a real operation in its own
// right. Transferring out of the terminal stage is never legal.
func (s Stage) ValidateTransferTo(to Stage) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%s is terminal and cannot be transferred out of", s),
		)
	}

	if to < s {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("cannot transfer backward from %s to %s", s, to),
		)
	}

	return nil
}

// TransferTo transitions to the target stage after validating the move.
//
// Returns:
//   - (to, nil) on a valid forward or same-stage transfer
//   - (Unknown, error) if the transfer is not allowed from the current stage
func (s Stage) TransferTo(to Stage) (Stage, error) {
	if err := s.ValidateTransferTo(to); err != nil {
		return Unknown, err
	}
	return to, nil
}

// RequiredRole returns the worker role that must be assigned before the stage
// can be considered complete. The second return value is false for stages that
// have no dedicated role.
func (s Stage) RequiredRole() (Role, bool) {
	switch s {
	case BudwoodCollection:
		return RoleBudwoodCollector, true
	case GraftingOperation:
		return RoleGrafter, true
	case PostGraftCare:
		return RoleNurseryManager, true
	case QualityCheck:
		return RoleQualityController, true
	default:
		return "", false
	}
}
