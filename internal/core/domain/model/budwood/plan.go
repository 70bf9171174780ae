package budwood

import (
	"fmt"
	"math"

	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

const (
	// DefaultWasteFactorPercent is the waste allowance applied when the caller
	// does not specify one.
	DefaultWasteFactorPercent = 15.0

	// MinWasteFactorPercent is the lowest accepted waste allowance.
	MinWasteFactorPercent = 0.0
	// MaxWasteFactorPercent is the highest accepted waste allowance.
	MaxWasteFactorPercent = 50.0
)

// ErrPlanIsNotConstructed is returned when attempting to use a Plan that was not
// created via Calculate or RestorePlan.
var ErrPlanIsNotConstructed = errs.NewValueIsRequiredError(
	"budwood plan must be created via Calculate or RestorePlan constructors")

// CalculationDetails holds the human-readable derivation trail of a budwood
// calculation. Each line shows one arithmetic step, so an agronomist can audit
// where the final figure came from.
type CalculationDetails struct {
	BaseCalculation string
	WithWaste       string
	FinalTotal      string
}

// Plan is the material requirement breakdown for one propagation order.
// It is an immutable value object produced by Calculate; the zero value is
// invalid and fails validation.
//
// Invariant: TotalRequired >= RequiredBudwood >= 0.
type Plan struct { //nolint:recvcheck //using for validation
	requiredBudwood    int
	wasteFactorPercent float64
	extraForSafety     int
	totalRequired      int
	methodRatio        float64
	details            CalculationDetails

	guard guard.ConstructorGuard
}

// Calculate computes the budwood requirement for an order.
//
// The base requirement is quantity times the method's consumption ratio, the
// waste allowance is applied on top, and the safety buffer is added last:
//
//	required  = ceil(quantity × ratio)
//	withWaste = ceil(required × (1 + wasteFactorPercent/100))
//	total     = withWaste + extraForSafety
//
// Every rounding step uses ceiling: running out of scion material mid-graft is
// a far worse failure than cutting a few pieces too many. Methods that consume
// no budwood at all (ratio 0, i.e. seed) yield an all-zero plan; no waste or
// safety buffer is added to material that is not needed in the first place.
//
// Parameters:
//   - quantity: number of plants to propagate (must be positive)
//   - method: propagation method; unrecognized methods price like grafting
//   - wasteFactorPercent: expected waste allowance, within [0, 50]
//   - extraForSafety: additional buffer pieces (must not be negative)
//
// Returns an error from the errs taxonomy if any parameter is out of range.
func Calculate(
	quantity int,
	method PropagationMethod,
	wasteFactorPercent float64,
	extraForSafety int,
) (Plan, error) {
	if quantity <= 0 {
		return Plan{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if wasteFactorPercent < MinWasteFactorPercent || wasteFactorPercent > MaxWasteFactorPercent {
		return Plan{}, errs.NewValueIsOutOfRangeError(
			"waste factor percent", wasteFactorPercent, MinWasteFactorPercent, MaxWasteFactorPercent)
	}

	if extraForSafety < 0 {
		return Plan{}, errs.NewValueIsInvalidErrorWithCause(
			"extra for safety", fmt.Errorf("%d is negative", extraForSafety))
	}

	ratio := method.Ratio()
	required := int(math.Ceil(float64(quantity) * ratio))

	wasteFactor := 1 + wasteFactorPercent/100
	withWaste := int(math.Ceil(float64(required) * wasteFactor))

	total := withWaste + extraForSafety
	if required == 0 {
		withWaste = 0
		total = 0
	}

	return Plan{
		requiredBudwood:    required,
		wasteFactorPercent: wasteFactorPercent,
		extraForSafety:     extraForSafety,
		totalRequired:      total,
		methodRatio:        ratio,
		details: CalculationDetails{
			BaseCalculation: fmt.Sprintf("%d plants × %g ratio = %d", quantity, ratio, required),
			WithWaste:       fmt.Sprintf("%d × %g factor = %d", required, wasteFactor, withWaste),
			FinalTotal:      fmt.Sprintf("%d + %d safety = %d", withWaste, extraForSafety, total),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestorePlan reconstructs a Plan from persisted values.
// Enforces the TotalRequired >= RequiredBudwood >= 0 invariant, so corrupted
// rows cannot re-enter the domain as valid plans.
func RestorePlan(
	requiredBudwood int,
	wasteFactorPercent float64,
	extraForSafety int,
	totalRequired int,
	methodRatio float64,
	details CalculationDetails,
) (Plan, error) {
	if requiredBudwood < 0 || totalRequired < requiredBudwood {
		return Plan{}, errs.NewValueIsInvalidErrorWithCause(
			"budwood plan",
			fmt.Errorf("total required %d and required budwood %d violate total >= required >= 0",
				totalRequired, requiredBudwood))
	}

	return Plan{
		requiredBudwood:    requiredBudwood,
		wasteFactorPercent: wasteFactorPercent,
		extraForSafety:     extraForSafety,
		totalRequired:      totalRequired,
		methodRatio:        methodRatio,
		details:            details,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Plan was properly constructed via a constructor.
func (p Plan) Validate() error {
	return p.guard.Validate(ErrPlanIsNotConstructed)
}

// RequiredBudwood returns the base requirement before waste and safety buffers.
func (p Plan) RequiredBudwood() int {
	return p.requiredBudwood
}

// WasteFactorPercent returns the waste allowance used in the calculation.
func (p Plan) WasteFactorPercent() float64 {
	return p.wasteFactorPercent
}

// ExtraForSafety returns the safety buffer added on top of the waste allowance.
func (p Plan) ExtraForSafety() int {
	return p.extraForSafety
}

// TotalRequired returns the final number of budwood pieces to collect.
func (p Plan) TotalRequired() int {
	return p.totalRequired
}

// MethodRatio returns the pieces-per-plant ratio the calculation used.
func (p Plan) MethodRatio() float64 {
	return p.methodRatio
}

// Details returns the human-readable derivation trail.
func (p Plan) Details() CalculationDetails {
	return p.details
}
