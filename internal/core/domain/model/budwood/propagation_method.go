package budwood

import (
	"fmt"
	"strings"

	"floratrack/internal/pkg/errs"
)

// PropagationMethod identifies how plants in an order are multiplied.
// The method determines how much budwood (scion material) each plant consumes.
type PropagationMethod string

const (
	// Grafting joins a budwood scion onto a rootstock. Consumes 1.2 pieces per plant.
	Grafting PropagationMethod = "grafting"

	// Cutting roots a severed shoot directly. Consumes 2 cuttings per plant.
	Cutting PropagationMethod = "cutting"

	// TissueCulture multiplies plants from small samples in vitro.
	// One sample yields many plants, so consumption is 0.1 per plant.
	TissueCulture PropagationMethod = "tissue_culture"

	// Seed propagation needs no budwood at all.
	Seed PropagationMethod = "seed"
)

// graftingRatio is the fallback consumption ratio. Methods the ratio table does
// not know are priced like grafting: over-provisioning is the safe direction.
const graftingRatio = 1.2

// methodRatios maps each known method to its budwood pieces-per-plant ratio.
func methodRatios() map[PropagationMethod]float64 {
	return map[PropagationMethod]float64{
		Grafting:      1.2,
		Cutting:       2.0,
		TissueCulture: 0.1,
		Seed:          0.0,
	}
}

// PropagationMethodFromString parses a method name, case-insensitively.
// Returns an error for names outside the known set; use this when classifying
// orders, where only known methods are acceptable.
func PropagationMethodFromString(s string) (PropagationMethod, error) {
	method := PropagationMethod(strings.ToLower(s))
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Validate checks that the method is one of the known propagation methods.
func (m PropagationMethod) Validate() error {
	if _, ok := methodRatios()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"propagation method",
			fmt.Errorf("%q is not a known propagation method", string(m)),
		)
	}
	return nil
}

// String returns the lower-case method name.
func (m PropagationMethod) String() string {
	return string(m)
}

// Ratio returns the budwood pieces consumed per plant for this method.
// Unrecognized methods fall back to the grafting ratio so material planning
// can never silently under-provision an unknown method.
func (m PropagationMethod) Ratio() float64 {
	normalized := PropagationMethod(strings.ToLower(string(m)))
	if ratio, ok := methodRatios()[normalized]; ok {
		return ratio
	}
	return graftingRatio
}
