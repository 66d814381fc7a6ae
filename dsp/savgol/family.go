package savgol

import (
	"fmt"
	"strings"
)

// Family identifies a stencil family.
type Family int

const (
	// FamilySmoothQuadCubic smooths with a quadratic/cubic least-squares fit.
	FamilySmoothQuadCubic Family = iota
	// FamilySmoothQuarticQuintic smooths with a quartic/quintic least-squares fit.
	FamilySmoothQuarticQuintic
	// FamilyDeriveQuadFirst estimates the first derivative from a quadratic fit.
	// Weights run from offset -m to +m, so a rising sequence yields a positive
	// slope: the ramp y[i] = a*i filters to a. Tables that list the weights
	// from +m down to -m give the negated slope under the same left-to-right
	// weighting.
	FamilyDeriveQuadFirst
	// FamilySmoothGaussian smooths with binomial weights.
	FamilySmoothGaussian
	// FamilySmoothAverage is the uniform moving average.
	FamilySmoothAverage
	// FamilyDeriveQuadSecond estimates the second derivative from a
	// quadratic/cubic fit.
	FamilyDeriveQuadSecond

	numFamilies
)

var familyNames = [numFamilies]string{
	FamilySmoothQuadCubic:      "quad-cubic",
	FamilySmoothQuarticQuintic: "quartic-quintic",
	FamilyDeriveQuadFirst:      "first-derivative",
	FamilySmoothGaussian:       "gaussian",
	FamilySmoothAverage:        "average",
	FamilyDeriveQuadSecond:     "second-derivative",
}

// Families returns every shipped family in declaration order.
func Families() []Family {
	out := make([]Family, numFamilies)
	for i := range out {
		out[i] = Family(i)
	}
	return out
}

// String returns the family's short name as accepted by [ParseFamily].
func (f Family) String() string {
	if f.valid() {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// IsDerivative reports whether the family estimates a derivative rather than
// smoothing. Derivative stencils have zero DC gain.
func (f Family) IsDerivative() bool {
	return f == FamilyDeriveQuadFirst || f == FamilyDeriveQuadSecond
}

func (f Family) valid() bool {
	return f >= 0 && f < numFamilies
}

// ParseFamily resolves a family by its short name. Matching ignores case
// and surrounding whitespace.
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}
