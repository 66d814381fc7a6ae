package savgol

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Kernel binds one family to one of its tabulated window sizes.
//
// A Kernel is validated once by [NewKernel]; its accessors never fail. The
// zero Kernel is not usable.
type Kernel struct {
	family  Family
	norm    float64
	weights []float64
}

// NewKernel returns the kernel of family f for windowSize. It fails with
// [ErrUnsupportedWindowSize] when the family does not tabulate windowSize and
// with [ErrUnknownFamily] for an invalid family.
func NewKernel(f Family, windowSize int) (Kernel, error) {
	c, err := CatalogOf(f)
	if err != nil {
		return Kernel{}, err
	}
	norm, weights, err := c.Lookup(windowSize)
	if err != nil {
		return Kernel{}, err
	}
	return Kernel{family: f, norm: norm, weights: weights}, nil
}

// MustKernel is like [NewKernel] but panics on error. It is meant for
// package-level presets with known-good sizes.
func MustKernel(f Family, windowSize int) Kernel {
	k, err := NewKernel(f, windowSize)
	if err != nil {
		panic(fmt.Sprintf("savgol.MustKernel: %v", err))
	}
	return k
}

// IsZero reports whether k is the zero Kernel.
func (k Kernel) IsZero() bool {
	return len(k.weights) == 0
}

// Family returns the kernel's family.
func (k Kernel) Family() Family {
	return k.family
}

// WindowSize returns the number of samples combined per output value.
func (k Kernel) WindowSize() int {
	return len(k.weights)
}

// Border returns how many samples at each end of a sequence are passed
// through unfiltered.
func (k Kernel) Border() int {
	return len(k.weights) / 2
}

// Weight returns the weighted contribution of sample at window position
// offset. offset must lie in [0, WindowSize()).
func (k Kernel) Weight(offset int, sample float64) float64 {
	return k.weights[offset] * sample
}

// Normalizer returns the divisor applied to the weighted window sum.
func (k Kernel) Normalizer() float64 {
	return k.norm
}

// Weights returns a copy of the raw integer weights in window order.
func (k Kernel) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}

// Coefficients returns the normalized weights, weights[i] / Normalizer().
func (k Kernel) Coefficients() []float64 {
	c := make([]float64, len(k.weights))
	for i, w := range k.weights {
		c[i] = w / k.norm
	}
	return c
}

// DCGain returns the response to a constant input: 1 for smoothing
// stencils, 0 for derivative stencils.
func (k Kernel) DCGain() float64 {
	if k.IsZero() {
		return 0
	}
	return vecmath.Sum(k.weights) / k.norm
}

// String formats the kernel as "family/size".
func (k Kernel) String() string {
	return fmt.Sprintf("%s/%d", k.family, len(k.weights))
}
