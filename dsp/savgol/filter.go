package savgol

import (
	"unsafe"

	"github.com/cwbudde/algo-vecmath"
)

// Filter applies k to input and returns a new slice of the same length.
//
// Samples closer than k.Border() to either end are copied unchanged; every
// other output sample is the normalized weighted sum of its centered
// window. input is never modified. An empty input yields an empty slice and
// an input shorter than the window yields a copy. The zero Kernel filters
// nothing, so every sample passes through.
func Filter(input []float64, k Kernel) []float64 {
	out := make([]float64, len(input))
	filterTo(out, input, k)
	return out
}

// FilterTo applies k to src, writing into dst. dst must have the same length
// as src and must not share any memory with it, since windows read samples
// after earlier outputs have been written. Any overlap, not only a shared
// first element, fails with [ErrAliasedBuffers].
func FilterTo(dst, src []float64, k Kernel) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	if overlaps(dst, src) {
		return ErrAliasedBuffers
	}
	filterTo(dst, src, k)
	return nil
}

// Apply is a one-shot helper that builds the kernel for (f, windowSize) and
// filters input with it.
func Apply(input []float64, f Family, windowSize int) ([]float64, error) {
	k, err := NewKernel(f, windowSize)
	if err != nil {
		return nil, err
	}
	return Filter(input, k), nil
}

// filterTo is the traversal. Position i is filtered iff a window centered on
// it fits inside [0, n): i >= border and n-i > border. The window starts at
// i-border, so the cursor advances by one per filtered sample.
func filterTo(dst, src []float64, k Kernel) {
	n := len(src)
	if n == 0 {
		return
	}
	if k.IsZero() {
		copy(dst, src)
		return
	}
	w := len(k.weights)
	border := w / 2
	norm := k.norm

	windowStart := 0
	for i := range n {
		if i < border || n-i <= border {
			dst[i] = src[i]
			continue
		}

		sum := vecmath.DotProduct(k.weights, src[windowStart:windowStart+w])
		dst[i] = sum / norm

		if windowStart+w < n {
			windowStart++
		}
	}
}

// overlaps reports whether a and b share any element of backing memory.
func overlaps(a, b []float64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	const size = unsafe.Sizeof(float64(0))
	aStart := uintptr(unsafe.Pointer(&a[0]))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
