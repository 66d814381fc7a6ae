package savgol

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Response returns the magnitude response |H| of k's normalized stencil for
// the fftSize/2+1 bins from DC to Nyquist. fftSize must be a power of two no
// smaller than k.WindowSize().
//
// The filter correlates rather than convolves, which only mirrors the phase;
// magnitudes are identical.
func Response(k Kernel, fftSize int) ([]float64, error) {
	if k.IsZero() || fftSize < k.WindowSize() || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d (window size %d)", ErrInvalidFFTSize, fftSize, k.WindowSize())
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("savgol: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, c := range k.Coefficients() {
		padded[i] = complex(c, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("savgol: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// ResponseAt evaluates the stencil's frequency response at freq, given in
// cycles per sample (0 is DC, 0.5 is Nyquist).
//
//	H(f) = sum_{m=0}^{w-1} c[m] * e^{-j*2*pi*f*m}
func ResponseAt(k Kernel, freq float64) complex128 {
	omega := 2 * math.Pi * freq
	var h complex128
	for m, w := range k.weights {
		h += complex(w/k.norm, 0) * cmplx.Exp(complex(0, -omega*float64(m)))
	}
	return h
}
