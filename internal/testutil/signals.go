package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates amplitude*sin(2*pi*cycles*i/length) so that
// exactly cycles periods fit into length samples.
func DeterministicSine(cycles, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	if length == 0 {
		return out
	}
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Polynomial evaluates c[0] + c[1]*i + c[2]*i^2 + ... at every sample index.
func Polynomial(length int, c ...float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		x := float64(i)
		var y float64
		for j := len(c) - 1; j >= 0; j-- {
			y = y*x + c[j]
		}
		out[i] = y
	}
	return out
}

// Ramp generates offset + slope*i.
func Ramp(offset, slope float64, length int) []float64 {
	return Polynomial(length, offset, slope)
}

// Pulse generates a rectangular pulse: level on [start, start+width) and zero
// elsewhere.
func Pulse(length, start, width int, level float64) []float64 {
	out := make([]float64, length)
	for i := start; i < start+width && i < length; i++ {
		if i >= 0 {
			out[i] = level
		}
	}
	return out
}
