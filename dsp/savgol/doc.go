// Package savgol applies fixed Savitzky-Golay style stencils to sampled
// sequences.
//
// A stencil is a short, odd-length set of integer convolution weights plus a
// normalization divisor. Stencils are grouped into families (smoothing with a
// quadratic/cubic or quartic/quintic polynomial fit, first and second
// derivatives, binomial "gaussian" smoothing and a plain moving average), and
// each family tabulates a fixed set of window sizes. Coefficients are
// hard-coded; nothing is derived at runtime.
//
// # Usage
//
// Pick a family and window size, build a [Kernel] and filter:
//
//	k, err := savgol.NewKernel(savgol.FamilySmoothQuadCubic, 7)
//	if err != nil {
//		return err // errors.Is(err, savgol.ErrUnsupportedWindowSize)
//	}
//	smoothed := savgol.Filter(samples, k)
//
// For repeated filtering into caller storage use [FilterTo].
//
// # Boundary handling
//
// The first and last WindowSize()/2 samples cannot be centered in a full
// window and are copied to the output unchanged. Every other output sample
// is the weighted sum over its centered window divided by the kernel's
// normalizer. Inputs shorter than the window are copied verbatim, and the
// output always has the input's length.
//
// # Derivatives
//
// Derivative stencils return the derivative per sample step. Divide by the
// sample spacing (first derivative) or its square (second derivative) to get
// physical units.
//
// Catalog data is immutable and a [Kernel] is a read-only value, so any
// number of goroutines may filter concurrently as long as their output
// buffers are distinct.
package savgol
