package savgol

import "errors"

// Errors returned by kernel construction and filtering.
var (
	ErrUnsupportedWindowSize = errors.New("savgol: unsupported window size")
	ErrUnknownFamily         = errors.New("savgol: unknown stencil family")
	ErrLengthMismatch        = errors.New("savgol: buffer length mismatch")
	ErrAliasedBuffers        = errors.New("savgol: dst and src must not share storage")
	ErrInvalidFFTSize        = errors.New("savgol: invalid FFT size")
)
