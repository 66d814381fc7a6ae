// Command sgfilter smooths or differentiates sampled data with fixed
// Savitzky-Golay stencils.
//
// Usage:
//
//	sgfilter [command] [flags]
//
// Examples:
//
//	sgfilter list
//	sgfilter show quad-cubic 7
//	sgfilter apply -f average -w 5 --with-input --compare gaussian,quad-cubic data.txt
//	sgfilter response gaussian 9 --fft-size 256
package main

import (
	"os"

	"github.com/cwbudde/algo-savgol/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
