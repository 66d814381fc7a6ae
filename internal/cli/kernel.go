package cli

import (
	"context"
	"strconv"

	"github.com/cwbudde/algo-savgol/dsp/savgol"
	"github.com/cwbudde/algo-savgol/internal/config"
	"github.com/cwbudde/algo-savgol/internal/logging"
)

// resolveKernel builds the kernel named by the optional positional
// arguments [family [window]], falling back to the configured defaults.
func resolveKernel(ctx context.Context, args []string) (savgol.Kernel, error) {
	cfg := config.FromContext(ctx)

	name := cfg.Family
	if len(args) > 0 {
		name = args[0]
	}

	window := cfg.Window
	if len(args) > 1 {
		w, err := strconv.Atoi(args[1])
		if err != nil {
			return savgol.Kernel{}, &ExitError{Code: 2, Err: err}
		}
		window = w
	}

	return buildKernel(ctx, name, window)
}

func buildKernel(ctx context.Context, name string, window int) (savgol.Kernel, error) {
	f, err := savgol.ParseFamily(name)
	if err != nil {
		return savgol.Kernel{}, &ExitError{Code: 2, Err: err}
	}

	k, err := savgol.NewKernel(f, window)
	if err != nil {
		return savgol.Kernel{}, &ExitError{Code: 2, Err: err}
	}

	logging.FromContext(ctx).Debug("kernel constructed", logging.Kernel(k))

	return k, nil
}
