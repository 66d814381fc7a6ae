// Package cli implements the cobra command tree for sgfilter.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-savgol/internal/config"
	"github.com/cwbudde/algo-savgol/internal/logging"
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it, and returns the exit code.
func Execute() int {
	cmd := NewRootCommand()

	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("error:", err)

		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		return 1
	}

	return 0
}

// NewRootCommand constructs the top-level command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "sgfilter",
		Short: "Apply Savitzky-Golay stencils to numeric sample sequences",
		Long: `sgfilter smooths or differentiates sampled data with fixed
Savitzky-Golay style stencils.

Samples are read as whitespace-separated numbers. The first and last
window/2 samples are passed through unchanged; every other sample is
replaced by the normalized weighted sum of its centered window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger := logging.Setup(cfg)

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded",
				slog.String("file", cfg.ConfigFile),
				slog.String("family", cfg.Family),
				slog.Int("window", cfg.Window),
			)

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .sgfilter.yaml)")
	pf.String("log-level", config.LogLevelInfo, "log level: debug, info, warn, error")
	pf.String("log-format", config.LogFormatText, "log format: text, json")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")
	pf.StringP("family", "f", config.DefaultFamily, "default stencil family (see 'sgfilter list')")
	pf.IntP("window", "w", config.DefaultWindow, "window size")
	pf.Int("fft-size", config.DefaultFFTSize, "FFT length for the response command")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	cmd.AddCommand(
		newListCommand(),
		newShowCommand(),
		newApplyCommand(),
		newResponseCommand(),
		newVersionCommand(),
	)

	return cmd
}
