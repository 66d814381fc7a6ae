package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-savgol/dsp/savgol"
	"github.com/cwbudde/algo-savgol/internal/config"
	"github.com/cwbudde/algo-savgol/internal/logging"
)

func newApplyCommand() *cobra.Command {
	var (
		compare   []string
		withInput bool
	)

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Filter samples from a file or stdin",
		Long: `Filter whitespace-separated samples read from file, or from stdin when no
file is given or file is "-". One row is printed per sample. Each row holds
the filtered value of the configured family followed by one value per
--compare family, all with the configured window size.`,
		Example: `  sgfilter apply -f average -w 5 data.txt
  sgfilter apply --with-input --compare gaussian,average data.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := logging.FromContext(ctx)

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			samples, err := readSamples(in)
			if err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			logger.Info("samples read", slog.Int("count", len(samples)))

			names := append([]string{cfg.Family}, compare...)
			kernels := make([]savgol.Kernel, len(names))
			for i, name := range names {
				if kernels[i], err = buildKernel(ctx, name, cfg.Window); err != nil {
					return err
				}
			}

			var cols [][]float64
			if withInput {
				cols = append(cols, samples)
			}
			for _, k := range kernels {
				cols = append(cols, savgol.Filter(samples, k))
				logger.Debug("filtered", logging.Kernel(k), slog.Int("border", k.Border()))
			}

			return writeColumns(cmd.OutOrStdout(), cols)
		},
	}

	cmd.Flags().StringSliceVar(&compare, "compare", nil, "additional families to filter with, one output column each")
	cmd.Flags().BoolVar(&withInput, "with-input", false, "print the unfiltered sample as the first column")

	return cmd
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, &ExitError{Code: 1, Err: fmt.Errorf("opening input: %w", err)}
	}

	return f, nil
}
