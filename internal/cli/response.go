package cli

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-savgol/dsp/savgol"
	"github.com/cwbudde/algo-savgol/internal/config"
)

func newResponseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "response [family [window]]",
		Short: "Print the magnitude response of a stencil",
		Long: `Print |H| of the normalized stencil for every bin from DC to Nyquist.
Frequencies are in cycles per sample. The transform length is set with
--fft-size and must be a power of two no smaller than the window.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			k, err := resolveKernel(ctx, args)
			if err != nil {
				return err
			}

			mag, err := savgol.Response(k, cfg.FFTSize)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Bin\tFrequency\tMagnitude\tdB")
			for i, m := range mag {
				db := math.Inf(-1)
				if m > 0 {
					db = 20 * math.Log10(m)
				}
				fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.2f\n", i, float64(i)/float64(cfg.FFTSize), m, db)
			}

			return tw.Flush()
		},
	}
}
