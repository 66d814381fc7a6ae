package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [family [window]]",
		Short: "Print the normalizer and weights of a stencil",
		Example: `  sgfilter show quad-cubic 7
  sgfilter show --family gaussian --window 9`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := resolveKernel(cmd.Context(), args)
			if err != nil {
				return err
			}

			weights := k.Weights()
			parts := make([]string, len(weights))
			for i, w := range weights {
				parts[i] = fmt.Sprint(w)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kernel:  %s\n", k)
			fmt.Fprintf(out, "norm:    %g\n", k.Normalizer())
			fmt.Fprintf(out, "weights: %s\n", strings.Join(parts, " "))
			fmt.Fprintf(out, "border:  %d\n", k.Border())
			_, err = fmt.Fprintf(out, "dc gain: %g\n", k.DCGain())

			return err
		},
	}
}
