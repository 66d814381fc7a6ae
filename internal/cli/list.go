package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-savgol/dsp/savgol"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stencil families and their window sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Family\tKind\tWindow sizes")
			fmt.Fprintln(tw, "------\t----\t------------")

			for _, f := range savgol.Families() {
				c, err := savgol.CatalogOf(f)
				if err != nil {
					return err
				}

				kind := "smoothing"
				if f.IsDerivative() {
					kind = "derivative"
				}

				sizes := make([]string, 0, len(c.Sizes()))
				for _, s := range c.Sizes() {
					sizes = append(sizes, fmt.Sprint(s))
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\n", f, kind, strings.Join(sizes, " "))
			}

			return tw.Flush()
		},
	}
}
