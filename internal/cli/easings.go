package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tempo"
)

func newEasingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "easings",
		Short: "List the easing names accepted in timelines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := tempo.EasingNames()
			slices.Sort(names)
			for _, name := range names {
				fn, _ := tempo.EasingByName(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s f(0.5)=%.4f\n", name, fn(0.5))
			}
			return nil
		},
	}
}
