package cli

import (
	"fmt"

	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/alexanderramin/futureself/internal/simulation"
	"github.com/spf13/cobra"
)

func newImpactCmd(app *App) *cobra.Command {
	var (
		src   habitSource
		brief bool
	)

	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Show the single habit change with the biggest impact",
		Long: `Show the single habit change with the biggest impact.

Rules are checked top to bottom and the first match wins, so a later rule
with a higher priority can be shadowed by an earlier one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, _, err := src.resolve(cmd.Context(), cmd, app)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			impact := simulation.RankImpact(habits)
			if brief {
				fmt.Fprintln(out, impact)
				return nil
			}
			fmt.Fprintf(out, "%s %s\n\n", formatter.Bold("Biggest impact:"), formatter.ImpactIndicator(impact))
			fmt.Fprint(out, formatter.FormatImpactRules(simulation.ImpactRules(), habits))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVarP(&brief, "quiet", "q", false, "Print only the label")

	return cmd
}
