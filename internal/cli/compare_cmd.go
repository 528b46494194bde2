package cli

import (
	"fmt"

	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/habitfile"
	"github.com/spf13/cobra"
)

func newCompareCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare FILE...",
		Short: "Evaluate several habit files side by side",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := make([]habitfile.Scenario, 0, len(args))
			snapshots := make([]domain.HabitSnapshot, 0, len(args))
			for _, path := range args {
				s, err := habitfile.Load(path)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, s)
				snapshots = append(snapshots, s.HabitSnapshot)
			}

			results, err := app.Simulation.Compare(cmd.Context(), snapshots)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				views := make([]evaluationView, len(results))
				for i, m := range results {
					views[i] = newEvaluationView(snapshots[i], *m)
					views[i].Name = scenarios[i].Name
				}
				return writeJSON(out, views)
			}

			names := make([]string, len(scenarios))
			metrics := make([]domain.OutcomeMetrics, len(results))
			for i := range results {
				names[i] = scenarios[i].Name
				metrics[i] = *results[i]
			}
			fmt.Fprint(out, formatter.FormatComparison(names, metrics))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the evaluations as JSON")

	return cmd
}
