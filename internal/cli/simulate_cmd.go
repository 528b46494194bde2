package cli

import (
	"fmt"

	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *App) *cobra.Command {
	var (
		src    habitSource
		asJSON bool
		save   bool
	)

	cmd := &cobra.Command{
		Use:     "simulate",
		Aliases: []string{"sim"},
		Short:   "Evaluate habits and project five years ahead",
		Example: `  futureself simulate --sleep 6 --stress 8
  futureself simulate -f exam-week.yaml --json
  futureself simulate -p ana --study 15 --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if save && src.profile == "" {
				return fmt.Errorf("--save requires --profile")
			}

			habits, profile, err := src.resolve(ctx, cmd, app)
			if err != nil {
				return err
			}

			view := newEvaluationView(habits, domain.OutcomeMetrics{})
			if save {
				rec, err := app.Simulation.EvaluateAndRecord(ctx, profile.ID, habits)
				if err != nil {
					return err
				}
				view.Metrics = rec.Metrics
				view.RecordID = rec.ID
			} else {
				m, err := app.Simulation.Evaluate(ctx, habits)
				if err != nil {
					return err
				}
				view.Metrics = *m
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, view)
			}
			fmt.Fprint(out, formatter.FormatMetrics(habits, view.Metrics))
			if view.RecordID != "" {
				fmt.Fprintf(out, "\n%s %s\n", formatter.Dim("Saved to history for @"+profile.Username+":"), view.RecordID)
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the evaluation as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Record the evaluation and update the profile's habits")

	return cmd
}
