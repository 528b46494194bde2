package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/alexanderramin/futureself/internal/habitfile"
	"github.com/alexanderramin/futureself/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var (
		asJSON   bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-evaluate a habit file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			handler := func(ctx context.Context, s habitfile.Scenario, loadErr error) {
				if loadErr != nil {
					fmt.Fprintf(out, "%s %v\n", formatter.StyleRed.Render("✖"), loadErr)
					return
				}
				m, err := app.Simulation.Evaluate(ctx, s.HabitSnapshot)
				if err != nil {
					fmt.Fprintf(out, "%s %v\n", formatter.StyleRed.Render("✖"), err)
					return
				}
				if asJSON {
					view := newEvaluationView(s.HabitSnapshot, *m)
					view.Name = s.Name
					_ = writeJSON(out, view)
					return
				}
				fmt.Fprintf(out, "%s %s\n", formatter.Dim(app.now().Format("15:04:05")), formatter.Bold(s.Name))
				fmt.Fprint(out, formatter.FormatMetrics(s.HabitSnapshot, *m))
				fmt.Fprintln(out)
			}

			w := watch.New(args[0], handler,
				watch.WithDebounce(debounce),
				watch.WithLogger(app.logger()),
			)
			return w.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print each evaluation as JSON")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-reading the file")

	return cmd
}
