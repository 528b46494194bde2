package cli

import (
	"fmt"

	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/alexanderramin/futureself/internal/coach"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const messageWidth = 64

func newCoachCmd(app *App) *cobra.Command {
	var (
		src    habitSource
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Get a message from your future self",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			habits, _, err := src.resolve(ctx, cmd, app)
			if err != nil {
				return err
			}
			m, err := app.Simulation.Evaluate(ctx, habits)
			if err != nil {
				return err
			}

			svc := app.Coach
			if svc == nil {
				svc = coach.NewService(nil)
			}

			stop := func() {}
			if app.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Reaching your future self...")
			}
			msg, err := svc.FutureMessage(ctx, habits, *m)
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, msg)
			}
			fmt.Fprintln(out, formatFutureMessage(msg))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the message as JSON")

	return cmd
}

func formatFutureMessage(msg *coach.FutureMessage) string {
	title := "A message from future you"
	if msg.Year > 0 {
		title = fmt.Sprintf("A message from %d", msg.Year)
	}
	body := lipgloss.NewStyle().Width(messageWidth).Render(msg.Text)
	if msg.Focus != "" {
		body += "\n\n" + formatter.Bold("Focus: ") + msg.Focus
	}
	body += "\n\n" + formatter.Dim("source: "+string(msg.Source))
	return formatter.RenderBox(title, body)
}
