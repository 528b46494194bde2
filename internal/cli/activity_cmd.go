package cli

import (
	"fmt"

	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Log study, workout and meditation sessions",
	}

	cmd.AddCommand(
		newActivityLogCmd(app),
		newActivityListCmd(app),
		newActivitySummaryCmd(app),
	)

	return cmd
}

func newActivityLogCmd(app *App) *cobra.Command {
	var profileRef, typ, desc string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a completed activity and earn XP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := domain.ParseActivityType(typ)
			if err != nil {
				return err
			}
			p, err := app.Profiles.Resolve(ctx, profileRef)
			if err != nil {
				return err
			}
			res, err := app.Progress.CompleteActivity(ctx, p.ID, t, desc)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityReward(t, res.Reward, res.Stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileRef, "profile", "p", "", "Profile username or ID")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "Activity type (study, workout, meditate)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Short description")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var (
		profileRef string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Resolve(ctx, profileRef)
			if err != nil {
				return err
			}
			logs, err := app.Progress.RecentActivity(ctx, p.ID, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No activities logged yet.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatActivityList(logs, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileRef, "profile", "p", "", "Profile username or ID")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 for all)")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func newActivitySummaryCmd(app *App) *cobra.Command {
	var profileRef string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show lifetime activity counts and the last seven days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Resolve(ctx, profileRef)
			if err != nil {
				return err
			}
			sum, err := app.Progress.Summary(ctx, p.ID)
			if err != nil {
				return err
			}
			counts := make(map[domain.ActivityType]int, len(sum.Counts))
			for _, c := range sum.Counts {
				counts[c.Type] = c.Count
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(sum.Profile, counts, sum.WeekXP, sum.WeekLogs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileRef, "profile", "p", "", "Profile username or ID")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
