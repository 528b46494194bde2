package cli

import (
	"fmt"

	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/habitfile"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage user profiles",
	}

	cmd.AddCommand(
		newProfileCreateCmd(app),
		newProfileShowCmd(app),
		newProfileListCmd(app),
		newProfileSetHabitsCmd(app),
		newProfileExportHabitsCmd(app),
		newProfileDeleteCmd(app),
	)

	return cmd
}

func newProfileCreateCmd(app *App) *cobra.Command {
	var (
		first, last, role, detail string
		age                       int
	)

	cmd := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Create a new profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.NewUserProfile(args[0], first, last, age, app.now().UTC())
			if err != nil {
				return err
			}
			if err := p.SetStudyProfile(domain.StudyRole(role), detail, p.CreatedAt); err != nil {
				return err
			}
			if err := app.Profiles.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile @%s %s\n", p.Username, formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().IntVar(&age, "age", 0, "Age")
	cmd.Flags().StringVar(&role, "role", "", "Study role (School, College or Job)")
	cmd.Flags().StringVar(&detail, "detail", "", "What you study or work on")

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show USERNAME|ID",
		Short: "Show a profile's level, attributes and habits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(profiles) == 0 {
				fmt.Fprintln(out, "No profiles found.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatProfileList(profiles))
			return nil
		},
	}
}

func newProfileSetHabitsCmd(app *App) *cobra.Command {
	var flags habitFlags

	cmd := &cobra.Command{
		Use:   "set-habits USERNAME|ID",
		Short: "Replace a profile's saved habits",
		Long: `Replace a profile's saved habits.

Fields not given as flags or in --file keep their current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			habits, err := flags.resolve(cmd.Flags(), p.Habits)
			if err != nil {
				return err
			}
			if _, err := app.Profiles.SetHabits(ctx, p.ID, habits); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated habits for @%s\n  %s\n", p.Username, formatter.FormatHabits(habits))
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newProfileExportHabitsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export-habits USERNAME|ID FILE",
		Short: "Write a profile's saved habits to a YAML habit file",
		Long: `Write a profile's saved habits to a YAML habit file.

The file can be passed to simulate --file, compare and watch.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			scenario := habitfile.Scenario{Name: p.Username, HabitSnapshot: p.Habits}
			if err := habitfile.Write(args[1], scenario); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote habits for @%s to %s\n", p.Username, args[1])
			return nil
		},
	}
}

func newProfileDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete USERNAME|ID",
		Short: "Delete a profile and its activity log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete without --force")
			}
			ctx := cmd.Context()
			p, err := app.Profiles.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Profiles.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile @%s\n", p.Username)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")

	return cmd
}
