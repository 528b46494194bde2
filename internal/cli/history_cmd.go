package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/futureself/internal/archive"
	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// resolveProfileID maps an optional --profile value to a profile ID.
// Empty input means "all profiles".
func resolveProfileID(ctx context.Context, app *App, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	p, err := app.Profiles.Resolve(ctx, ref)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func newHistoryCmd(app *App) *cobra.Command {
	var (
		profileRef string
		limit      int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved evaluations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			profileID, err := resolveProfileID(ctx, app, profileRef)
			if err != nil {
				return err
			}
			records, err := app.Simulation.History(ctx, profileID, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, records)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No evaluations saved yet.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatHistory(records, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileRef, "profile", "p", "", "Only this profile's evaluations")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the records as JSON")

	cmd.AddCommand(
		newHistoryExportCmd(app),
		newHistoryImportCmd(app),
		newHistoryPruneCmd(app),
	)

	return cmd
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var (
		profileRef string
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write saved evaluations to a JSONL archive",
		Long: `Write saved evaluations to a JSONL archive.

Archives are zstd-compressed and get a .zst suffix unless compression is
disabled in the config or with --plain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			profileID, err := resolveProfileID(ctx, app, profileRef)
			if err != nil {
				return err
			}
			records, err := app.Simulation.History(ctx, profileID, 0)
			if err != nil {
				return err
			}
			dest, err := archive.ExportFile(args[0], records, app.CompressArchives && !plain)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d evaluations to %s\n", len(records), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileRef, "profile", "p", "", "Only this profile's evaluations")
	cmd.Flags().BoolVar(&plain, "plain", false, "Write uncompressed JSONL")

	return cmd
}

func newHistoryImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load evaluations from a JSONL archive",
		Long: `Load evaluations from a JSONL archive, compressed or not.

Records already present are skipped. Records whose profile no longer exists
are kept without a profile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := archive.ImportFile(args[0])
			if err != nil {
				return err
			}
			n, err := app.Simulation.Import(cmd.Context(), records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d evaluations\n", n, len(records))
			return nil
		},
	}
}

func newHistoryPruneCmd(app *App) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete evaluations older than a given age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}
			n, err := app.Simulation.Prune(cmd.Context(), app.now().UTC().Add(-olderThan))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d evaluations\n", n)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Age threshold, e.g. 720h")
	_ = cmd.MarkFlagRequired("older-than")

	return cmd
}
