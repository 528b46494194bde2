package cli

import (
	"time"

	"github.com/alexanderramin/futureself/internal/coach"
	"github.com/alexanderramin/futureself/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Simulation service.SimulationService
	Profiles   service.ProfileService
	Progress   service.ProgressService
	Coach      coach.Service

	// CompressArchives selects zstd for history export.
	CompressArchives bool

	Logger logrus.FieldLogger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now is the clock used for relative timestamps. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() logrus.FieldLogger {
	if a.Logger != nil {
		return a.Logger
	}
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

// NewRootCmd creates the top-level "futureself" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "futureself",
		Short:         "See where your habits lead in five years",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSimulateCmd(app),
		newImpactCmd(app),
		newCompareCmd(app),
		newWatchCmd(app),
		newProfileCmd(app),
		newActivityCmd(app),
		newHistoryCmd(app),
		newCoachCmd(app),
	)

	return root
}
