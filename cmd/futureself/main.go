package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/futureself/internal/cli"
	"github.com/alexanderramin/futureself/internal/coach"
	"github.com/alexanderramin/futureself/internal/config"
	"github.com/alexanderramin/futureself/internal/db"
	"github.com/alexanderramin/futureself/internal/llm"
	"github.com/alexanderramin/futureself/internal/logging"
	"github.com/alexanderramin/futureself/internal/repository"
	"github.com/alexanderramin/futureself/internal/service"
	"github.com/alexanderramin/futureself/internal/simulation"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var logger *logrus.Logger
	if cfg.LogFormat == "json" {
		logger = logging.NewJSON(cfg.LogLevel, os.Stderr)
	} else {
		logger = logging.New(cfg.LogLevel, os.Stderr)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteProfileRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	evaluationRepo := repository.NewSQLiteEvaluationRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)
	engine := simulation.NewEngine(cfg.ResolvedBaseYear(time.Now()))

	app := &cli.App{
		Simulation:       service.NewSimulationService(evaluationRepo, uow, engine, observer),
		Profiles:         service.NewProfileService(profileRepo, uow, observer),
		Progress:         service.NewProgressService(activityRepo, uow, observer),
		CompressArchives: cfg.Archive.Compress,
		Logger:           logger,
	}

	// Detect interactive terminal for forms and the coach spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The coach always works; the LLM only upgrades its messages.
	var llmClient llm.LLMClient
	llmCfg := cfg.LLMConfig()
	if llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(logger)
		}
		client, err := llm.NewClient(ctx, llmCfg, llmObserver)
		if err != nil {
			logger.WithError(err).Warn("llm disabled")
		} else {
			llmClient = client
		}
	}
	app.Coach = coach.NewService(llmClient)

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
