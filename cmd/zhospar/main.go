package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/adilzhanb/zhospar/internal/ai"
	"github.com/adilzhanb/zhospar/internal/cli"
	"github.com/adilzhanb/zhospar/internal/config"
	"github.com/adilzhanb/zhospar/internal/db"
	"github.com/adilzhanb/zhospar/internal/message"
	"github.com/adilzhanb/zhospar/internal/reminder"
	"github.com/adilzhanb/zhospar/internal/repository"
	"github.com/adilzhanb/zhospar/internal/service"
	"github.com/adilzhanb/zhospar/internal/transport"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger()
	slog.SetDefault(logger)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteProfileRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the generation subsystem
	aiCfg := ai.LoadConfig()
	var observer ai.Observer = ai.NoopObserver{}
	if aiCfg.LogCalls {
		observer = ai.NewLogObserver(os.Stderr)
	}
	client := ai.NewOllamaClient(aiCfg, observer)
	taskGen := ai.NewTaskGenerator(client)
	planGen := ai.NewPlanGenerator(client)

	// Wire services
	taskSvc := service.NewTaskService(profileRepo, planRepo, taskRepo, completionRepo, taskGen, uow)
	progressSvc := service.NewProgressService(profileRepo, planRepo, taskRepo, completionRepo)
	planSvc := service.NewPlanService(profileRepo, planRepo, planGen, uow)

	// Wire messaging and transport
	catalog, err := message.LoadCatalog()
	if err != nil {
		return err
	}
	composer := message.NewComposer(catalog, nil)

	var sender transport.Sender = transport.NoopSender{}
	if cfg.TelegramToken != "" {
		sender = transport.NewTelegramSender(transport.TelegramConfig{Token: cfg.TelegramToken})
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN not set; reminders will be discarded")
	}

	scheduler := reminder.NewScheduler(profileRepo, taskSvc, progressSvc, composer, sender, logger)

	app := &cli.App{
		Tasks:     taskSvc,
		Progress:  progressSvc,
		Plans:     planSvc,
		Profiles:  profileRepo,
		Scheduler: scheduler,
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds a text handler on interactive terminals and JSON
// otherwise, so daemon logs stay machine-readable.
func newLogger() *slog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
