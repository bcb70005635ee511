package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/janani/internal/cli"
	"github.com/alexanderramin/janani/internal/config"
	"github.com/alexanderramin/janani/internal/logging"
	"github.com/alexanderramin/janani/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config: defaults, then janani.yaml or $JANANI_CONFIG, then JANANI_* env.
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Wire services
	observer := service.NewZapUseCaseObserver(logger)

	app := &cli.App{
		Timeline:  service.NewTimelineService(observer),
		Risk:      service.NewRiskGuideService(observer),
		Config:    cfg,
		Logger:    logger,
		TermWidth: cli.TerminalWidth,
	}

	// The bare command opens the TUI only when stdin and stdout are both
	// terminals.
	app.IsInteractive = cli.StdioInteractive

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
