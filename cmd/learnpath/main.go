package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/learnpath/internal/cli"
	"github.com/alexanderramin/learnpath/internal/config"
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/logging"
	"github.com/alexanderramin/learnpath/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Options{
		File:       cfg.LogFile,
		Level:      level,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	defer logger.Close()

	// Embedded fixtures unless a replacement document is configured.
	var fx *fixtures.Fixtures
	if cfg.FixturesPath != "" {
		fx, err = fixtures.LoadFile(cfg.FixturesPath)
	} else {
		fx, err = fixtures.Load()
	}
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}

	// Wire services
	courses := service.NewCourseService(fx)
	app := &cli.App{
		Plans:    service.NewPlanService(courses, service.NewLogUseCaseObserver(logger.Logger)),
		Courses:  courses,
		Fixtures: fx,
		Config:   cfg,
		Logger:   logger.Logger,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Info("starting", "args", os.Args[1:])
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// configPath returns LEARNPATH_CONFIG, or the user config file when it
// exists. An empty result means defaults and environment only.
func configPath() string {
	if p := os.Getenv("LEARNPATH_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "learnpath", "config.toml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
