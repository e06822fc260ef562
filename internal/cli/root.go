package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/learnpath/internal/config"
	"github.com/alexanderramin/learnpath/internal/fixtures"
	"github.com/alexanderramin/learnpath/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all services and settings used by CLI commands
// and the TUI.
type App struct {
	Plans    service.PlanService
	Courses  service.CourseService
	Fixtures *fixtures.Fixtures
	Config   config.Config
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "learnpath" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// TUI on interactive terminals.
func NewRootCmd(app *App) *cobra.Command {
	if app.Logger == nil {
		app.Logger = slog.New(slog.DiscardHandler)
	}

	root := &cobra.Command{
		Use:           "learnpath",
		Short:         "Generate personalized learning paths and browse courses",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app, "")
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newPlanCmd(app),
		newViewsCmd(),
		newRouteCmd(),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("tui requires an interactive terminal")
			}
			return runTUI(app, path)
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "start at this path, e.g. /dashboard or /course/<id>")
	return cmd
}

// runTUI starts the full-screen program. A non-empty path overrides the
// configured start path.
func runTUI(app *App, path string) error {
	if path != "" {
		app.Config.StartPath = path
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
