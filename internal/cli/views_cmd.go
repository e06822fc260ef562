package cli

import (
	"fmt"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/nav"
	"github.com/spf13/cobra"
)

func newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List every view and its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatViews())
			return nil
		},
	}
}

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <path>",
		Short: "Resolve a URL path to its view",
		Example: `  learnpath route /course/web-development-fundamentals/lesson
  learnpath route /nowhere`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := nav.Resolve(args[0])
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoute(args[0], r))
			return nil
		},
	}
}
