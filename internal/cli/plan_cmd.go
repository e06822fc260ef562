package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/cli/formatter"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// levelValue is a pflag.Value that only accepts proficiency level names.
type levelValue struct {
	level *domain.ProficiencyLevel
}

var _ pflag.Value = levelValue{}

func (v levelValue) String() string {
	if v.level == nil {
		return ""
	}
	return string(*v.level)
}

func (v levelValue) Set(s string) error {
	l, err := domain.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*v.level = l
	return nil
}

func (levelValue) Type() string { return "level" }

func newPlanCmd(app *App) *cobra.Command {
	req := domain.CoursePlanRequest{
		WeeklyHours:  app.Config.DefaultWeeklyHours,
		CurrentLevel: domain.LevelBeginner,
		TargetLevel:  domain.LevelIntermediate,
	}
	if req.WeeklyHours == 0 {
		req.WeeklyHours = domain.DefaultWeeklyHours
	}
	var format string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a learning path and print it",
		Example: `  learnpath plan --skill "Machine Learning" --from beginner --to advanced --hours 8
  learnpath plan --skill Go --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "", "text":
				fmt.Fprint(out, formatter.FormatPlan(plan))
			case "markdown", "md":
				fmt.Fprint(out, formatter.PlanMarkdown(plan))
			case "json":
				data, err := formatter.PlanJSON(plan)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			default:
				return fmt.Errorf("unknown format %q (want text, markdown or json)", format)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.SkillName, "skill", "", "skill to learn (required)")
	flags.Var(levelValue{&req.CurrentLevel}, "from", "current level: beginner, elementary, intermediate, advanced, expert")
	flags.Var(levelValue{&req.TargetLevel}, "to", "target level")
	flags.IntVar(&req.WeeklyHours, "hours", req.WeeklyHours, "hours per week")
	flags.StringVar(&format, "format", "text", "output format: text, markdown, json")
	_ = cmd.MarkFlagRequired("skill")

	return cmd
}
