package formatter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
)

// FormatPlanSummary renders the banner line and headline numbers of a plan.
func FormatPlanSummary(plan *domain.CoursePlan) string {
	req := plan.Request
	var b strings.Builder
	b.WriteString(StyleHeader.Render(strings.TrimSpace(req.SkillName)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
		LevelBadge(req.CurrentLevel), Dim("→"), LevelBadge(req.TargetLevel),
		Dim(fmt.Sprintf("%d hrs/week", req.WeeklyHours))))
	b.WriteString(Dim("Your personalized learning path"))
	b.WriteString("\n\n")
	b.WriteString(RenderStats(
		[]string{"Timeline", "Total Time", "Modules", "Lessons"},
		[]string{
			Plural(plan.EstimatedWeeks, "week"),
			Plural(plan.TotalHours, "hour"),
			Plural(len(plan.Modules), "module"),
			Plural(plan.LessonCount(), "lesson"),
		},
	))
	return b.String()
}

// PlanTree turns a plan into outline rows: each module followed by its
// lessons.
func PlanTree(plan *domain.CoursePlan) []TreeItem {
	var items []TreeItem
	for _, m := range plan.Modules {
		items = append(items, TreeItem{
			Title:  fmt.Sprintf("%d. %s", m.Sequence, m.Title),
			Detail: m.Duration.String(),
		})
		for i, l := range m.Lessons {
			items = append(items, TreeItem{
				Title:  l.Title,
				Icon:   KindIcon(l.Kind),
				Level:  1,
				IsLast: i == len(m.Lessons)-1,
				Detail: FormatDuration(l.Duration),
			})
		}
	}
	return items
}

// FormatPlan renders a full plan for the terminal.
func FormatPlan(plan *domain.CoursePlan) string {
	var b strings.Builder
	b.WriteString(FormatPlanSummary(plan))
	b.WriteString("\n\n")
	b.WriteString(Header("Course Modules"))
	b.WriteString("\n")
	b.WriteString(RenderTree(PlanTree(plan)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Complete all modules to earn your certificate and reach %s level.",
		plan.Request.TargetLevel.Label())))
	b.WriteString("\n")
	return b.String()
}

// PlanMarkdown renders a plan as a Markdown document for export.
func PlanMarkdown(plan *domain.CoursePlan) string {
	req := plan.Request
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", strings.TrimSpace(req.SkillName))
	fmt.Fprintf(&b, "%s → %s · %d hrs/week\n\n", req.CurrentLevel.Label(), req.TargetLevel.Label(), req.WeeklyHours)
	fmt.Fprintf(&b, "- **Timeline:** %s\n", Plural(plan.EstimatedWeeks, "week"))
	fmt.Fprintf(&b, "- **Total time:** %s\n", Plural(plan.TotalHours, "hour"))
	fmt.Fprintf(&b, "- **Modules:** %d\n", len(plan.Modules))

	for _, m := range plan.Modules {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", m.Sequence, m.Title)
		fmt.Fprintf(&b, "_%s_\n\n", m.Duration)
		for _, l := range m.Lessons {
			fmt.Fprintf(&b, "- %s (%s, %s)\n", l.Title, l.Kind, FormatDuration(l.Duration))
		}
	}

	counts := plan.CountByKind()
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	b.WriteString("\n---\n\n")
	for i, k := range kinds {
		if i > 0 {
			b.WriteString(" · ")
		}
		fmt.Fprintf(&b, "%d %s", counts[domain.LessonKind(k)], k)
	}
	b.WriteString("\n")
	return b.String()
}

type planJSON struct {
	Skill          string       `json:"skill"`
	CurrentLevel   string       `json:"current_level"`
	TargetLevel    string       `json:"target_level"`
	WeeklyHours    int          `json:"weekly_hours"`
	EstimatedWeeks int          `json:"estimated_weeks"`
	TotalHours     int          `json:"total_hours"`
	Modules        []moduleJSON `json:"modules"`
}

type moduleJSON struct {
	Sequence int          `json:"sequence"`
	Tier     string       `json:"tier"`
	Title    string       `json:"title"`
	MinHours int          `json:"min_hours"`
	MaxHours int          `json:"max_hours,omitempty"`
	Lessons  []lessonJSON `json:"lessons"`
}

type lessonJSON struct {
	Title   string `json:"title"`
	Kind    string `json:"kind"`
	Minutes int    `json:"minutes"`
}

// PlanJSON encodes a plan as indented JSON for export.
func PlanJSON(plan *domain.CoursePlan) ([]byte, error) {
	out := planJSON{
		Skill:          strings.TrimSpace(plan.Request.SkillName),
		CurrentLevel:   string(plan.Request.CurrentLevel),
		TargetLevel:    string(plan.Request.TargetLevel),
		WeeklyHours:    plan.Request.WeeklyHours,
		EstimatedWeeks: plan.EstimatedWeeks,
		TotalHours:     plan.TotalHours,
		Modules:        make([]moduleJSON, 0, len(plan.Modules)),
	}
	for _, m := range plan.Modules {
		mj := moduleJSON{
			Sequence: m.Sequence,
			Tier:     string(m.Tier),
			Title:    m.Title,
			MinHours: m.Duration.Min,
			MaxHours: m.Duration.Max,
			Lessons:  make([]lessonJSON, 0, len(m.Lessons)),
		}
		for _, l := range m.Lessons {
			mj.Lessons = append(mj.Lessons, lessonJSON{
				Title:   l.Title,
				Kind:    string(l.Kind),
				Minutes: int(l.Duration.Minutes()),
			})
		}
		out.Modules = append(out.Modules, mj)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	return append(data, '\n'), nil
}
