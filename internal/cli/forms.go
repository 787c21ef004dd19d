package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
)

// ffcsHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func ffcsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runRecommendForm fills the request interactively: student, credit window
// and preferences, then optional course pins from the eligible pool.
func runRecommendForm(ctx context.Context, app *App, req *contract.RecommendRequest) error {
	if req.StudentID == "" {
		form := selectStudentForm(ctx, app, &req.StudentID)
		if form == nil {
			return fmt.Errorf("no students in the roster")
		}
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := runPreferencesForm(req); err != nil {
		return err
	}

	eligible, err := app.Roster.EligibleCourses(ctx, req.StudentID, contract.CourseFilter{})
	if err != nil {
		return friendly(err)
	}
	if form := pinCoursesForm(eligible, &req.Selected); form != nil {
		if err := form.Run(); err != nil {
			return err
		}
	}

	return nil
}

// selectStudentForm creates a huh form to pick a student from the roster.
func selectStudentForm(ctx context.Context, app *App, result *string) *huh.Form {
	students := app.Roster.ListStudents(ctx)
	if len(students) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(students))
	for _, s := range students {
		label := fmt.Sprintf("%s · %s (semester %d)", s.ID, s.Name, s.Semester)
		options = append(options, huh.NewOption(label, s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Student?").
				Options(options...).
				Value(result),
		),
	).WithTheme(ffcsHuhTheme()).WithShowHelp(false)
}

// runPreferencesForm captures the credit window, workload and interests in
// one group, then writes the submitted values back into the request.
// Credit inputs accept empty to keep the current value.
func runPreferencesForm(req *contract.RecommendRequest) error {
	minStr := formatter.FormatCredits(req.Bounds.Min)
	maxStr := formatter.FormatCredits(req.Bounds.Max)
	workload := string(req.Workload)
	if workload == "" {
		workload = string(domain.WorkloadMedium)
	}
	interests := strings.Join(req.Interests, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum credits").
				Placeholder(minStr).
				Value(&minStr).
				Validate(validateCredits),
			huh.NewInput().
				Title("Maximum credits").
				Placeholder(maxStr).
				Value(&maxStr).
				Validate(validateCredits),
			huh.NewSelect[string]().
				Title("Workload preference").
				Options(
					huh.NewOption("Light", string(domain.WorkloadLow)),
					huh.NewOption("Medium", string(domain.WorkloadMedium)),
					huh.NewOption("Heavy", string(domain.WorkloadHigh)),
				).
				Value(&workload),
			huh.NewInput().
				Title("Interests (comma separated, optional)").
				Placeholder("systems, machine learning").
				Value(&interests),
		),
	).WithTheme(ffcsHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	req.Bounds.Min = parseCredits(minStr, req.Bounds.Min)
	req.Bounds.Max = parseCredits(maxStr, req.Bounds.Max)
	req.Workload = domain.WorkloadPreference(workload)
	if parts := splitCSV(interests); len(parts) > 0 {
		req.Interests = parts
	}
	return nil
}

// pinCoursesForm creates a multiselect over the eligible pool. Nil when the
// pool is empty.
func pinCoursesForm(eligible []domain.Course, result *[]string) *huh.Form {
	if len(eligible) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(eligible))
	for _, c := range eligible {
		label := fmt.Sprintf("%s · %s (%s cr)", c.Code, c.Name, formatter.FormatCredits(c.Credits))
		options = append(options, huh.NewOption(label, c.Code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pin courses (optional)").
				Options(options...).
				Value(result),
		),
	).WithTheme(ffcsHuhTheme()).WithShowHelp(false)
}

// confirmForm creates a huh form for a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(ffcsHuhTheme()).WithShowHelp(false)
}

// validateCredits accepts empty or a positive number.
func validateCredits(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// parseCredits parses s as positive credits, returning fallback if s is
// empty or invalid. Form validation has already vetted the string, so this
// is a safe conversion.
func parseCredits(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// splitCSV splits a comma-separated input into trimmed non-empty parts.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
