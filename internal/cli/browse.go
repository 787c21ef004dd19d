package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/service"
)

// browseKeyMap holds the strategy browser bindings.
type browseKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Validate key.Binding
	Slots    key.Binding
	Quit     key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Validate: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "validation")),
		Slots:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "slots")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// checkLoadedMsg carries a lazily fetched validation report for one strategy.
type checkLoadedMsg struct {
	idx  int
	resp *contract.ValidateResponse
	err  error
}

// browseModel is the bubbletea model for flipping through recommendation
// strategies, with toggleable validation and slot panels.
type browseModel struct {
	resp     *contract.RecommendResponse
	courses  map[string]domain.Course
	validate service.ValidateService
	bounds   domain.CreditBounds
	keys     browseKeyMap

	idx        int
	showChecks bool
	showSlots  bool
	checks     map[int]*contract.ValidateResponse
	checkErrs  map[int]error
	width      int
}

func newBrowseModel(
	resp *contract.RecommendResponse,
	courses map[string]domain.Course,
	validate service.ValidateService,
	bounds domain.CreditBounds,
) browseModel {
	return browseModel{
		resp:      resp,
		courses:   courses,
		validate:  validate,
		bounds:    bounds,
		keys:      defaultBrowseKeys(),
		checks:    make(map[int]*contract.ValidateResponse),
		checkErrs: make(map[int]error),
	}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case checkLoadedMsg:
		if msg.err != nil {
			m.checkErrs[msg.idx] = msg.err
		} else {
			m.checks[msg.idx] = msg.resp
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			if m.idx > 0 {
				m.idx--
			}
			return m, m.maybeCheck()
		case key.Matches(msg, m.keys.Next):
			if m.idx < len(m.resp.Recommendations)-1 {
				m.idx++
			}
			return m, m.maybeCheck()
		case key.Matches(msg, m.keys.Validate):
			m.showChecks = !m.showChecks
			return m, m.maybeCheck()
		case key.Matches(msg, m.keys.Slots):
			m.showSlots = !m.showSlots
			return m, nil
		}
	}
	return m, nil
}

// maybeCheck fetches the validation report for the active strategy when
// the panel is open and no report is cached yet.
func (m browseModel) maybeCheck() tea.Cmd {
	if !m.showChecks || len(m.resp.Recommendations) == 0 {
		return nil
	}
	if m.checks[m.idx] != nil || m.checkErrs[m.idx] != nil {
		return nil
	}
	idx := m.idx
	rec := m.resp.Recommendations[idx]
	return func() tea.Msg {
		req := contract.NewValidateRequest(m.resp.StudentID, rec.Courses)
		req.Bounds = m.bounds
		req.SlotAssignments = rec.SlotAssignments
		req.Narrative = false
		resp, err := m.validate.Validate(context.Background(), req)
		return checkLoadedMsg{idx: idx, resp: resp, err: err}
	}
}

func (m browseModel) View() string {
	if len(m.resp.Recommendations) == 0 {
		return formatter.Dim("No strategies to browse. Press q to quit.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	rec := m.resp.Recommendations[m.idx]
	b.WriteString(m.cardView(rec))

	if m.showChecks {
		b.WriteString("\n" + m.checkView())
	}
	if m.showSlots {
		b.WriteString("\n" + formatter.Header("Slots") + "\n")
		b.WriteString(formatter.FormatSlotGrid(rec.SlotAssignments))
	}

	b.WriteString("\n" + formatter.Dim("← → strategies · v validation · s slots · q quit") + "\n")
	return b.String()
}

func (m browseModel) tabsView() string {
	activeTab := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)

	tabs := make([]string, 0, len(m.resp.Recommendations))
	for i, rec := range m.resp.Recommendations {
		label := fmt.Sprintf("%d · %s", rec.Rank, rec.Strategy)
		if i == m.idx {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}
	return strings.Join(tabs, formatter.Dim("   "))
}

func (m browseModel) cardView(rec domain.Recommendation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		"%s  %s  %s\n\n",
		formatter.Bold(rec.Strategy),
		formatter.StyleBlue.Render(fmt.Sprintf("(%s cr)", formatter.FormatCredits(rec.TotalCredits))),
		formatter.SourceBadge(m.resp.Source),
	))
	for _, code := range rec.Courses {
		b.WriteString("  " + formatter.CourseLine(code, m.courses))
		if reason := rec.CourseReasons[code]; reason != "" {
			b.WriteString("\n    " + formatter.Dim("↳ "+reason))
		}
		b.WriteString("\n")
	}
	if rec.Reasoning != "" {
		b.WriteString("\n  " + formatter.Dim(rec.Reasoning) + "\n")
	}

	return b.String()
}

func (m browseModel) checkView() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Validation") + "\n")

	if err := m.checkErrs[m.idx]; err != nil {
		b.WriteString(formatter.StyleRed.Render("validation failed: "+err.Error()) + "\n")
		return b.String()
	}
	check := m.checks[m.idx]
	if check == nil {
		b.WriteString(formatter.Dim("checking the selection...") + "\n")
		return b.String()
	}

	if check.Report.Valid {
		b.WriteString(formatter.StyleGreen.Render("✔ VALID") + "\n")
	} else {
		b.WriteString(formatter.StyleRed.Render("✖ INVALID") + "\n")
		for _, e := range check.Report.Errors {
			b.WriteString(formatter.StyleRed.Render("  ✗ "+e) + "\n")
		}
	}
	for _, w := range check.Report.Warnings {
		b.WriteString(formatter.StyleYellow.Render("  WARNING: "+w) + "\n")
	}
	return b.String()
}

// runBrowse opens the strategy browser on an alternate screen.
func runBrowse(app *App, resp *contract.RecommendResponse, bounds domain.CreditBounds) error {
	model := newBrowseModel(resp, courseIndex(context.Background(), app), app.Validate, bounds)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
