package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var colorDisabled bool

// DisableColor strips every style so output is plain text even on a
// terminal. Used by the --no-color flag; call before rendering anything.
func DisableColor() {
	colorDisabled = true
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleRed = plain
	StyleBlue = plain
	StylePurple = plain
	StyleDim = plain
	StyleFg = plain
	StyleHeader = plain
	StyleBold = plain
}

// RiskColor returns the lipgloss style corresponding to the given risk level.
func RiskColor(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskHigh:
		return StyleRed
	case domain.RiskMedium:
		return StyleYellow
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskIndicator returns a colored risk indicator string such as "● HIGH".
func RiskIndicator(risk domain.RiskLevel) string {
	switch risk {
	case domain.RiskHigh:
		return StyleRed.Render("● HIGH")
	case domain.RiskMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.RiskLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// TrendBadge returns a colored GPA trend indicator such as "↑ improving".
func TrendBadge(trend domain.GPATrend) string {
	switch trend {
	case domain.TrendImproving:
		return StyleGreen.Render("↑ improving")
	case domain.TrendDeclining:
		return StyleRed.Render("↓ declining")
	case domain.TrendStable:
		return StyleBlue.Render("→ stable")
	default:
		return StyleDim.Render(string(trend))
	}
}

// SourceBadge marks where a recommendation set came from. The fallback
// badge is loud on purpose: deterministic plans mean the advisor was
// skipped or failed.
func SourceBadge(source domain.RecommendationSource) string {
	switch source {
	case domain.SourceAdvisor:
		return StylePurple.Render("● ADVISOR")
	case domain.SourceFallback:
		return StyleYellow.Render("▲ FALLBACK")
	default:
		return StyleDim.Render(strings.ToUpper(string(source)))
	}
}

// PaceBadge returns a colored graduation-pace indicator.
func PaceBadge(level domain.FeasibilityLevel) string {
	switch level {
	case domain.PaceAtRisk:
		return StyleRed.Render("▲ AT RISK")
	case domain.PaceTight:
		return StyleYellow.Render("● TIGHT")
	case domain.PaceOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render(strings.ToUpper(string(level)))
	}
}

// VerdictBadge colors an advisor feasibility verdict.
func VerdictBadge(verdict string) string {
	switch verdict {
	case "COMFORTABLE":
		return StyleGreen.Render(verdict)
	case "CHALLENGING":
		return StyleBlue.Render(verdict)
	case "DIFFICULT":
		return StyleYellow.Render(verdict)
	case "CRITICAL":
		return StyleRed.Render(verdict)
	default:
		return StyleDim.Render(verdict)
	}
}

// TypeLabel returns the short colored label for a course type: mandatory
// types in blue, electives in purple, projects in the header orange.
func TypeLabel(t domain.CourseType) string {
	switch t {
	case domain.CourseFoundation:
		return StyleBlue.Render("FOUND")
	case domain.CourseDisciplineCore:
		return StyleBlue.Render("CORE")
	case domain.CourseDisciplineLinked:
		return StyleBlue.Render("LINKED")
	case domain.CourseDisciplineElective:
		return StylePurple.Render("ELEC-D")
	case domain.CourseOpenElective:
		return StylePurple.Render("ELEC-O")
	case domain.CourseProject:
		return StyleHeader.Render("PROJ")
	default:
		return StyleDim.Render(string(t))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
