package formatter

import (
	"fmt"
	"strings"

	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
)

// FormatRecommend renders a recommendation response as a styled card.
// courses maps code to catalog course so lines can show names and credits;
// codes missing from the map render bare.
func FormatRecommend(resp *contract.RecommendResponse, courses map[string]domain.Course) string {
	var b strings.Builder

	b.WriteString(SourceBadge(resp.Source))
	b.WriteString("\n\n")
	b.WriteString(Header(fmt.Sprintf("%s · Semester %d", resp.StudentName, resp.Semester)))
	b.WriteString("\n\n")

	if len(resp.Recommendations) == 0 {
		b.WriteString(Dim("No strategies available."))
		b.WriteString("\n")
	}

	for i, rec := range resp.Recommendations {
		b.WriteString(formatStrategy(rec, courses))
		if i < len(resp.Recommendations)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	summary := fmt.Sprintf(
		"%s  %s  %s",
		StyleGreen.Render(fmt.Sprintf("%d strategies", len(resp.Recommendations))),
		StyleDim.Render("|"),
		StyleDim.Render(fmt.Sprintf("pool: %d eligible courses", resp.PoolSize)),
	)
	b.WriteString(summary + "\n")

	writeWarnings(&b, resp.Warnings)

	return RenderBox("Course Recommendations", b.String())
}

// formatStrategy renders one ranked strategy with its course lines.
func formatStrategy(rec domain.Recommendation, courses map[string]domain.Course) string {
	var b strings.Builder

	titleLine := fmt.Sprintf(
		"%s %s  %s",
		Bold(fmt.Sprintf("%d.", rec.Rank)),
		StyleFg.Render(rec.Strategy),
		StyleBlue.Render(fmt.Sprintf("(%s cr)", FormatCredits(rec.TotalCredits))),
	)
	if rec.Suitability != "" {
		titleLine += "  " + Dim(rec.Suitability)
	}
	b.WriteString(titleLine + "\n")

	for _, code := range rec.Courses {
		b.WriteString("   " + CourseLine(code, courses))
		if reason := rec.CourseReasons[code]; reason != "" {
			b.WriteString("\n      " + Dim("↳ "+reason))
		}
		b.WriteString("\n")
	}

	if parts := breakdownParts(rec.Breakdown); len(parts) > 0 {
		b.WriteString("   " + Dim(strings.Join(parts, ", ")) + "\n")
	}
	if len(rec.Breakdown.FailedRetakes) > 0 {
		b.WriteString("   " + StyleRed.Render("Retakes: "+strings.Join(rec.Breakdown.FailedRetakes, ", ")) + "\n")
	}
	if rec.Reasoning != "" {
		b.WriteString("   " + Dim(rec.Reasoning) + "\n")
	}

	return b.String()
}

// CourseLine renders "CODE  Name  4 cr" with a catalog lookup, or just the
// code when the catalog does not know it.
func CourseLine(code string, courses map[string]domain.Course) string {
	course, ok := courses[code]
	if !ok {
		return StyleBlue.Render(code)
	}
	return fmt.Sprintf(
		"%s  %s  %s",
		StyleBlue.Render(code),
		StyleFg.Render(course.Name),
		Dim(FormatCredits(course.Credits)+" cr"),
	)
}

func breakdownParts(bd domain.Breakdown) []string {
	var parts []string
	if n := len(bd.Mandatory); n > 0 {
		parts = append(parts, fmt.Sprintf("%d mandatory", n))
	}
	if n := len(bd.Electives); n > 0 {
		parts = append(parts, fmt.Sprintf("%d electives", n))
	}
	if n := len(bd.Projects); n > 0 {
		parts = append(parts, fmt.Sprintf("%d project", n))
	}
	return parts
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
}
