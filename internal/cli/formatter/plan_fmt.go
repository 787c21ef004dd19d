package formatter

import (
	"fmt"
	"strings"

	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
)

// FormatProjection renders a cascading path projection as step cards, one
// per future semester.
func FormatProjection(resp *contract.ProjectionResponse, courses map[string]domain.Course) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s · Graduation Path", resp.StudentName)))
	b.WriteString("\n\n")

	if len(resp.AssumedPassed) > 0 {
		b.WriteString(Dim("Assuming this semester clears: ") + StyleFg.Render(strings.Join(resp.AssumedPassed, ", ")))
		b.WriteString("\n\n")
	}

	if len(resp.Steps) == 0 {
		b.WriteString(Dim("No semesters to project."))
		b.WriteString("\n")
	}

	for i, step := range resp.Steps {
		b.WriteString(formatStep(step, courses))
		if i < len(resp.Steps)-1 {
			b.WriteString("\n")
		}
	}

	writeWarnings(&b, resp.Warnings)

	return RenderBox("Path Projection", b.String())
}

func formatStep(step contract.ProjectionStep, courses map[string]domain.Course) string {
	var b strings.Builder

	title := fmt.Sprintf(
		"%s  %s",
		Bold(fmt.Sprintf("SEMESTER %d", step.Semester)),
		StyleBlue.Render(fmt.Sprintf("%s cr completed", FormatCredits(step.SimulatedCredits))),
	)
	if step.Note == "" {
		title += "  " + Dim(fmt.Sprintf("pool %d", step.PoolSize)) + "  " + SourceBadge(step.Source)
	}
	b.WriteString(title + "\n")

	if step.Note != "" {
		b.WriteString("   " + StyleYellow.Render(step.Note) + "\n")
		return b.String()
	}

	for _, code := range step.ChosenCodes {
		b.WriteString("   " + CourseLine(code, courses) + "\n")
	}
	if extra := len(step.Recommendations) - 1; extra > 0 {
		b.WriteString("   " + Dim(fmt.Sprintf("+%d alternative strategies", extra)) + "\n")
	}

	return b.String()
}
