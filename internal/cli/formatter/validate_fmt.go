package formatter

import (
	"fmt"
	"strings"

	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
)

const creditBarWidth = 10

// FormatValidate renders a selection validation report: verdict banner,
// credit fill, rule errors and warnings, graduation pace, and the advisor
// note when one was produced.
func FormatValidate(resp *contract.ValidateResponse, bounds domain.CreditBounds) string {
	var b strings.Builder

	if resp.Report.Valid {
		b.WriteString(StyleGreen.Render("✔ VALID") + Dim("  ready to register"))
	} else {
		b.WriteString(StyleRed.Render("✖ INVALID") + Dim(fmt.Sprintf("  %d rule errors", len(resp.Report.Errors))))
	}
	b.WriteString("\n\n")

	b.WriteString(Dim("Student: ") + StyleFg.Render(resp.StudentName))
	b.WriteString("\n")
	b.WriteString(Dim("Load:    ") + CreditBar(resp.TotalCredits, bounds.Max, creditBarWidth))
	b.WriteString("\n")

	if len(resp.Report.Errors) > 0 {
		b.WriteString("\n")
		for _, e := range resp.Report.Errors {
			b.WriteString(StyleRed.Render("  ✗ "+e) + "\n")
		}
	}

	writeWarnings(&b, resp.Report.Warnings)

	b.WriteString("\n")
	b.WriteString(formatPace(resp.Report.Feasibility))
	b.WriteString("\n")

	if resp.Note != nil {
		b.WriteString("\n")
		b.WriteString(formatNote(resp.Note))
	}

	return RenderBox("Selection Report", b.String())
}

func formatPace(f contract.FeasibilityReport) string {
	detail := fmt.Sprintf(
		"%s mandatory credits left, %d semesters to go",
		FormatCredits(f.RemainingMandatory), f.RemainingSemesters,
	)
	if f.RemainingSemesters > 0 {
		detail += fmt.Sprintf(", %.1f cr per semester needed", f.PerSemesterNeed)
	}
	return fmt.Sprintf("%s  %s", PaceBadge(f.Level), Dim(detail))
}

func formatNote(note *contract.FeasibilityNote) string {
	var b strings.Builder

	b.WriteString(Header("Advisor Note"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", VerdictBadge(note.Verdict), SourceBadge(note.Source)))

	for _, c := range note.Concerns {
		b.WriteString("  " + Dim("• "+c) + "\n")
	}
	for _, s := range note.Suggestions {
		b.WriteString("  " + StyleBlue.Render("→ ") + StyleFg.Render(s) + "\n")
	}

	return b.String()
}
