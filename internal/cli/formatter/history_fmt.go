package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ffcs-tools/ffcs/internal/history"
)

// FormatHistory renders saved recommendation runs, newest first.
func FormatHistory(entries []history.Entry) string {
	headers := []string{"WHEN", "SEM", "SOURCE", "BOUNDS", "TOP STRATEGY", "ID"}
	rows := make([][]string, 0, len(entries))

	for _, e := range entries {
		rows = append(rows, []string{
			StyleFg.Render(HumanTimestamp(e.CreatedAt)),
			StyleFg.Render(strconv.Itoa(e.Semester)),
			SourceBadge(e.Source),
			Dim(boundsLabel(e.Preferences)),
			topStrategy(e),
			TruncID(e.ID),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d saved runs", len(entries))) + "\n")
	return RenderBox("Recommendation History", b.String())
}

// FormatHistoryEntry renders one saved run in full.
func FormatHistoryEntry(e *history.Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		"%s  %s  %s\n",
		Bold(HumanTimestamp(e.CreatedAt)),
		Dim(fmt.Sprintf("semester %d", e.Semester)),
		SourceBadge(e.Source),
	))
	b.WriteString(Dim("Run id: ") + TruncID(e.ID) + "\n\n")

	b.WriteString(Dim("Bounds:    ") + StyleFg.Render(boundsLabel(e.Preferences)) + "\n")
	if len(e.Preferences.Interests) > 0 {
		b.WriteString(Dim("Interests: ") + StyleFg.Render(strings.Join(e.Preferences.Interests, ", ")) + "\n")
	}
	if e.Preferences.Workload != "" {
		b.WriteString(Dim("Workload:  ") + StyleFg.Render(e.Preferences.Workload) + "\n")
	}
	if len(e.Preferences.Selected) > 0 {
		b.WriteString(Dim("Pinned:    ") + StyleFg.Render(strings.Join(e.Preferences.Selected, ", ")) + "\n")
	}
	if len(e.Preferences.Deselected) > 0 {
		b.WriteString(Dim("Excluded:  ") + StyleFg.Render(strings.Join(e.Preferences.Deselected, ", ")) + "\n")
	}

	for _, rec := range e.Recommendations {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(
			"%s %s  %s\n",
			Bold(fmt.Sprintf("%d.", rec.Rank)),
			StyleFg.Render(rec.Strategy),
			StyleBlue.Render(fmt.Sprintf("(%s cr)", FormatCredits(rec.TotalCredits))),
		))
		b.WriteString("   " + StyleFg.Render(strings.Join(rec.Courses, ", ")) + "\n")
	}

	return RenderBox("Saved Run", b.String())
}

func boundsLabel(p history.Preferences) string {
	return fmt.Sprintf("%s to %s cr", FormatCredits(p.MinCredits), FormatCredits(p.MaxCredits))
}

func topStrategy(e history.Entry) string {
	if len(e.Recommendations) == 0 {
		return Dim("--")
	}
	top := e.Recommendations[0]
	label := StyleFg.Render(top.Strategy)
	if extra := len(e.Recommendations) - 1; extra > 0 {
		label += Dim(fmt.Sprintf(" (+%d)", extra))
	}
	return label
}
