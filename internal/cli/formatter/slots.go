package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// FormatSlotGrid renders a slot-token occupancy table for a set of course
// to slot-label assignments. A token claimed by more than one course is a
// registration clash and renders red.
func FormatSlotGrid(assignments map[string]string) string {
	if len(assignments) == 0 {
		return Dim("No slot assignments.") + "\n"
	}

	occupancy := make(map[string][]string)
	for code, label := range assignments {
		for _, token := range domain.SlotTokens(label) {
			occupancy[token] = append(occupancy[token], code)
		}
	}

	tokens := make([]string, 0, len(occupancy))
	for token := range occupancy {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	clashes := 0
	rows := make([][]string, 0, len(tokens))
	for _, token := range tokens {
		codes := occupancy[token]
		sort.Strings(codes)
		joined := strings.Join(codes, ", ")
		if len(codes) > 1 {
			clashes++
			rows = append(rows, []string{StyleRed.Render(token), StyleRed.Render(joined + "  ✗ clash")})
		} else {
			rows = append(rows, []string{StyleFg.Render(token), StyleFg.Render(joined)})
		}
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"SLOT", "COURSES"}, rows))
	b.WriteString("\n")
	if clashes > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d clashing slots", clashes)) + "\n")
	} else {
		b.WriteString(StyleGreen.Render("No clashes") + "\n")
	}
	return b.String()
}
