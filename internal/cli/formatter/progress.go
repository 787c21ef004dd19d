package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// CreditBar renders a credit-fill bar like [██████░░░░] 18/24 cr.
// Unlike a completion bar, a fuller bar is a heavier load: the bar goes
// yellow above 90% of the cap and red once the cap is exceeded.
func CreditBar(credits, max float64, width int) string {
	if width < 2 {
		width = 2
	}

	ratio := 0.0
	if max > 0 {
		ratio = credits / max
	}

	fill := ratio
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}
	filled := int(fill * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case ratio > 1.0:
		style = StyleRed
	case ratio > 0.9:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %s/%s cr", style.Render(bar), FormatCredits(credits), FormatCredits(max))
}
