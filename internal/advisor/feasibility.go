package advisor

import (
	"fmt"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// Verdicts for a hand-assembled course selection.
const (
	VerdictComfortable = "COMFORTABLE"
	VerdictChallenging = "CHALLENGING"
	VerdictDifficult   = "DIFFICULT"
	VerdictCritical    = "CRITICAL"
)

// FeasibilityNote is the advisor's judgement of a custom selection.
type FeasibilityNote struct {
	Verdict     string
	Concerns    []string
	Suggestions []string
	Source      domain.RecommendationSource
}

// RuleBasedFeasibility grades the selection load against the credit cap
// without the model: the ratio of selected credits to the maximum maps
// onto the verdict ladder. It is used whenever the advisor call fails.
func RuleBasedFeasibility(fc FeasibilityContext) *FeasibilityNote {
	var ratio float64
	if fc.Bounds.Max > 0 {
		ratio = fc.TotalCredits / fc.Bounds.Max
	}

	note := &FeasibilityNote{Source: domain.SourceFallback}
	switch {
	case ratio > 1.0:
		note.Verdict = VerdictCritical
		note.Concerns = append(note.Concerns, fmt.Sprintf(
			"Your %.1f credits exceed the %.1f maximum; this set cannot be registered as is.",
			fc.TotalCredits, fc.Bounds.Max))
		note.Suggestions = append(note.Suggestions, "Drop an elective to get back under the cap.")
	case ratio > 0.9:
		note.Verdict = VerdictDifficult
		note.Concerns = append(note.Concerns, fmt.Sprintf(
			"At %.1f credits you are within %.0f%% of the cap; expect a heavy semester.",
			fc.TotalCredits, (1-ratio)*100))
		note.Suggestions = append(note.Suggestions, "Consider moving one course to a later semester.")
	case ratio > 0.7:
		note.Verdict = VerdictChallenging
		note.Concerns = append(note.Concerns, fmt.Sprintf(
			"%.1f credits is a solid load; plan your weeks early.", fc.TotalCredits))
	default:
		note.Verdict = VerdictComfortable
	}

	if fc.Risk == domain.RiskHigh && note.Verdict != VerdictComfortable {
		note.Concerns = append(note.Concerns,
			"Your recent record suggests a lighter load would be safer this semester.")
	}

	return note
}
