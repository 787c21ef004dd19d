package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ffcs-tools/ffcs/internal/advisor"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/llm"
	"github.com/ffcs-tools/ffcs/internal/planner"
	"github.com/ffcs-tools/ffcs/internal/pool"
)

// maxStrategies caps how many strategies a response carries, whatever the
// advisor proposed.
const maxStrategies = 3

// planOutcome is one semester's worth of strategies plus anything the
// caller should surface to the user.
type planOutcome struct {
	recs     []domain.Recommendation
	source   domain.RecommendationSource
	warnings []string
}

// buildStrategies runs the advisor over the pool and repairs each proposal
// against the hard rules. When the advisor is disabled, errors out, or no
// proposal survives repair, the deterministic fallback takes over. The
// returned error is planner.ErrInfeasible when not even the fallback can
// fit the bounds.
func buildStrategies(
	ctx context.Context,
	adv advisor.Service,
	gen *pool.Generator,
	profile *domain.StudentProfile,
	available []domain.Course,
	bounds domain.CreditBounds,
	rules domain.ProgramRules,
	selected, deselected []string,
	future bool,
) (planOutcome, error) {
	failedRetakes := retakeSet(profile, available)
	var out planOutcome

	pc := buildPlanContext(profile, available, gen, rules, bounds, selected, deselected, future)
	set, err := adv.Recommend(ctx, pc)
	if err == nil {
		var kept []domain.Recommendation
		for _, proposal := range set.Recommendations {
			repaired, enforceErr := planner.Enforce(&proposal, available, bounds, profile.Semester, failedRetakes)
			if enforceErr != nil {
				continue
			}
			kept = append(kept, *repaired)
		}
		if len(kept) > 0 {
			if len(kept) > maxStrategies {
				kept = kept[:maxStrategies]
			}
			for i := range kept {
				kept[i].Rank = i + 1
			}
			out.recs = kept
			out.source = domain.SourceAdvisor
			return out, nil
		}
		out.warnings = append(out.warnings, "advisor strategies broke the hard rules; using the deterministic plan")
	} else if !errors.Is(err, llm.ErrDisabled) {
		out.warnings = append(out.warnings, fmt.Sprintf("advisor unavailable (%v); using the deterministic plan", err))
	}

	rec, err := planner.Fallback(available, bounds, profile.Semester, failedRetakes)
	if err != nil {
		return out, err
	}
	out.recs = []domain.Recommendation{*rec}
	out.source = domain.SourceFallback
	return out, nil
}
