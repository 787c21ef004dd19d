package planner

import (
	"fmt"
	"sort"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// FallbackStrategy names the single conservative plan produced when the
// advisor pipeline fails entirely.
const FallbackStrategy = "Graduation Requirements Focus"

// Fallback builds one conservative recommendation deterministically:
// designated project courses first (highest credits first) when the
// semester bears one, then mandatory courses by ascending difficulty until
// the minimum is met, never breaching the maximum. Signals ErrInfeasible
// when the minimum cannot be reached; the caller reports no recommendation
// rather than fabricating an invalid one.
func Fallback(
	available []domain.Course,
	bounds domain.CreditBounds,
	semester int,
	failedRetakes map[string]bool,
) (*domain.Recommendation, error) {
	var picked []string
	reasons := make(map[string]string)
	var total float64

	for _, course := range projectsFor(available, semester) {
		if total+course.Credits > bounds.Max {
			continue
		}
		picked = append(picked, course.Code)
		reasons[course.Code] = fmt.Sprintf("designated project phase for semester %d", semester)
		total += course.Credits
	}

	mandatory := make([]domain.Course, 0, len(available))
	for _, course := range available {
		if course.IsMandatory() {
			mandatory = append(mandatory, course)
		}
	}
	sort.SliceStable(mandatory, func(i, j int) bool {
		return mandatory[i].Difficulty < mandatory[j].Difficulty
	})

	for _, course := range mandatory {
		if total >= bounds.Min {
			break
		}
		if total+course.Credits > bounds.Max {
			continue
		}
		picked = append(picked, course.Code)
		if failedRetakes[course.Code] {
			reasons[course.Code] = "clears an open failure"
		} else {
			reasons[course.Code] = "required for graduation"
		}
		total += course.Credits
	}

	if total < bounds.Min {
		return nil, fmt.Errorf("reached %.1f of the %.1f minimum: %w", total, bounds.Min, ErrInfeasible)
	}

	rec := &domain.Recommendation{
		Rank:          1,
		Strategy:      FallbackStrategy,
		Courses:       picked,
		Reasoning:     "Deterministic plan built without the advisor: designated project work first, then outstanding requirements by ascending difficulty.",
		CourseReasons: reasons,
		Suitability:   "Conservative load that keeps graduation requirements moving.",
		Source:        domain.SourceFallback,
	}
	rec.RecomputeDerived(domain.NewCatalog(available), failedRetakes)
	return rec, nil
}

// projectsFor returns the available PROJECT courses designated for the
// semester, highest credits first.
func projectsFor(available []domain.Course, semester int) []domain.Course {
	var projects []domain.Course
	for _, course := range available {
		if course.IsProject() && course.ProjectSemester == semester {
			projects = append(projects, course)
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Credits > projects[j].Credits
	})
	return projects
}
