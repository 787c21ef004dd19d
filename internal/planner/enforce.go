package planner

import (
	"fmt"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// Enforce repairs an untrusted recommendation against hard limits. The
// input is never mutated; the repaired copy is returned. Steps run in a
// fixed order:
//
//  1. strip out-of-semester projects, codes missing from the pool, and
//     duplicates
//  2. recompute the credit total from pool data (claimed totals are lies
//     until proven otherwise)
//  3. trim over max: highest-credit open electives first, then discipline
//     electives; mandatory and project courses are never trimmed
//  4. pad under min: lowest difficulty first, mandatory before electives,
//     never breaching max
//  5. discard if the total still sits outside the bounds
//  6. resync the breakdown from the surviving list
//
// Enforcing an already-valid recommendation is a no-op apart from derived
// fields, so the operation is idempotent.
func Enforce(
	rec *domain.Recommendation,
	available []domain.Course,
	bounds domain.CreditBounds,
	semester int,
	failedRetakes map[string]bool,
) (*domain.Recommendation, error) {
	out := rec.Clone()
	poolCatalog := domain.NewCatalog(available)

	out.Courses = stripIneligible(out.Courses, poolCatalog, semester)
	total := poolCatalog.CreditSum(out.Courses)

	for total > bounds.Max {
		i := trimVictim(out.Courses, poolCatalog)
		if i < 0 {
			return nil, fmt.Errorf("total %.1f above max %.1f with no removable elective: %w",
				total, bounds.Max, ErrUnrepairable)
		}
		victim, _ := poolCatalog.ByCode(out.Courses[i])
		total -= victim.Credits
		out.Courses = append(out.Courses[:i], out.Courses[i+1:]...)
	}

	for total < bounds.Min {
		course, ok := padCandidate(out.Courses, available, semester, bounds.Max-total)
		if !ok {
			return nil, fmt.Errorf("total %.1f below min %.1f and nothing fits under max: %w",
				total, bounds.Min, ErrUnrepairable)
		}
		out.Courses = append(out.Courses, course.Code)
		total += course.Credits
	}

	if total < bounds.Min || total > bounds.Max {
		return nil, fmt.Errorf("total %.1f outside [%.1f, %.1f]: %w",
			total, bounds.Min, bounds.Max, ErrUnrepairable)
	}

	out.RecomputeDerived(poolCatalog, failedRetakes)
	return out, nil
}

// stripIneligible drops project courses designated for a different
// semester, codes the pool does not offer, and duplicate codes. First
// occurrence wins; order is otherwise preserved.
func stripIneligible(codes []string, poolCatalog *domain.Catalog, semester int) []string {
	seen := make(map[string]bool, len(codes))
	kept := make([]string, 0, len(codes))
	for _, code := range codes {
		course, ok := poolCatalog.ByCode(code)
		if !ok || seen[code] {
			continue
		}
		if course.IsProject() && course.ProjectSemester != semester {
			continue
		}
		seen[code] = true
		kept = append(kept, code)
	}
	return kept
}

// trimVictim picks the index of the course to remove when over max: the
// highest-credit open elective, or failing that the highest-credit
// discipline elective. Returns -1 when only mandatory and project courses
// remain.
func trimVictim(codes []string, poolCatalog *domain.Catalog) int {
	best := -1
	var bestCredits float64
	pick := func(want domain.CourseType) {
		for i, code := range codes {
			course, ok := poolCatalog.ByCode(code)
			if !ok || course.Type != want {
				continue
			}
			if best < 0 || course.Credits > bestCredits {
				best = i
				bestCredits = course.Credits
			}
		}
	}
	pick(domain.CourseOpenElective)
	if best < 0 {
		pick(domain.CourseDisciplineElective)
	}
	return best
}

// padCandidate picks the next course to add when under min: lowest
// difficulty wins, mandatory types rank ahead of electives, pool order
// breaks ties. Courses that would breach max, wrong-semester projects, and
// codes already included are skipped.
func padCandidate(codes []string, available []domain.Course, semester int, headroom float64) (domain.Course, bool) {
	included := make(map[string]bool, len(codes))
	for _, c := range codes {
		included[c] = true
	}

	best := -1
	for i, course := range available {
		if included[course.Code] || course.Credits > headroom {
			continue
		}
		if course.IsProject() && course.ProjectSemester != semester {
			continue
		}
		if best < 0 || padLess(course, available[best]) {
			best = i
		}
	}
	if best < 0 {
		return domain.Course{}, false
	}
	return available[best], true
}

func padLess(a, b domain.Course) bool {
	if a.IsMandatory() != b.IsMandatory() {
		return a.IsMandatory()
	}
	return a.Difficulty < b.Difficulty
}
