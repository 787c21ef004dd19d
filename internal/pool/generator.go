package pool

import "github.com/ffcs-tools/ffcs/internal/domain"

// Generator derives the set of courses a student is eligible to register
// for next semester. It is pure over the immutable catalog; concurrent use
// is safe.
type Generator struct {
	catalog *domain.Catalog
	rules   domain.ProgramRules
}

func NewGenerator(catalog *domain.Catalog, rules domain.ProgramRules) *Generator {
	return &Generator{catalog: catalog, rules: rules}
}

// Generate walks the catalog in order and applies the eligibility
// precedence per course:
//
//  1. already passed: excluded, even when manually selected
//  2. manually deselected: excluded, even open failures
//  3. manually selected: included, bypassing the year gate
//  4. open failure: included regardless of year level
//  5. year level within the student's year: included
//
// Anything else is excluded. The catalog guarantees no duplicates.
func (g *Generator) Generate(student *domain.StudentProfile, selected, deselected []string) []domain.Course {
	sel := toSet(selected)
	desel := toSet(deselected)
	passed := student.PassedCourses()
	failed := toSet(student.FailedCourses())
	year := student.Year()

	var eligible []domain.Course
	for _, course := range g.catalog.Courses() {
		switch {
		case passed[course.Code]:
		case desel[course.Code]:
		case sel[course.Code]:
			eligible = append(eligible, course)
		case failed[course.Code]:
			eligible = append(eligible, course)
		case course.YearLevel <= year:
			eligible = append(eligible, course)
		}
	}
	return eligible
}

// CheckPrerequisites reports whether the student has passed every
// prerequisite of the course, and which codes are missing. Prerequisites
// are advisory in the pool: unmet ones surface to the advisor and the
// validator, they do not shrink eligibility.
func (g *Generator) CheckPrerequisites(course domain.Course, student *domain.StudentProfile) (bool, []string) {
	passed := student.PassedCourses()
	var missing []string
	for _, code := range course.Prerequisites {
		if !passed[code] {
			missing = append(missing, code)
		}
	}
	return len(missing) == 0, missing
}

// RemainingMandatory returns the mandatory-type courses the student has not
// passed yet, in catalog order.
func (g *Generator) RemainingMandatory(student *domain.StudentProfile) []domain.Course {
	passed := student.PassedCourses()
	var remaining []domain.Course
	for _, course := range g.catalog.Mandatory() {
		if !passed[course.Code] {
			remaining = append(remaining, course)
		}
	}
	return remaining
}

// RemainingCredits estimates the credits still needed to graduate after
// completed credits and the given in-progress selection. Codes already
// passed contribute nothing twice; unknown codes are ignored. Never
// negative.
func (g *Generator) RemainingCredits(student *domain.StudentProfile, inProgress []string) float64 {
	passed := student.PassedCourses()
	remaining := g.rules.TotalCredits - student.CompletedCredits
	for code := range toSet(inProgress) {
		if passed[code] {
			continue
		}
		if course, ok := g.catalog.ByCode(code); ok {
			remaining -= course.Credits
		}
	}
	if remaining < 0 {
		return 0
	}
	return remaining
}

// GateProjects filters a pool for a specific target semester: PROJECT
// courses stay only when their designated semester matches. Projection
// pools use this so a final-phase project never shows up a semester early.
func GateProjects(courses []domain.Course, semester int) []domain.Course {
	var out []domain.Course
	for _, c := range courses {
		if c.IsProject() && c.ProjectSemester != semester {
			continue
		}
		out = append(out, c)
	}
	return out
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}
