package dataset

import (
	"fmt"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// BuildCatalog converts validated course records into a catalog. Duplicate
// codes resolve last-seen-wins; each duplicate is reported as a warning so
// the operator sees it.
func BuildCatalog(records []CourseRecord) (*domain.Catalog, []string) {
	var warnings []string
	seen := make(map[string]bool, len(records))
	courses := make([]domain.Course, 0, len(records))

	for _, r := range records {
		if seen[r.Code] {
			warnings = append(warnings, fmt.Sprintf("duplicate course code %q: keeping the later definition", r.Code))
		}
		seen[r.Code] = true
		courses = append(courses, domain.Course{
			Code:            r.Code,
			Name:            r.Name,
			Credits:         r.Credits,
			Type:            domain.CourseType(r.Type),
			Prerequisites:   append([]string(nil), r.Prerequisites...),
			YearLevel:       r.YearLevel,
			Difficulty:      r.Difficulty,
			Slots:           append([]string(nil), r.Slots...),
			ProjectSemester: r.ProjectSemester,
		})
	}

	catalog := domain.NewCatalog(courses)

	for _, c := range catalog.Courses() {
		for _, prereq := range c.Prerequisites {
			if !catalog.Has(prereq) {
				warnings = append(warnings, fmt.Sprintf("course %q lists unknown prerequisite %q", c.Code, prereq))
			}
		}
	}

	return catalog, warnings
}

// BuildStudents converts validated student records into profiles, in file
// order.
func BuildStudents(records []StudentRecord) []*domain.StudentProfile {
	students := make([]*domain.StudentProfile, 0, len(records))
	for _, r := range records {
		workload := domain.WorkloadPreference(r.Workload)
		if r.Workload == "" {
			workload = domain.WorkloadMedium
		}
		s := &domain.StudentProfile{
			ID:               r.ID,
			Name:             r.Name,
			Semester:         r.Semester,
			Interests:        append([]string(nil), r.Interests...),
			Workload:         workload,
			CompletedCredits: r.CompletedCredits,
			CGPA:             r.CGPA,
		}
		for _, sem := range r.SemesterResults {
			result := domain.SemesterResult{Semester: sem.Semester, GPA: sem.GPA}
			for _, res := range sem.Courses {
				result.Courses = append(result.Courses, domain.CourseResult{
					Code:    res.Code,
					Grade:   res.Grade,
					Credits: res.Credits,
					Status:  domain.ResultStatus(res.Status),
				})
			}
			s.AppendResult(result)
		}
		students = append(students, s)
	}
	return students
}
