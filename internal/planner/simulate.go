package planner

import (
	"fmt"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// Simulate builds the student state that would exist at targetSemester if
// every assumed code were passed now. The input profile is never touched;
// the result is a fresh value owned by the caller.
//
// Assumed codes are deduplicated before the credit sum (a code cannot be
// completed twice, so repeats across a projection chain count once); codes
// missing from the catalog are skipped since upstream proposals may carry
// stale data. The synthetic semester result is tagged with the student's
// CURRENT semester (it represents what was just completed), graded at the
// program's top grade, then the profile advances to the target semester.
func Simulate(
	student *domain.StudentProfile,
	assumedPassed []string,
	catalog *domain.Catalog,
	targetSemester int,
	rules domain.ProgramRules,
) (*domain.StudentProfile, error) {
	if targetSemester <= student.Semester || targetSemester > rules.Semesters {
		return nil, fmt.Errorf("semester %d from current %d: %w", targetSemester, student.Semester, ErrBadTarget)
	}

	projected := student.Clone()

	seen := make(map[string]bool, len(assumedPassed))
	synthetic := domain.SemesterResult{Semester: student.Semester, GPA: student.CGPA}
	for _, code := range assumedPassed {
		if seen[code] {
			continue
		}
		seen[code] = true
		course, ok := catalog.ByCode(code)
		if !ok {
			continue
		}
		synthetic.Courses = append(synthetic.Courses, domain.CourseResult{
			Code:    course.Code,
			Grade:   rules.TopGrade,
			Credits: course.Credits,
			Status:  domain.ResultPassed,
		})
		projected.CompletedCredits += course.Credits
	}
	projected.AppendResult(synthetic)
	projected.Semester = targetSemester

	return projected, nil
}
