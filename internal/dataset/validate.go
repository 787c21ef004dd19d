package dataset

import (
	"fmt"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// ValidateCourses checks catalog records before conversion. Returns a slice
// of all validation errors found.
func ValidateCourses(records []CourseRecord, rules domain.ProgramRules) []error {
	var errs []error

	for i, r := range records {
		prefix := fmt.Sprintf("courses[%d]", i)
		if r.Code != "" {
			prefix = fmt.Sprintf("courses[%d] (%s)", i, r.Code)
		}

		if r.Code == "" {
			errs = append(errs, fmt.Errorf("%s: code is required", prefix))
		}
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if r.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%s: credits must be positive, got %v", prefix, r.Credits))
		}
		if !domain.ValidCourseTypes[r.Type] {
			errs = append(errs, fmt.Errorf("%s: invalid type %q", prefix, r.Type))
		}
		if r.YearLevel < 1 || r.YearLevel > 4 {
			errs = append(errs, fmt.Errorf("%s: year_level must be 1-4, got %d", prefix, r.YearLevel))
		}
		if r.Difficulty < 1 || r.Difficulty > 7 {
			errs = append(errs, fmt.Errorf("%s: difficulty must be 1-7, got %d", prefix, r.Difficulty))
		}
		if len(r.Slots) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one slot label is required", prefix))
		}
		for _, label := range r.Slots {
			if len(domain.SlotTokens(label)) == 0 {
				errs = append(errs, fmt.Errorf("%s: slot label %q has no tokens", prefix, label))
			}
		}

		switch {
		case r.Type == string(domain.CourseProject) && (r.ProjectSemester < 1 || r.ProjectSemester > rules.Semesters):
			errs = append(errs, fmt.Errorf("%s: project_semester must be 1-%d for project courses, got %d",
				prefix, rules.Semesters, r.ProjectSemester))
		case r.Type != string(domain.CourseProject) && r.ProjectSemester != 0:
			errs = append(errs, fmt.Errorf("%s: project_semester only applies to PROJECT courses", prefix))
		}
	}

	return errs
}

// ValidateStudents checks roster records before conversion. Returns a slice
// of all validation errors found.
func ValidateStudents(records []StudentRecord, rules domain.ProgramRules) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, r := range records {
		prefix := fmt.Sprintf("students[%d]", i)
		if r.ID != "" {
			prefix = fmt.Sprintf("students[%d] (%s)", i, r.ID)
		}

		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		} else if seen[r.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate student id %q", prefix, r.ID))
		} else {
			seen[r.ID] = true
		}

		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		}
		if r.Semester < 1 || r.Semester > rules.Semesters {
			errs = append(errs, fmt.Errorf("%s: semester must be 1-%d, got %d", prefix, rules.Semesters, r.Semester))
		}
		if r.Workload != "" && !domain.ValidWorkloads[r.Workload] {
			errs = append(errs, fmt.Errorf("%s: invalid workload %q", prefix, r.Workload))
		}
		if r.CGPA < 0 || r.CGPA > 10 {
			errs = append(errs, fmt.Errorf("%s: cgpa must be 0-10, got %v", prefix, r.CGPA))
		}
		if r.CompletedCredits < 0 {
			errs = append(errs, fmt.Errorf("%s: completed_credits must not be negative", prefix))
		}

		errs = append(errs, validateSemesterResults(prefix, r.SemesterResults, rules)...)
	}

	return errs
}

func validateSemesterResults(prefix string, results []SemesterRecord, rules domain.ProgramRules) []error {
	var errs []error
	last := 0

	for j, sem := range results {
		sp := fmt.Sprintf("%s.semester_results[%d]", prefix, j)

		if sem.Semester < 1 || sem.Semester > rules.Semesters {
			errs = append(errs, fmt.Errorf("%s: semester must be 1-%d, got %d", sp, rules.Semesters, sem.Semester))
		}
		if sem.Semester < last {
			errs = append(errs, fmt.Errorf("%s: semesters must be non-decreasing (%d after %d)", sp, sem.Semester, last))
		}
		last = sem.Semester

		if sem.GPA < 0 || sem.GPA > 10 {
			errs = append(errs, fmt.Errorf("%s: gpa must be 0-10, got %v", sp, sem.GPA))
		}

		for k, res := range sem.Courses {
			rp := fmt.Sprintf("%s.courses[%d]", sp, k)
			if res.Code == "" {
				errs = append(errs, fmt.Errorf("%s: code is required", rp))
			}
			if res.Credits <= 0 {
				errs = append(errs, fmt.Errorf("%s: credits must be positive, got %v", rp, res.Credits))
			}
			if res.Status != string(domain.ResultPassed) && res.Status != string(domain.ResultFailed) {
				errs = append(errs, fmt.Errorf("%s: status must be PASSED or FAILED, got %q", rp, res.Status))
			}
		}
	}

	return errs
}
