package service

import (
	"github.com/ffcs-tools/ffcs/internal/advisor"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/planner"
	"github.com/ffcs-tools/ffcs/internal/pool"
)

// buildPlanContext flattens the profile, the eligible pool, and the request
// knobs into the advisor's input. future omits slot data, since future
// offerings are not timetabled yet.
func buildPlanContext(
	profile *domain.StudentProfile,
	available []domain.Course,
	gen *pool.Generator,
	rules domain.ProgramRules,
	bounds domain.CreditBounds,
	selected, deselected []string,
	future bool,
) advisor.PlanContext {
	failed := make(map[string]bool)
	for _, code := range profile.FailedCourses() {
		failed[code] = true
	}

	courses := make([]advisor.PoolCourse, 0, len(available))
	var projectCodes []string
	for _, course := range available {
		met, missing := gen.CheckPrerequisites(course, profile)
		pc := advisor.PoolCourse{
			Code:            course.Code,
			Name:            course.Name,
			Credits:         course.Credits,
			Type:            course.Type,
			Difficulty:      course.Difficulty,
			RetakeOfFailure: failed[course.Code],
		}
		if !met {
			pc.MissingPrereqs = missing
		}
		if !future {
			pc.Slots = course.Slots
		}
		if course.IsProject() && course.ProjectSemester == profile.Semester {
			projectCodes = append(projectCodes, course.Code)
		}
		courses = append(courses, pc)
	}

	var remaining []string
	for _, course := range gen.RemainingMandatory(profile) {
		remaining = append(remaining, course.Code)
	}

	return advisor.PlanContext{
		StudentName:        profile.Name,
		Semester:           profile.Semester,
		ProgramSemesters:   rules.Semesters,
		Year:               profile.Year(),
		CGPA:               profile.CGPA,
		Trend:              profile.GPATrend(),
		Risk:               profile.RiskProfile(),
		CompletedCredits:   profile.CompletedCredits,
		TotalCredits:       rules.TotalCredits,
		Interests:          profile.Interests,
		Workload:           profile.Workload,
		Bounds:             bounds,
		Pool:               courses,
		RemainingMandatory: remaining,
		FailedCourses:      profile.FailedCourses(),
		Selected:           selected,
		Deselected:         deselected,
		ProjectCodes:       projectCodes,
		FutureSemester:     future,
	}
}

// buildFeasibilityContext describes a hand-picked selection for the
// advisor's judgement. Duplicate and unknown codes are skipped.
func buildFeasibilityContext(
	profile *domain.StudentProfile,
	catalog *domain.Catalog,
	codes []string,
	bounds domain.CreditBounds,
	feasibility planner.FeasibilityReport,
) advisor.FeasibilityContext {
	seen := make(map[string]bool, len(codes))
	var courses []advisor.PoolCourse
	var total float64
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		course, ok := catalog.ByCode(code)
		if !ok {
			continue
		}
		courses = append(courses, advisor.PoolCourse{
			Code:       course.Code,
			Name:       course.Name,
			Credits:    course.Credits,
			Type:       course.Type,
			Difficulty: course.Difficulty,
		})
		total += course.Credits
	}

	return advisor.FeasibilityContext{
		StudentName:        profile.Name,
		Semester:           profile.Semester,
		CGPA:               profile.CGPA,
		Risk:               profile.RiskProfile(),
		Courses:            courses,
		TotalCredits:       total,
		Bounds:             bounds,
		RemainingMandatory: feasibility.RemainingMandatory,
		RemainingSemesters: feasibility.RemainingSemesters,
	}
}

// retakeSet marks pool codes the student previously failed and can retake.
func retakeSet(profile *domain.StudentProfile, available []domain.Course) map[string]bool {
	failed := make(map[string]bool)
	for _, code := range profile.FailedCourses() {
		failed[code] = true
	}
	set := make(map[string]bool)
	for _, course := range available {
		if failed[course.Code] {
			set[course.Code] = true
		}
	}
	return set
}
