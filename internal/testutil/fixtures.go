package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

var testCodeCounter atomic.Int64

// Course options
type CourseOption func(*domain.Course)

func WithName(name string) CourseOption {
	return func(c *domain.Course) {
		c.Name = name
	}
}

func WithCredits(credits float64) CourseOption {
	return func(c *domain.Course) {
		c.Credits = credits
	}
}

func WithType(t domain.CourseType) CourseOption {
	return func(c *domain.Course) {
		c.Type = t
	}
}

func WithYearLevel(year int) CourseOption {
	return func(c *domain.Course) {
		c.YearLevel = year
	}
}

func WithDifficulty(d int) CourseOption {
	return func(c *domain.Course) {
		c.Difficulty = d
	}
}

func WithPrerequisites(codes ...string) CourseOption {
	return func(c *domain.Course) {
		c.Prerequisites = codes
	}
}

func WithSlots(labels ...string) CourseOption {
	return func(c *domain.Course) {
		c.Slots = labels
	}
}

func WithProjectSemester(sem int) CourseOption {
	return func(c *domain.Course) {
		c.Type = domain.CourseProject
		c.ProjectSemester = sem
	}
}

func NewTestCourse(code string, opts ...CourseOption) domain.Course {
	n := testCodeCounter.Add(1)
	c := domain.Course{
		Code:       code,
		Name:       fmt.Sprintf("Course %s", code),
		Credits:    4,
		Type:       domain.CourseDisciplineCore,
		YearLevel:  1,
		Difficulty: 3,
		Slots:      []string{fmt.Sprintf("G%d", n%7+1)},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Student options
type StudentOption func(*domain.StudentProfile)

func WithSemester(sem int) StudentOption {
	return func(s *domain.StudentProfile) {
		s.Semester = sem
	}
}

func WithCGPA(cgpa float64) StudentOption {
	return func(s *domain.StudentProfile) {
		s.CGPA = cgpa
	}
}

func WithCompletedCredits(credits float64) StudentOption {
	return func(s *domain.StudentProfile) {
		s.CompletedCredits = credits
	}
}

func WithInterests(interests ...string) StudentOption {
	return func(s *domain.StudentProfile) {
		s.Interests = interests
	}
}

func WithWorkload(w domain.WorkloadPreference) StudentOption {
	return func(s *domain.StudentProfile) {
		s.Workload = w
	}
}

// WithPassed appends a semester result where every listed code was passed
// with the given per-course credits.
func WithPassed(semester int, creditsEach float64, codes ...string) StudentOption {
	return func(s *domain.StudentProfile) {
		result := domain.SemesterResult{Semester: semester, GPA: 8.0}
		for _, code := range codes {
			result.Courses = append(result.Courses, domain.CourseResult{
				Code: code, Grade: "A", Credits: creditsEach, Status: domain.ResultPassed,
			})
		}
		s.AppendResult(result)
	}
}

// WithFailed appends a semester result where every listed code was failed.
func WithFailed(semester int, creditsEach float64, codes ...string) StudentOption {
	return func(s *domain.StudentProfile) {
		result := domain.SemesterResult{Semester: semester, GPA: 5.5}
		for _, code := range codes {
			result.Courses = append(result.Courses, domain.CourseResult{
				Code: code, Grade: "F", Credits: creditsEach, Status: domain.ResultFailed,
			})
		}
		s.AppendResult(result)
	}
}

func NewTestStudent(name string, opts ...StudentOption) *domain.StudentProfile {
	s := &domain.StudentProfile{
		ID:       uuid.New().String(),
		Name:     name,
		Semester: 5,
		Workload: domain.WorkloadMedium,
		CGPA:     8.0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewProgramCatalog builds a small but realistic four-year catalog shared by
// pipeline-level tests: foundations and cores per year, a handful of
// electives, and the two designated project phases.
func NewProgramCatalog() *domain.Catalog {
	return domain.NewCatalog([]domain.Course{
		NewTestCourse("MAT1001", WithName("Calculus"), WithType(domain.CourseFoundation), WithYearLevel(1), WithDifficulty(3), WithSlots("A1+TA1")),
		NewTestCourse("PHY1001", WithName("Engineering Physics"), WithType(domain.CourseFoundation), WithYearLevel(1), WithDifficulty(3), WithSlots("B1+TB1")),
		NewTestCourse("CSE1001", WithName("Problem Solving"), WithType(domain.CourseFoundation), WithYearLevel(1), WithDifficulty(2), WithCredits(3), WithSlots("C1")),
		NewTestCourse("ENG1001", WithName("Technical English"), WithType(domain.CourseFoundation), WithYearLevel(1), WithDifficulty(1), WithCredits(2), WithSlots("D1")),
		NewTestCourse("CSE2001", WithName("Data Structures"), WithType(domain.CourseDisciplineCore), WithYearLevel(2), WithDifficulty(4), WithPrerequisites("CSE1001"), WithSlots("A2+TA2")),
		NewTestCourse("CSE2002", WithName("Database Systems"), WithType(domain.CourseDisciplineCore), WithYearLevel(2), WithDifficulty(4), WithSlots("B2+TB2")),
		NewTestCourse("ECE2001", WithName("Digital Logic"), WithType(domain.CourseDisciplineLinked), WithYearLevel(2), WithDifficulty(3), WithCredits(3), WithSlots("C2")),
		NewTestCourse("MAT2001", WithName("Discrete Mathematics"), WithType(domain.CourseDisciplineCore), WithYearLevel(2), WithDifficulty(4), WithPrerequisites("MAT1001"), WithSlots("D2")),
		NewTestCourse("CSE3001", WithName("Operating Systems"), WithType(domain.CourseDisciplineCore), WithYearLevel(3), WithDifficulty(5), WithPrerequisites("CSE2001"), WithSlots("A1+TA1")),
		NewTestCourse("CSE3002", WithName("Machine Learning"), WithType(domain.CourseDisciplineElective), WithYearLevel(3), WithDifficulty(5), WithPrerequisites("MAT2001"), WithSlots("B1")),
		NewTestCourse("CSE3003", WithName("Web Programming"), WithType(domain.CourseDisciplineElective), WithYearLevel(3), WithDifficulty(3), WithCredits(3), WithSlots("C1")),
		NewTestCourse("HUM3001", WithName("Engineering Economics"), WithType(domain.CourseOpenElective), WithYearLevel(3), WithDifficulty(2), WithCredits(2), WithSlots("D1")),
		NewTestCourse("LAW3001", WithName("Cyber Law"), WithType(domain.CourseOpenElective), WithYearLevel(3), WithDifficulty(1), WithCredits(2), WithSlots("E1")),
		NewTestCourse("CSE4001", WithName("Distributed Systems"), WithType(domain.CourseDisciplineElective), WithYearLevel(4), WithDifficulty(6), WithPrerequisites("CSE3001"), WithSlots("A2")),
		NewTestCourse("CSE4097", WithName("Capstone Phase 1"), WithProjectSemester(7), WithYearLevel(4), WithDifficulty(5), WithSlots("F1")),
		NewTestCourse("CSE4099", WithName("Capstone Phase 2"), WithProjectSemester(8), WithYearLevel(4), WithDifficulty(6), WithCredits(10), WithSlots("F2")),
	})
}
