package service

import (
	"context"

	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/dataset"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/pool"
)

type rosterService struct {
	roster *dataset.Roster
	rules  domain.ProgramRules
}

func NewRosterService(roster *dataset.Roster, rules domain.ProgramRules) RosterService {
	return &rosterService{roster: roster, rules: rules}
}

func (s *rosterService) ListStudents(ctx context.Context) []contract.StudentSummary {
	students := s.roster.Students()
	out := make([]contract.StudentSummary, 0, len(students))
	for _, student := range students {
		out = append(out, contract.StudentSummary{
			ID:               student.ID,
			Name:             student.Name,
			Semester:         student.Semester,
			CGPA:             student.CGPA,
			Trend:            student.GPATrend(),
			Risk:             student.RiskProfile(),
			CompletedCredits: student.CompletedCredits,
			FailedCourses:    len(student.FailedCourses()),
		})
	}
	return out
}

func (s *rosterService) GetStudent(ctx context.Context, id string) (*domain.StudentProfile, error) {
	student, ok := s.roster.Student(id)
	if !ok {
		return nil, contract.NewError(contract.ErrStudentNotFound, "no student with id %s", id)
	}
	return student.Clone(), nil
}

func (s *rosterService) ListCourses(ctx context.Context, filter contract.CourseFilter) []domain.Course {
	return filterCourses(s.roster.Catalog().Courses(), filter)
}

func (s *rosterService) EligibleCourses(ctx context.Context, studentID string, filter contract.CourseFilter) ([]domain.Course, error) {
	student, ok := s.roster.Student(studentID)
	if !ok {
		return nil, contract.NewError(contract.ErrStudentNotFound, "no student with id %s", studentID)
	}
	gen := pool.NewGenerator(s.roster.Catalog(), s.rules)
	return filterCourses(gen.Generate(student, nil, nil), filter), nil
}

func (s *rosterService) CatalogStats(ctx context.Context) contract.CatalogStats {
	stats := contract.CatalogStats{ByType: make(map[domain.CourseType]int)}
	for _, course := range s.roster.Catalog().Courses() {
		stats.Courses++
		stats.TotalCredits += course.Credits
		stats.ByType[course.Type]++
		if len(course.Prerequisites) > 0 {
			stats.WithPrereqs++
		}
		if course.IsProject() {
			stats.Projects++
		}
	}
	return stats
}

func filterCourses(courses []domain.Course, filter contract.CourseFilter) []domain.Course {
	var out []domain.Course
	for _, course := range courses {
		if filter.Type != "" && course.Type != filter.Type {
			continue
		}
		if filter.Year > 0 && course.YearLevel != filter.Year {
			continue
		}
		if filter.ElectivesOnly && !course.IsElective() {
			continue
		}
		out = append(out, course)
	}
	return out
}
