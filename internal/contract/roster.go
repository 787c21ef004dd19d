package contract

import "github.com/ffcs-tools/ffcs/internal/domain"

// CourseFilter narrows a catalog listing. Zero values mean no filter.
type CourseFilter struct {
	Type          domain.CourseType
	Year          int
	ElectivesOnly bool
}

type StudentSummary struct {
	ID               string
	Name             string
	Semester         int
	CGPA             float64
	Trend            domain.GPATrend
	Risk             domain.RiskLevel
	CompletedCredits float64
	FailedCourses    int
}

type CatalogStats struct {
	Courses      int
	TotalCredits float64
	ByType       map[domain.CourseType]int
	WithPrereqs  int
	Projects     int
}
