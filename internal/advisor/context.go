package advisor

import "github.com/ffcs-tools/ffcs/internal/domain"

// PoolCourse is one eligible course as presented to the advisor.
type PoolCourse struct {
	Code            string
	Name            string
	Credits         float64
	Type            domain.CourseType
	Difficulty      int
	Slots           []string
	MissingPrereqs  []string
	RetakeOfFailure bool
}

// PlanContext carries everything the advise prompt needs. The orchestrating
// service assembles it from the student profile, the pool, and the bounds;
// the advisor itself never touches storage.
type PlanContext struct {
	StudentName      string
	Semester         int
	ProgramSemesters int
	Year             int
	CGPA             float64
	Trend            domain.GPATrend
	Risk             domain.RiskLevel
	CompletedCredits float64
	TotalCredits     float64

	Interests []string
	Workload  domain.WorkloadPreference
	Bounds    domain.CreditBounds

	Pool               []PoolCourse
	RemainingMandatory []string
	FailedCourses      []string
	Selected           []string
	Deselected         []string

	// ProjectCodes lists PROJECT courses designated for this semester.
	ProjectCodes []string

	// FutureSemester marks projection calls; slot data is omitted from the
	// prompt since future offerings are not yet timetabled.
	FutureSemester bool
}

// FeasibilityContext describes a hand-assembled selection to be judged.
type FeasibilityContext struct {
	StudentName        string
	Semester           int
	CGPA               float64
	Risk               domain.RiskLevel
	Courses            []PoolCourse
	TotalCredits       float64
	Bounds             domain.CreditBounds
	RemainingMandatory float64
	RemainingSemesters int
}
