package domain

type CourseResult struct {
	Code    string
	Grade   string
	Credits float64
	Status  ResultStatus
}

type SemesterResult struct {
	Semester int
	Courses  []CourseResult
	GPA      float64
}

type StudentProfile struct {
	ID        string
	Name      string
	Semester  int
	Interests []string
	Workload  WorkloadPreference

	CompletedCredits float64
	CGPA             float64

	// History is append-only; semesters are expected to be non-decreasing.
	History []SemesterResult
}

// Year derives the academic year from the current semester (two semesters
// per year, semester 1 and 2 are year 1).
func (s *StudentProfile) Year() int {
	if s.Semester < 1 {
		return 1
	}
	return (s.Semester + 1) / 2
}

// PassedCourses returns the set of course codes with at least one PASSED
// result anywhere in the history.
func (s *StudentProfile) PassedCourses() map[string]bool {
	passed := make(map[string]bool)
	for _, sem := range s.History {
		for _, r := range sem.Courses {
			if r.Status == ResultPassed {
				passed[r.Code] = true
			}
		}
	}
	return passed
}

// FailedCourses returns the codes the student has failed and not passed in
// any attempt, in first-failure order.
func (s *StudentProfile) FailedCourses() []string {
	passed := s.PassedCourses()
	seen := make(map[string]bool)
	var failed []string
	for _, sem := range s.History {
		for _, r := range sem.Courses {
			if r.Status != ResultFailed || passed[r.Code] || seen[r.Code] {
				continue
			}
			seen[r.Code] = true
			failed = append(failed, r.Code)
		}
	}
	return failed
}

// AppendResult records a semester result. History is append-only; callers
// never rewrite earlier entries.
func (s *StudentProfile) AppendResult(r SemesterResult) {
	s.History = append(s.History, r)
}

func (s *StudentProfile) GPATrend() GPATrend {
	switch {
	case s.CGPA >= 8.5:
		return TrendImproving
	case s.CGPA >= 7.0:
		return TrendStable
	default:
		return TrendDeclining
	}
}

// RiskProfile grades the student's standing from unresolved failures and
// CGPA. More than two open failures or a CGPA below 6.0 is high risk; any
// open failure or a CGPA below 7.5 is medium.
func (s *StudentProfile) RiskProfile() RiskLevel {
	failed := len(s.FailedCourses())
	switch {
	case failed > 2 || s.CGPA < 6.0:
		return RiskHigh
	case failed > 0 || s.CGPA < 7.5:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Clone returns a deep copy. Simulation builds on copies so the source
// profile is never touched.
func (s *StudentProfile) Clone() *StudentProfile {
	out := *s
	out.Interests = append([]string(nil), s.Interests...)
	out.History = make([]SemesterResult, len(s.History))
	for i, sem := range s.History {
		cp := sem
		cp.Courses = append([]CourseResult(nil), sem.Courses...)
		out.History[i] = cp
	}
	return &out
}
