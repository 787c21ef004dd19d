package domain

type CourseType string

const (
	CourseFoundation         CourseType = "FOUNDATION"
	CourseDisciplineCore     CourseType = "DISCIPLINE_CORE"
	CourseDisciplineLinked   CourseType = "DISCIPLINE_LINKED"
	CourseDisciplineElective CourseType = "DISCIPLINE_ELECTIVE"
	CourseOpenElective       CourseType = "OPEN_ELECTIVE"
	CourseProject            CourseType = "PROJECT"
)

// ValidCourseTypes is the canonical set of accepted course type strings.
var ValidCourseTypes = map[string]bool{
	"FOUNDATION": true, "DISCIPLINE_CORE": true, "DISCIPLINE_LINKED": true,
	"DISCIPLINE_ELECTIVE": true, "OPEN_ELECTIVE": true, "PROJECT": true,
}

type ResultStatus string

const (
	ResultPassed ResultStatus = "PASSED"
	ResultFailed ResultStatus = "FAILED"
)

type WorkloadPreference string

const (
	WorkloadLow    WorkloadPreference = "LOW"
	WorkloadMedium WorkloadPreference = "MEDIUM"
	WorkloadHigh   WorkloadPreference = "HIGH"
)

// ValidWorkloads is the canonical set of accepted workload preference strings.
var ValidWorkloads = map[string]bool{
	"LOW": true, "MEDIUM": true, "HIGH": true,
}

type GPATrend string

const (
	TrendImproving GPATrend = "improving"
	TrendStable    GPATrend = "stable"
	TrendDeclining GPATrend = "declining"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type FeasibilityLevel string

const (
	PaceOnTrack FeasibilityLevel = "on_track"
	PaceTight   FeasibilityLevel = "tight"
	PaceAtRisk  FeasibilityLevel = "at_risk"
)

type RecommendationSource string

const (
	SourceAdvisor  RecommendationSource = "advisor"
	SourceFallback RecommendationSource = "fallback"
)
