package contract

import (
	"time"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

type RecommendRequest struct {
	StudentID  string
	Bounds     domain.CreditBounds
	Interests  []string
	Workload   domain.WorkloadPreference
	Selected   []string
	Deselected []string
	Save       bool
}

// NewRecommendRequest returns a request with the default credit window and
// history persistence on. Bounds validation happens in the service layer.
func NewRecommendRequest(studentID string) RecommendRequest {
	return RecommendRequest{
		StudentID: studentID,
		Bounds:    domain.DefaultCreditBounds(),
		Save:      true,
	}
}

type RecommendResponse struct {
	GeneratedAt     time.Time
	StudentID       string
	StudentName     string
	Semester        int
	PoolSize        int
	Source          domain.RecommendationSource
	Recommendations []domain.Recommendation
	Warnings        []string
}
