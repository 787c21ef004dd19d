package contract

import (
	"time"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

type ProjectionRequest struct {
	StudentID string

	// Horizon is the number of future semesters to project. The service
	// caps it at 3 and at the semesters the program has left.
	Horizon int

	// Pick is the strategy rank whose courses are assumed passed when the
	// chain advances to the next semester.
	Pick int

	Bounds domain.CreditBounds
}

func NewProjectionRequest(studentID string) ProjectionRequest {
	return ProjectionRequest{
		StudentID: studentID,
		Horizon:   3,
		Pick:      1,
		Bounds:    domain.DefaultCreditBounds(),
	}
}

// ProjectionStep is one projected semester. Note is set when the chain
// stopped at this step instead of producing recommendations.
type ProjectionStep struct {
	Semester         int
	SimulatedCredits float64
	PoolSize         int
	Source           domain.RecommendationSource
	Recommendations  []domain.Recommendation
	ChosenCodes      []string
	Note             string
}

type ProjectionResponse struct {
	GeneratedAt time.Time
	StudentID   string
	StudentName string

	// AssumedPassed holds the current-semester codes the chain assumed
	// passed before the first projected step.
	AssumedPassed []string

	Steps    []ProjectionStep
	Warnings []string
}
