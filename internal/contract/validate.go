package contract

import (
	"time"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

type ValidateRequest struct {
	StudentID string
	Courses   []string

	// SlotAssignments maps course code to the slot label the student wants
	// to register under.
	SlotAssignments map[string]string

	Bounds domain.CreditBounds

	// Narrative asks the advisor for a verdict on top of the rule report.
	// The narrative never fails the request; when the advisor cannot
	// answer, the rule-based verdict is used.
	Narrative bool
}

func NewValidateRequest(studentID string, courses []string) ValidateRequest {
	return ValidateRequest{
		StudentID: studentID,
		Courses:   courses,
		Bounds:    domain.DefaultCreditBounds(),
		Narrative: true,
	}
}

type ValidateResponse struct {
	GeneratedAt  time.Time
	StudentID    string
	StudentName  string
	TotalCredits float64
	Report       ValidationReport
	Note         *FeasibilityNote
}
