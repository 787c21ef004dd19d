package history

import (
	"context"
	"errors"
	"time"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

// ErrNotFound indicates no history entry matched the query.
var ErrNotFound = errors.New("history entry not found")

// Preferences captures the request knobs that produced an entry, so a past
// run can be re-read in context.
type Preferences struct {
	MinCredits float64  `json:"min_credits"`
	MaxCredits float64  `json:"max_credits"`
	Interests  []string `json:"interests,omitempty"`
	Workload   string   `json:"workload,omitempty"`
	Selected   []string `json:"selected,omitempty"`
	Deselected []string `json:"deselected,omitempty"`
}

// Entry is one saved recommendation run.
type Entry struct {
	ID              string                      `json:"id"`
	CreatedAt       time.Time                   `json:"created_at"`
	StudentID       string                      `json:"student_id"`
	Semester        int                         `json:"semester"`
	Preferences     Preferences                 `json:"preferences"`
	Source          domain.RecommendationSource `json:"source"`
	Recommendations []domain.Recommendation     `json:"recommendations"`
}

// Store persists recommendation runs. Reads return entries newest first.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	ForStudent(ctx context.Context, studentID string) ([]Entry, error)
	ForSemester(ctx context.Context, studentID string, semester int) ([]Entry, error)

	// Latest returns the most recent entry for the student, or ErrNotFound
	// when none exist.
	Latest(ctx context.Context, studentID string) (*Entry, error)

	Clear(ctx context.Context, studentID string) error
}
