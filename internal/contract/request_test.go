package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- RecommendRequest constructor defaults ---

func TestNewRecommendRequest_SetsDefaults(t *testing.T) {
	req := NewRecommendRequest("21BCE1001")

	assert.Equal(t, "21BCE1001", req.StudentID)
	assert.Equal(t, 12.0, req.Bounds.Min)
	assert.Equal(t, 24.0, req.Bounds.Max)
	assert.True(t, req.Save)
	assert.Nil(t, req.Interests)
	assert.Nil(t, req.Selected)
	assert.Nil(t, req.Deselected)
}

func TestNewRecommendRequest_BoundsNotValidatedHere(t *testing.T) {
	// The DTO preserves whatever the caller sets; the service validates.
	req := NewRecommendRequest("21BCE1001")
	req.Bounds.Min = -5
	assert.Equal(t, -5.0, req.Bounds.Min)
}

// --- ProjectionRequest constructor defaults ---

func TestNewProjectionRequest_SetsDefaults(t *testing.T) {
	req := NewProjectionRequest("21BCE1001")

	assert.Equal(t, "21BCE1001", req.StudentID)
	assert.Equal(t, 3, req.Horizon)
	assert.Equal(t, 1, req.Pick)
	assert.Equal(t, 12.0, req.Bounds.Min)
	assert.Equal(t, 24.0, req.Bounds.Max)
}

// --- ValidateRequest constructor defaults ---

func TestNewValidateRequest_SetsDefaults(t *testing.T) {
	req := NewValidateRequest("21BCE1001", []string{"CSE3001", "CSE3002"})

	assert.Equal(t, "21BCE1001", req.StudentID)
	assert.Equal(t, []string{"CSE3001", "CSE3002"}, req.Courses)
	assert.True(t, req.Narrative)
	assert.Nil(t, req.SlotAssignments)
}

// --- typed errors ---

func TestError_FormatsCodeAndMessage(t *testing.T) {
	err := NewError(ErrStudentNotFound, "no student with id %s", "21BCE1001")

	assert.Equal(t, "STUDENT_NOT_FOUND: no student with id 21BCE1001", err.Error())
}

func TestIsCode_MatchesThroughWrapping(t *testing.T) {
	inner := NewError(ErrEmptyPool, "no eligible courses")
	wrapped := fmt.Errorf("recommend: %w", inner)

	assert.True(t, IsCode(wrapped, ErrEmptyPool))
	assert.False(t, IsCode(wrapped, ErrInfeasible))
	assert.False(t, IsCode(errors.New("plain"), ErrEmptyPool))
}
