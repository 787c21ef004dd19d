package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffcs-tools/ffcs/internal/domain"
)

func rosterStudent(id, name string) *domain.StudentProfile {
	return &domain.StudentProfile{ID: id, Name: name, Semester: 3}
}

func TestNewRoster_KeepsLoadOrder(t *testing.T) {
	catalog := domain.NewCatalog(nil)
	r := NewRoster(catalog, []*domain.StudentProfile{
		rosterStudent("21BCE1003", "Charu"),
		rosterStudent("21BCE1001", "Ananya"),
		rosterStudent("21BCE1002", "Bala"),
	})

	require.Equal(t, 3, r.Len())
	students := r.Students()
	assert.Equal(t, "21BCE1003", students[0].ID)
	assert.Equal(t, "21BCE1001", students[1].ID)
	assert.Equal(t, "21BCE1002", students[2].ID)
}

func TestNewRoster_FirstDuplicateWins(t *testing.T) {
	r := NewRoster(domain.NewCatalog(nil), []*domain.StudentProfile{
		rosterStudent("21BCE1001", "Ananya"),
		rosterStudent("21BCE1001", "Impostor"),
	})

	require.Equal(t, 1, r.Len())
	s, ok := r.Student("21BCE1001")
	require.True(t, ok)
	assert.Equal(t, "Ananya", s.Name)
}

func TestRoster_UnknownStudent(t *testing.T) {
	r := NewRoster(domain.NewCatalog(nil), nil)
	_, ok := r.Student("nobody")
	assert.False(t, ok)
}
