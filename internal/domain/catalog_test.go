package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_LastSeenWinsOnDuplicateCode(t *testing.T) {
	c := NewCatalog([]Course{
		{Code: "CSE201", Name: "Old Name", Credits: 3},
		{Code: "MAT102", Credits: 4},
		{Code: "CSE201", Name: "New Name", Credits: 4},
	})
	require.Equal(t, 2, c.Len(), "duplicate collapses onto the first position")
	got, ok := c.ByCode("CSE201")
	require.True(t, ok)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, 4.0, got.Credits)
	assert.Equal(t, "CSE201", c.Courses()[0].Code, "position of first occurrence is kept")
}

func TestByCode_Missing(t *testing.T) {
	c := NewCatalog(nil)
	_, ok := c.ByCode("NOPE")
	assert.False(t, ok)
	assert.False(t, c.Has("NOPE"))
}

func TestCreditSum_SkipsUnknownCodes(t *testing.T) {
	c := NewCatalog([]Course{
		{Code: "A", Credits: 3},
		{Code: "B", Credits: 4},
	})
	assert.Equal(t, 7.0, c.CreditSum([]string{"A", "B", "GHOST"}))
}

func TestCreditSum_CountsOccurrences(t *testing.T) {
	c := NewCatalog([]Course{{Code: "A", Credits: 3}})
	assert.Equal(t, 6.0, c.CreditSum([]string{"A", "A"}), "callers dedupe when they need set semantics")
}

func TestMandatory_PreservesCatalogOrder(t *testing.T) {
	c := NewCatalog([]Course{
		{Code: "OE1", Type: CourseOpenElective},
		{Code: "FC1", Type: CourseFoundation},
		{Code: "DC1", Type: CourseDisciplineCore},
		{Code: "DE1", Type: CourseDisciplineElective},
		{Code: "DL1", Type: CourseDisciplineLinked},
	})
	var codes []string
	for _, course := range c.Mandatory() {
		codes = append(codes, course.Code)
	}
	assert.Equal(t, []string{"FC1", "DC1", "DL1"}, codes)
}

func TestCourses_ReturnsCopy(t *testing.T) {
	c := NewCatalog([]Course{{Code: "A", Credits: 3}})
	list := c.Courses()
	list[0].Credits = 99
	got, _ := c.ByCode("A")
	assert.Equal(t, 3.0, got.Credits)
}
