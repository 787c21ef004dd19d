package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/testutil"
)

func TestFallback_DesignatedProjectLeadsThePlan(t *testing.T) {
	pool := []domain.Course{
		testutil.NewTestCourse("DC1", testutil.WithDifficulty(4)),
		testutil.NewTestCourse("FC1", testutil.WithType(domain.CourseFoundation), testutil.WithCredits(3), testutil.WithDifficulty(1)),
		testutil.NewTestCourse("DC2", testutil.WithDifficulty(2)),
		testutil.NewTestCourse("PRJ7", testutil.WithProjectSemester(7), testutil.WithCredits(4)),
	}

	rec, err := Fallback(pool, domain.DefaultCreditBounds(), 7, nil)

	require.NoError(t, err)
	require.NotEmpty(t, rec.Courses)
	assert.Equal(t, "PRJ7", rec.Courses[0])
	assert.Contains(t, rec.CourseReasons["PRJ7"], "designated project phase")
}

func TestFallback_ProjectsPickedHighestCreditsFirst(t *testing.T) {
	pool := []domain.Course{
		testutil.NewTestCourse("PRJA", testutil.WithProjectSemester(8), testutil.WithCredits(4)),
		testutil.NewTestCourse("PRJB", testutil.WithProjectSemester(8), testutil.WithCredits(10)),
	}

	rec, err := Fallback(pool, domain.DefaultCreditBounds(), 8, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"PRJB", "PRJA"}, rec.Courses)
	assert.InDelta(t, 14.0, rec.TotalCredits, 0.001)
}

func TestFallback_MandatoryOrderedByAscendingDifficulty(t *testing.T) {
	pool := []domain.Course{
		testutil.NewTestCourse("DC1", testutil.WithDifficulty(4)),
		testutil.NewTestCourse("DC2", testutil.WithDifficulty(2)),
		testutil.NewTestCourse("FC1", testutil.WithType(domain.CourseFoundation), testutil.WithCredits(3), testutil.WithDifficulty(1)),
		testutil.NewTestCourse("FC2", testutil.WithType(domain.CourseFoundation), testutil.WithCredits(3), testutil.WithDifficulty(3)),
		testutil.NewTestCourse("DE1", testutil.WithType(domain.CourseDisciplineElective), testutil.WithDifficulty(1)),
	}

	rec, err := Fallback(pool, domain.DefaultCreditBounds(), 5, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"FC1", "DC2", "FC2", "DC1"}, rec.Courses)
	assert.InDelta(t, 14.0, rec.TotalCredits, 0.001)
}

func TestFallback_SkipsCourseThatWouldBreachMax(t *testing.T) {
	pool := []domain.Course{
		testutil.NewTestCourse("FC1", testutil.WithType(domain.CourseFoundation), testutil.WithCredits(3), testutil.WithDifficulty(1)),
		testutil.NewTestCourse("DC2", testutil.WithDifficulty(2)),
		testutil.NewTestCourse("BIG1", testutil.WithCredits(7), testutil.WithDifficulty(3)),
		testutil.NewTestCourse("DC1", testutil.WithDifficulty(4)),
		testutil.NewTestCourse("LNK1", testutil.WithType(domain.CourseDisciplineLinked), testutil.WithCredits(2), testutil.WithDifficulty(5)),
	}
	bounds := domain.CreditBounds{Min: 12, Max: 13}

	rec, err := Fallback(pool, bounds, 5, nil)

	require.NoError(t, err)
	assert.NotContains(t, rec.Courses, "BIG1") // 7 credits would overshoot 13
	assert.Equal(t, []string{"FC1", "DC2", "DC1", "LNK1"}, rec.Courses)
	assert.InDelta(t, 13.0, rec.TotalCredits, 0.001)
}

func TestFallback_NeverPicksElectives(t *testing.T) {
	pool := []domain.Course{
		testutil.NewTestCourse("DC1", testutil.WithDifficulty(2)),
		testutil.NewTestCourse("DE1", testutil.WithType(domain.CourseDisciplineElective), testutil.WithDifficulty(1)),
		testutil.NewTestCourse("OE1", testutil.WithType(domain.CourseOpenElective), testutil.WithCredits(2), testutil.WithDifficulty(1)),
	}
	bounds := domain.CreditBounds{Min: 4, Max: 24}

	rec, err := Fallback(pool, bounds, 5, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"DC1"}, rec.Courses)
}

func TestFallback_InfeasibleWhenMinUnreachable(t *testing.T) {
	pool := []domain.Course{
		testutil.NewTestCourse("FC1", testutil.WithType(domain.CourseFoundation), testutil.WithCredits(3)),
		testutil.NewTestCourse("DE1", testutil.WithType(domain.CourseDisciplineElective)),
	}

	rec, err := Fallback(pool, domain.DefaultCreditBounds(), 5, nil)

	require.ErrorIs(t, err, ErrInfeasible)
	assert.Nil(t, rec)
}

func TestFallback_RetakeReasonForFailedCourses(t *testing.T) {
	pool := []domain.Course{
		testutil.NewTestCourse("DC1", testutil.WithDifficulty(1)),
		testutil.NewTestCourse("DC2", testutil.WithDifficulty(2)),
		testutil.NewTestCourse("DC3", testutil.WithDifficulty(3)),
	}

	rec, err := Fallback(pool, domain.DefaultCreditBounds(), 5, map[string]bool{"DC2": true})

	require.NoError(t, err)
	assert.Equal(t, "clears an open failure", rec.CourseReasons["DC2"])
	assert.Equal(t, "required for graduation", rec.CourseReasons["DC1"])
	assert.Equal(t, []string{"DC2"}, rec.Breakdown.FailedRetakes)
}

func TestFallback_MarksSourceAndStrategy(t *testing.T) {
	pool := []domain.Course{
		testutil.NewTestCourse("DC1", testutil.WithDifficulty(1)),
		testutil.NewTestCourse("DC2", testutil.WithDifficulty(2)),
		testutil.NewTestCourse("DC3", testutil.WithDifficulty(3)),
	}

	rec, err := Fallback(pool, domain.DefaultCreditBounds(), 5, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, rec.Rank)
	assert.Equal(t, FallbackStrategy, rec.Strategy)
	assert.Equal(t, domain.SourceFallback, rec.Source)
	assert.NotEmpty(t, rec.Reasoning)
}
