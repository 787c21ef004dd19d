package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/testutil"
)

// validatorRules shrinks the mandatory-credit requirement to match the
// small test catalog so feasibility stays quiet unless a test provokes it.
func validatorRules() domain.ProgramRules {
	return domain.ProgramRules{TotalCredits: 60, MandatoryCredits: 40, Semesters: 8, TopGrade: "S"}
}

// enrolledStudent carries 28 passed mandatory credits: the four year-one
// foundations plus the four year-two cores.
func enrolledStudent(sem int) *domain.StudentProfile {
	return testutil.NewTestStudent("Priya",
		testutil.WithSemester(sem),
		testutil.WithPassed(1, 4, "MAT1001", "PHY1001", "CSE1001", "ENG1001"),
		testutil.WithPassed(3, 4, "CSE2001", "CSE2002", "ECE2001", "MAT2001"),
	)
}

func TestValidate_AcceptsCleanSelection(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), validatorRules())
	student := enrolledStudent(5)

	report := v.Validate(student, []string{"CSE3001", "CSE3002", "CSE3003", "HUM3001"}, nil, domain.DefaultCreditBounds())

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, domain.PaceOnTrack, report.Feasibility.Level)
}

func TestValidate_FlagsUnknownCourse(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), validatorRules())
	student := enrolledStudent(5)

	report := v.Validate(student, []string{"CSE3001", "CSE3002", "CSE3003", "HUM3001", "ZZZ9"}, nil, domain.DefaultCreditBounds())

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "unknown course code ZZZ9")
}

func TestValidate_FlagsDuplicateSelection(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), validatorRules())
	student := enrolledStudent(5)

	report := v.Validate(student, []string{"CSE3001", "CSE3001", "CSE3002", "CSE3003", "HUM3001"}, nil, domain.DefaultCreditBounds())

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors, "duplicate course CSE3001 in selection")
}

func TestValidate_FlagsMissingPrerequisite(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), validatorRules())
	student := testutil.NewTestStudent("Priya",
		testutil.WithSemester(5),
		testutil.WithPassed(1, 4, "MAT1001", "PHY1001", "CSE1001", "ENG1001"),
	)

	// CSE3001 requires CSE2001, which this student never took.
	report := v.Validate(student, []string{"CSE3001", "CSE2002", "ECE2001", "MAT2001"}, nil, domain.DefaultCreditBounds())

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors, "CSE3001 requires CSE2001 (not passed)")
}

func TestValidate_FlagsSlotClashesPerToken(t *testing.T) {
	catalog := domain.NewCatalog([]domain.Course{
		testutil.NewTestCourse("CSX1", testutil.WithCredits(6), testutil.WithSlots("A1+TA1")),
		testutil.NewTestCourse("CSX2", testutil.WithCredits(6), testutil.WithSlots("A1", "B1")),
		testutil.NewTestCourse("CSX3", testutil.WithCredits(6), testutil.WithSlots("TA1")),
	})
	v := NewValidator(catalog, validatorRules())
	student := testutil.NewTestStudent("Priya", testutil.WithSemester(5))

	report := v.Validate(student, []string{"CSX1", "CSX2", "CSX3"},
		map[string]string{"CSX1": "A1+TA1", "CSX2": "A1", "CSX3": "TA1"}, domain.DefaultCreditBounds())

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "slot clash on A1 between CSX1 and CSX2")
	assert.Contains(t, report.Errors, "slot clash on TA1 between CSX1 and CSX3")

	// Moving CSX2 to its B1 option and dropping CSX3 clears the clash.
	report = v.Validate(student, []string{"CSX1", "CSX2"},
		map[string]string{"CSX1": "A1+TA1", "CSX2": "B1"}, domain.DefaultCreditBounds())
	assert.True(t, report.Valid)
}

func TestValidate_WarnsOnUndeclaredSlotLabel(t *testing.T) {
	catalog := domain.NewCatalog([]domain.Course{
		testutil.NewTestCourse("CSX1", testutil.WithCredits(6), testutil.WithSlots("A1+TA1")),
		testutil.NewTestCourse("CSX2", testutil.WithCredits(6), testutil.WithSlots("A1", "B1")),
	})
	v := NewValidator(catalog, validatorRules())
	student := testutil.NewTestStudent("Priya", testutil.WithSemester(5))

	report := v.Validate(student, []string{"CSX1", "CSX2"},
		map[string]string{"CSX2": "Z9"}, domain.DefaultCreditBounds())

	assert.True(t, report.Valid)
	assert.Contains(t, report.Warnings, "CSX2 is not offered in slot Z9")
}

func TestValidate_FlagsCreditsBelowMinimum(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), validatorRules())
	student := enrolledStudent(5)

	report := v.Validate(student, []string{"HUM3001", "LAW3001"}, nil, domain.DefaultCreditBounds())

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "total credits 4.0 below minimum 12.0")
}

func TestValidate_FlagsCreditsAboveMaximum(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), validatorRules())
	student := enrolledStudent(5)

	codes := []string{"CSE3003", "HUM3001", "LAW3001", "CSE2001", "CSE2002", "ECE2001", "MAT2001", "CSE3001"}

	report := v.Validate(student, codes, nil, domain.DefaultCreditBounds())

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors, "total credits 26.0 above maximum 24.0")
}

func TestValidate_TerminalSemesterShortfallWarnsWithoutInvalidating(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), validatorRules())
	student := testutil.NewTestStudent("Priya",
		testutil.WithSemester(8),
		testutil.WithPassed(1, 4, "MAT1001", "PHY1001", "CSE1001", "ENG1001"),
		testutil.WithPassed(3, 4, "CSE2001", "CSE2002", "ECE2001", "MAT2001"),
		testutil.WithPassed(5, 4, "CSE3001"),
		testutil.WithPassed(7, 4, "CSE4097"),
	) // 36 of the 40 mandatory credits done

	report := v.Validate(student, []string{"CSE3002", "CSE3003", "CSE4001", "HUM3001"}, nil, domain.DefaultCreditBounds())

	assert.True(t, report.Valid, "feasibility is advisory and must not invalidate")
	assert.Empty(t, report.Errors)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "terminal semester")
	assert.Equal(t, domain.PaceAtRisk, report.Feasibility.Level)
	assert.Equal(t, 0, report.Feasibility.RemainingSemesters)
	assert.InDelta(t, 4.0, report.Feasibility.RemainingMandatory, 0.001)
}

func TestValidate_TerminalSemesterClearedByFinalProject(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), validatorRules())
	student := testutil.NewTestStudent("Priya",
		testutil.WithSemester(8),
		testutil.WithPassed(1, 4, "MAT1001", "PHY1001", "CSE1001", "ENG1001"),
		testutil.WithPassed(3, 4, "CSE2001", "CSE2002", "ECE2001", "MAT2001"),
		testutil.WithPassed(5, 4, "CSE3001"),
		testutil.WithPassed(7, 4, "CSE4097"),
	)

	// The 10-credit terminal project covers the outstanding 4 credits.
	report := v.Validate(student, []string{"CSE4099", "CSE3003"}, nil, domain.DefaultCreditBounds())

	assert.True(t, report.Valid)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, domain.PaceOnTrack, report.Feasibility.Level)
	assert.InDelta(t, 0.0, report.Feasibility.RemainingMandatory, 0.001)
}

func TestValidate_TightPaceWarning(t *testing.T) {
	rules := domain.ProgramRules{TotalCredits: 80, MandatoryCredits: 52, Semesters: 8, TopGrade: "S"}
	v := NewValidator(testutil.NewProgramCatalog(), rules)
	student := testutil.NewTestStudent("Priya", testutil.WithSemester(6))

	// 39 credits left over two semesters needs 19.5 per semester, just
	// above the 19.2 tight threshold at a 24-credit max.
	report := v.Validate(student, []string{"MAT1001", "PHY1001", "CSE1001", "ENG1001"}, nil, domain.DefaultCreditBounds())

	assert.True(t, report.Valid)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "pace tight")
	assert.Equal(t, domain.PaceTight, report.Feasibility.Level)
	assert.InDelta(t, 19.5, report.Feasibility.PerSemesterNeed, 0.001)
}

func TestValidate_AtRiskPaceWarning(t *testing.T) {
	v := NewValidator(testutil.NewProgramCatalog(), domain.DefaultProgramRules())
	student := enrolledStudent(5)

	// 88 of 120 mandatory credits left over three semesters.
	report := v.Validate(student, []string{"CSE3001", "CSE3002", "CSE3003", "HUM3001"}, nil, domain.DefaultCreditBounds())

	assert.True(t, report.Valid)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "graduation at risk")
	assert.Equal(t, domain.PaceAtRisk, report.Feasibility.Level)
	assert.Equal(t, 3, report.Feasibility.RemainingSemesters)
}

func TestFeasibility_UnknownPassedCodesCountAsMandatory(t *testing.T) {
	rules := domain.ProgramRules{TotalCredits: 40, MandatoryCredits: 20, Semesters: 8, TopGrade: "S"}
	v := NewValidator(testutil.NewProgramCatalog(), rules)
	student := testutil.NewTestStudent("Priya",
		testutil.WithSemester(7),
		testutil.WithPassed(2, 10, "OLD1001"), // legacy code, not in the catalog
	)

	report := v.Feasibility(student, nil, domain.DefaultCreditBounds())

	assert.InDelta(t, 10.0, report.RemainingMandatory, 0.001)
	assert.Equal(t, domain.PaceOnTrack, report.Level)
}

func TestFeasibility_PassedElectivesDoNotReduceMandatory(t *testing.T) {
	rules := domain.ProgramRules{TotalCredits: 40, MandatoryCredits: 20, Semesters: 8, TopGrade: "S"}
	v := NewValidator(testutil.NewProgramCatalog(), rules)
	student := testutil.NewTestStudent("Priya",
		testutil.WithSemester(5),
		testutil.WithPassed(2, 2, "HUM3001", "LAW3001"),
	)

	report := v.Feasibility(student, nil, domain.DefaultCreditBounds())

	assert.InDelta(t, 20.0, report.RemainingMandatory, 0.001)
}
