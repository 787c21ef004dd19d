package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffcs-tools/ffcs/internal/advisor"
	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/dataset"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/history"
	"github.com/ffcs-tools/ffcs/internal/llm"
	"github.com/ffcs-tools/ffcs/internal/service"
	"github.com/ffcs-tools/ffcs/internal/testutil"
)

// testApp wires a full App over the fixture catalog with the advisor
// disabled, so every command exercises the deterministic fallback path.
func testApp(t *testing.T, students ...*domain.StudentProfile) *App {
	t.Helper()

	roster := dataset.NewRoster(testutil.NewProgramCatalog(), students)
	adv := advisor.NewService(llm.Disabled{})
	rules := domain.DefaultProgramRules()
	store := history.NewFileStore(filepath.Join(t.TempDir(), "history.json"))

	return &App{
		Recommend:  service.NewRecommendService(roster, adv, store, rules),
		Projection: service.NewProjectionService(roster, adv, rules),
		Validate:   service.NewValidateService(roster, adv, rules),
		Roster:     service.NewRosterService(roster, rules),
		History:    store,
		Rules:      rules,
		Bounds:     domain.DefaultCreditBounds(),
	}
}

// fixtureStudent mirrors the semester-5 profile used across service tests:
// years one and two passed clean, CSE2002 failed and MAT2001 still owed.
func fixtureStudent() *domain.StudentProfile {
	return testutil.NewTestStudent("Dev Narayan",
		testutil.WithSemester(5),
		testutil.WithCGPA(7.2),
		testutil.WithCompletedCredits(20),
		testutil.WithPassed(1, 4, "MAT1001", "PHY1001"),
		testutil.WithPassed(2, 3, "CSE1001"),
		testutil.WithPassed(2, 2, "ENG1001"),
		testutil.WithPassed(3, 4, "CSE2001"),
		testutil.WithPassed(3, 3, "ECE2001"),
		testutil.WithFailed(4, 4, "CSE2002"),
	)
}

// executeCmd runs a cobra command and captures cobra-written output. Text
// printed via fmt.Print goes to os.Stdout and is not asserted here; the
// formatter package owns content-level tests.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	err := root.Execute()
	return buf.String(), err
}

// --- root command ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "ffcs")
}

func TestRootCmd_BootstrapRunsBeforeCommands(t *testing.T) {
	app := testApp(t, fixtureStudent())
	var gotCatalog string
	app.Bootstrap = func(a *App) error {
		gotCatalog = a.Options.CatalogPath
		return nil
	}

	_, err := executeCmd(t, app, "--catalog", "custom.json", "students")
	require.NoError(t, err)
	assert.Equal(t, "custom.json", gotCatalog)
}

// --- students command ---

func TestStudentsCmd_EmptyRoster(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "students")
	require.NoError(t, err)
}

func TestStudentsCmd_WithRoster(t *testing.T) {
	app := testApp(t, fixtureStudent())

	_, err := executeCmd(t, app, "students")
	require.NoError(t, err)
}

// --- catalog command ---

func TestCatalogCmd_ListsAndFilters(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "catalog")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "catalog", "--electives")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "catalog", "--type", "discipline-core")
	require.NoError(t, err)
}

func TestCatalogCmd_RejectsUnknownType(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "catalog", "--type", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown course type")
	assert.Contains(t, err.Error(), "OPEN_ELECTIVE")
}

func TestCatalogStatsCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "catalog", "stats")
	require.NoError(t, err)
}

// --- pool command ---

func TestPoolCmd_WithStudent(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "pool", "--student", student.ID)
	require.NoError(t, err)
}

func TestPoolCmd_UnknownStudentGetsRosterHint(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "pool", "--student", "22BCE9999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'ffcs students'")
}

func TestPoolCmd_RequiresStudentFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "pool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student")
}

// --- recommend command ---

func TestRecommendCmd_FallbackWithoutAdvisor(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "recommend", "--student", student.ID)
	require.NoError(t, err)

	// The run lands in history unless --no-save is passed.
	latest, err := app.History.Latest(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, latest.Source)
}

func TestRecommendCmd_NoSaveSkipsHistory(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "recommend", "--student", student.ID, "--no-save")
	require.NoError(t, err)

	_, err = app.History.Latest(context.Background(), student.ID)
	assert.ErrorIs(t, err, history.ErrNotFound)
}

func TestRecommendCmd_BoundsAndPins(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "recommend",
		"--student", student.ID,
		"--min", "12", "--max", "20",
		"--select", "CSE2002",
		"--workload", "low",
	)
	require.NoError(t, err)
}

func TestRecommendCmd_RequiresStudentWithoutTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "recommend")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--student is required")
}

func TestRecommendCmd_BrowseNeedsTerminal(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "recommend", "--student", student.ID, "--browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestRecommendCmd_InvalidBoundsSurfaceCleanly(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "recommend", "--student", student.ID, "--min", "30", "--max", "12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need 0 < min <= max")
	assert.NotContains(t, err.Error(), "INVALID_BOUNDS")
}

// --- plan / project commands ---

func TestPlanPathCmd(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "plan", "path", "--student", student.ID, "--horizon", "2")
	require.NoError(t, err)
}

func TestProjectCmd_IsPathShorthand(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "project", "--student", student.ID)
	require.NoError(t, err)
}

func TestPlanPathCmd_UnknownStudent(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "path", "--student", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'ffcs students'")
}

// --- validate command ---

func TestValidateCmd_CleanSelection(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "validate",
		"--student", student.ID,
		"--courses", "CSE2002,MAT2001,CSE3001,HUM3001",
		"--slot", "CSE2002=B2+TB2",
		"--no-narrative",
	)
	require.NoError(t, err)
}

func TestValidateCmd_BadSlotSyntax(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "validate",
		"--student", student.ID,
		"--courses", "CSE2002",
		"--slot", "CSE2002",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CODE=LABEL")
}

func TestValidateCmd_RequiresCourses(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "validate", "--student", student.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "courses")
}

// --- history command ---

func TestHistoryCmd_EmptyIsNotAnError(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "history", "--student", student.ID)
	require.NoError(t, err)
}

func TestHistoryCmd_LatestAfterRecommend(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)

	_, err := executeCmd(t, app, "recommend", "--student", student.ID)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "history", "--student", student.ID, "--latest")
	require.NoError(t, err)
}

func TestHistoryCmd_ClearWithoutTerminalSkipsPrompt(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)
	ctx := context.Background()

	_, err := executeCmd(t, app, "recommend", "--student", student.ID)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "history", "--student", student.ID, "--clear")
	require.NoError(t, err)

	_, err = app.History.Latest(ctx, student.ID)
	assert.ErrorIs(t, err, history.ErrNotFound)
}

func TestHistoryCmd_NilStore(t *testing.T) {
	student := fixtureStudent()
	app := testApp(t, student)
	app.History = nil

	_, err := executeCmd(t, app, "history", "--student", student.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no history store")
}

// --- shared helpers ---

func TestParseSlotAssignments(t *testing.T) {
	got, err := parseSlotAssignments([]string{"CSE3001=A1+TA1", " CSE3003 = C1 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"CSE3001": "A1+TA1", "CSE3003": "C1"}, got)
}

func TestParseSlotAssignments_RejectsMissingSeparator(t *testing.T) {
	_, err := parseSlotAssignments([]string{"CSE3001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `got "CSE3001"`)
}

func TestBuildCourseFilter_NormalizesType(t *testing.T) {
	filter, err := buildCourseFilter("discipline-elective", 3, true)
	require.NoError(t, err)
	assert.Equal(t, domain.CourseDisciplineElective, filter.Type)
	assert.Equal(t, 3, filter.Year)
	assert.True(t, filter.ElectivesOnly)
}

func TestBuildCourseFilter_UnknownType(t *testing.T) {
	_, err := buildCourseFilter("weekend", 0, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOUNDATION")
}

func TestFriendly_AddsHintsForRequestErrors(t *testing.T) {
	err := friendly(contract.NewError(contract.ErrStudentNotFound, "no student with id %s", "x"))
	assert.Contains(t, err.Error(), "ffcs students")

	err = friendly(contract.NewError(contract.ErrInfeasible, "pool cannot reach 40 credits"))
	assert.Contains(t, err.Error(), "--min/--max")

	plain := assert.AnError
	assert.Equal(t, plain, friendly(plain))
}
