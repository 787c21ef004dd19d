package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/history"
	"github.com/ffcs-tools/ffcs/internal/service"
)

// Options holds the persistent flag values shared by every command. main
// seeds the defaults from the environment before Execute parses the flags.
type Options struct {
	CatalogPath  string
	StudentsPath string
	HistoryPath  string
	DBPath       string
	NoColor      bool
	Verbose      bool
}

// App holds the service interfaces used by CLI commands plus the wiring
// hooks main fills in.
type App struct {
	Options Options

	Recommend  service.RecommendService
	Projection service.ProjectionService
	Validate   service.ValidateService
	Roster     service.RosterService
	History    history.Store

	Rules  domain.ProgramRules
	Bounds domain.CreditBounds

	// IsInteractive reports whether stdin is a terminal. Forms, spinners
	// and the strategy browser all stay off without one.
	IsInteractive func() bool

	// Bootstrap loads datasets and wires services. It runs after flag
	// parsing so --catalog and friends apply, and before any RunE.
	Bootstrap func(app *App) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "ffcs" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ffcs",
		Short: "Course recommendations and registration planning for FFCS semesters",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Options.NoColor {
				formatter.DisableColor()
			}
			if app.Bootstrap != nil {
				return app.Bootstrap(app)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&app.Options.CatalogPath, "catalog", app.Options.CatalogPath, "Path to the course catalog JSON")
	pf.StringVar(&app.Options.StudentsPath, "students", app.Options.StudentsPath, "Path to the student roster JSON")
	pf.StringVar(&app.Options.HistoryPath, "history", app.Options.HistoryPath, "Path to the history JSON file")
	pf.StringVar(&app.Options.DBPath, "db", app.Options.DBPath, "SQLite history database (takes precedence over --history)")
	pf.BoolVar(&app.Options.NoColor, "no-color", app.Options.NoColor, "Disable colored output")
	pf.BoolVar(&app.Options.Verbose, "verbose", app.Options.Verbose, "Log service and advisor calls to stderr")

	root.AddCommand(
		newRecommendCmd(app),
		newPlanCmd(app),
		newProjectCmd(app),
		newValidateCmd(app),
		newPoolCmd(app),
		newStudentsCmd(app),
		newCatalogCmd(app),
		newHistoryCmd(app),
	)

	return root
}

// friendly appends a next-step hint to typed request errors. Internal
// errors pass through untouched.
func friendly(err error) error {
	var cerr *contract.Error
	if !errors.As(err, &cerr) {
		return err
	}
	switch cerr.Code {
	case contract.ErrStudentNotFound:
		return fmt.Errorf("%s (run 'ffcs students' to list the roster)", cerr.Message)
	case contract.ErrEmptyPool:
		return fmt.Errorf("%s (check --catalog and the student's year)", cerr.Message)
	case contract.ErrInfeasible:
		return fmt.Errorf("%s (relax --min/--max and retry)", cerr.Message)
	case contract.ErrInvalidTarget, contract.ErrInvalidBounds, contract.ErrBadRequest:
		return errors.New(cerr.Message)
	default:
		return err
	}
}

// applyBoundsFlags overrides the request's default bounds with whichever of
// --min/--max the user actually set.
func applyBoundsFlags(flags *pflag.FlagSet, bounds *domain.CreditBounds, min, max float64) {
	if flags.Changed("min") {
		bounds.Min = min
	}
	if flags.Changed("max") {
		bounds.Max = max
	}
}

// courseIndex builds a code-to-course lookup for formatters.
func courseIndex(ctx context.Context, app *App) map[string]domain.Course {
	courses := app.Roster.ListCourses(ctx, contract.CourseFilter{})
	index := make(map[string]domain.Course, len(courses))
	for _, c := range courses {
		index[c.Code] = c
	}
	return index
}
