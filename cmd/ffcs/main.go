package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/ffcs-tools/ffcs/internal/advisor"
	"github.com/ffcs-tools/ffcs/internal/cli"
	"github.com/ffcs-tools/ffcs/internal/dataset"
	"github.com/ffcs-tools/ffcs/internal/db"
	"github.com/ffcs-tools/ffcs/internal/domain"
	"github.com/ffcs-tools/ffcs/internal/history"
	"github.com/ffcs-tools/ffcs/internal/llm"
	"github.com/ffcs-tools/ffcs/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := defaultOptions()
	if err != nil {
		return err
	}

	app := &cli.App{
		Options: opts,
		Rules:   domain.LoadProgramRules(),
		Bounds:  domain.LoadCreditBounds(),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The history database must outlive Execute; Bootstrap only opens it.
	var dbHandle *sql.DB
	defer func() {
		if dbHandle != nil {
			dbHandle.Close()
		}
	}()

	// Bootstrap runs after flag parsing so --catalog and friends apply.
	app.Bootstrap = func(a *cli.App) error {
		catalog, warnings, err := dataset.LoadCatalog(a.Options.CatalogPath, a.Rules)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}

		students, err := dataset.LoadStudents(a.Options.StudentsPath, a.Rules)
		if err != nil {
			return fmt.Errorf("loading students: %w", err)
		}
		roster := dataset.NewRoster(catalog, students)

		var store history.Store
		if a.Options.DBPath != "" {
			database, err := db.OpenDB(a.Options.DBPath)
			if err != nil {
				return fmt.Errorf("opening history database: %w", err)
			}
			dbHandle = database
			store = history.NewSQLiteStore(database)
		} else {
			if err := os.MkdirAll(filepath.Dir(a.Options.HistoryPath), 0o755); err != nil {
				return fmt.Errorf("creating history directory: %w", err)
			}
			store = history.NewFileStore(a.Options.HistoryPath)
		}

		llmCfg := llm.LoadConfig()
		var client llm.Client = llm.Disabled{}
		if llmCfg.Enabled() {
			var observer llm.Observer = llm.NoopObserver{}
			if llmCfg.LogCalls || a.Options.Verbose {
				observer = llm.NewLogObserver(os.Stderr)
			}
			client = llm.NewHTTPClient(llmCfg, observer)
		}
		adv := advisor.NewService(client)

		var observers []service.UseCaseObserver
		if a.Options.Verbose {
			observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
		}

		a.Recommend = service.NewRecommendService(roster, adv, store, a.Rules, observers...)
		a.Projection = service.NewProjectionService(roster, adv, a.Rules, observers...)
		a.Validate = service.NewValidateService(roster, adv, a.Rules, observers...)
		a.Roster = service.NewRosterService(roster, a.Rules)
		a.History = store
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}

// defaultOptions seeds flag defaults from the environment.
func defaultOptions() (cli.Options, error) {
	opts := cli.Options{
		CatalogPath:  envOr("FFCS_CATALOG", "data/catalog.json"),
		StudentsPath: envOr("FFCS_STUDENTS", "data/students.json"),
		DBPath:       os.Getenv("FFCS_DB"),
	}

	historyPath := os.Getenv("FFCS_HISTORY")
	if historyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return opts, fmt.Errorf("finding home directory: %w", err)
		}
		historyPath = filepath.Join(home, ".ffcs", "history.json")
	}
	opts.HistoryPath = historyPath

	return opts, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
