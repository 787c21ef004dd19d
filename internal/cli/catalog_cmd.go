package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
)

func newCatalogCmd(app *App) *cobra.Command {
	var courseType string
	var year int
	var electives bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the course catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildCourseFilter(courseType, year, electives)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCourses(app.Roster.ListCourses(context.Background(), filter)))
			return nil
		},
	}

	cmd.Flags().StringVar(&courseType, "type", "", "Filter by course type")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by year level")
	cmd.Flags().BoolVar(&electives, "electives", false, "Only elective courses")

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Summarize the catalog by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatCatalogStats(app.Roster.CatalogStats(context.Background())))
			return nil
		},
	})

	return cmd
}
