package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
	"github.com/ffcs-tools/ffcs/internal/contract"
	"github.com/ffcs-tools/ffcs/internal/domain"
)

func newPoolCmd(app *App) *cobra.Command {
	var studentID, courseType string
	var electives bool

	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Show the courses a student is eligible to register for",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filter, err := buildCourseFilter(courseType, 0, electives)
			if err != nil {
				return err
			}

			student, err := app.Roster.GetStudent(ctx, studentID)
			if err != nil {
				return friendly(err)
			}
			courses, err := app.Roster.EligibleCourses(ctx, studentID, filter)
			if err != nil {
				return friendly(err)
			}

			fmt.Print(formatter.FormatPool(student, courses))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student id")
	cmd.Flags().StringVar(&courseType, "type", "", "Filter by course type")
	cmd.Flags().BoolVar(&electives, "electives", false, "Only elective courses")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

// buildCourseFilter normalizes and checks the shared listing flags.
func buildCourseFilter(courseType string, year int, electives bool) (contract.CourseFilter, error) {
	filter := contract.CourseFilter{Year: year, ElectivesOnly: electives}
	if courseType != "" {
		normalized := strings.ToUpper(strings.ReplaceAll(courseType, "-", "_"))
		if !domain.ValidCourseTypes[normalized] {
			return filter, fmt.Errorf(
				"unknown course type %q (one of FOUNDATION, DISCIPLINE_CORE, DISCIPLINE_LINKED, DISCIPLINE_ELECTIVE, OPEN_ELECTIVE, PROJECT)",
				courseType)
		}
		filter.Type = domain.CourseType(normalized)
	}
	return filter, nil
}
