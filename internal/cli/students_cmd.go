package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
)

func newStudentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List the student roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatStudents(app.Roster.ListStudents(context.Background())))
			return nil
		},
	}
}
