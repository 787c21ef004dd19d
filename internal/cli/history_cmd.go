package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
	"github.com/ffcs-tools/ffcs/internal/history"
)

func newHistoryCmd(app *App) *cobra.Command {
	var studentID string
	var semester int
	var latest, clear bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect saved recommendation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if app.History == nil {
				return fmt.Errorf("no history store configured (set --history or --db)")
			}

			switch {
			case clear:
				return clearHistory(ctx, app, studentID)
			case latest:
				entry, err := app.History.Latest(ctx, studentID)
				if errors.Is(err, history.ErrNotFound) {
					fmt.Println(formatter.Dim(fmt.Sprintf("No saved runs for %s.", studentID)))
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatHistoryEntry(entry))
				return nil
			default:
				var entries []history.Entry
				var err error
				if cmd.Flags().Changed("semester") {
					entries, err = app.History.ForSemester(ctx, studentID, semester)
				} else {
					entries, err = app.History.ForStudent(ctx, studentID)
				}
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println(formatter.Dim(fmt.Sprintf("No saved runs for %s.", studentID)))
					return nil
				}
				fmt.Print(formatter.FormatHistory(entries))
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student id")
	cmd.Flags().IntVar(&semester, "semester", 0, "Only runs for this semester")
	cmd.Flags().BoolVar(&latest, "latest", false, "Show the most recent run in full")
	cmd.Flags().BoolVar(&clear, "clear", false, "Delete the student's saved runs")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func clearHistory(ctx context.Context, app *App, studentID string) error {
	if app.interactive() {
		confirmed := false
		form := confirmForm(fmt.Sprintf("Delete all saved runs for %s?", studentID), &confirmed)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println(formatter.Dim("Aborted."))
			return nil
		}
	}
	if err := app.History.Clear(ctx, studentID); err != nil {
		return err
	}
	fmt.Println(formatter.StyleGreen.Render(fmt.Sprintf("History cleared for %s.", studentID)))
	return nil
}
