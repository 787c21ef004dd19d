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

func newRecommendCmd(app *App) *cobra.Command {
	var studentID, workload string
	var minCredits, maxCredits float64
	var selected, deselected, interests []string
	var noSave, interactive, browse bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend next-semester course loads for a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.NewRecommendRequest(studentID)
			applyBoundsFlags(cmd.Flags(), &req.Bounds, minCredits, maxCredits)
			req.Selected = selected
			req.Deselected = deselected
			req.Interests = interests
			if cmd.Flags().Changed("workload") {
				req.Workload = domain.WorkloadPreference(strings.ToUpper(workload))
			}
			if noSave {
				req.Save = false
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("interactive mode needs a terminal; pass --student instead")
				}
				if err := runRecommendForm(ctx, app, &req); err != nil {
					return err
				}
			}
			if req.StudentID == "" {
				return fmt.Errorf("--student is required (or run with --interactive)")
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("Consulting the advisor")
			}
			resp, err := app.Recommend.Recommend(ctx, req)
			stop()
			if err != nil {
				return friendly(err)
			}

			if browse {
				if !app.interactive() {
					return fmt.Errorf("--browse needs a terminal")
				}
				return runBrowse(app, resp, req.Bounds)
			}

			fmt.Print(formatter.FormatRecommend(resp, courseIndex(ctx, app)))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student id to plan for")
	cmd.Flags().Float64Var(&minCredits, "min", 0, "Minimum credits for the semester")
	cmd.Flags().Float64Var(&maxCredits, "max", 0, "Maximum credits for the semester")
	cmd.Flags().StringSliceVar(&selected, "select", nil, "Course codes to pin into the pool")
	cmd.Flags().StringSliceVar(&deselected, "deselect", nil, "Course codes to exclude from the pool")
	cmd.Flags().StringSliceVar(&interests, "interests", nil, "Interest areas overriding the profile")
	cmd.Flags().StringVar(&workload, "workload", "", "Workload preference: low, medium or high")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip writing this run to history")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Capture preferences through a form")
	cmd.Flags().BoolVar(&browse, "browse", false, "Browse the strategies in a TUI")

	return cmd
}
