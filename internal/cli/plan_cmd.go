package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
	"github.com/ffcs-tools/ffcs/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Multi-semester planning",
	}
	cmd.AddCommand(newPathCmd(app, "path"))
	return cmd
}

// newProjectCmd is the top-level shorthand for "plan path".
func newProjectCmd(app *App) *cobra.Command {
	return newPathCmd(app, "project")
}

func newPathCmd(app *App, use string) *cobra.Command {
	var studentID string
	var horizon, pick int
	var minCredits, maxCredits float64

	cmd := &cobra.Command{
		Use:   use,
		Short: "Project the graduation path semester by semester",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.NewProjectionRequest(studentID)
			if cmd.Flags().Changed("horizon") {
				req.Horizon = horizon
			}
			if cmd.Flags().Changed("pick") {
				req.Pick = pick
			}
			applyBoundsFlags(cmd.Flags(), &req.Bounds, minCredits, maxCredits)

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("Projecting future semesters")
			}
			resp, err := app.Projection.ProjectPath(ctx, req)
			stop()
			if err != nil {
				return friendly(err)
			}

			fmt.Print(formatter.FormatProjection(resp, courseIndex(ctx, app)))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student id to project")
	cmd.Flags().IntVar(&horizon, "horizon", 3, "Future semesters to project (capped at 3)")
	cmd.Flags().IntVar(&pick, "pick", 1, "Strategy rank assumed passed at each step")
	cmd.Flags().Float64Var(&minCredits, "min", 0, "Minimum credits per semester")
	cmd.Flags().Float64Var(&maxCredits, "max", 0, "Maximum credits per semester")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}
