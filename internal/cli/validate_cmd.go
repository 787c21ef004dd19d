package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ffcs-tools/ffcs/internal/cli/formatter"
	"github.com/ffcs-tools/ffcs/internal/contract"
)

func newValidateCmd(app *App) *cobra.Command {
	var studentID string
	var courses, slots []string
	var minCredits, maxCredits float64
	var noNarrative bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a hand-assembled course selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.NewValidateRequest(studentID, courses)
			assignments, err := parseSlotAssignments(slots)
			if err != nil {
				return err
			}
			req.SlotAssignments = assignments
			applyBoundsFlags(cmd.Flags(), &req.Bounds, minCredits, maxCredits)
			if noNarrative {
				req.Narrative = false
			}

			stop := func() {}
			if req.Narrative && app.interactive() {
				stop = formatter.StartSpinner("Checking the selection")
			}
			resp, err := app.Validate.Validate(ctx, req)
			stop()
			if err != nil {
				return friendly(err)
			}

			fmt.Print(formatter.FormatValidate(resp, req.Bounds))
			if len(assignments) > 0 {
				fmt.Print(formatter.FormatSlotGrid(assignments))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student id the selection belongs to")
	cmd.Flags().StringSliceVar(&courses, "courses", nil, "Course codes to validate")
	cmd.Flags().StringArrayVar(&slots, "slot", nil, "Slot assignment as CODE=LABEL (repeatable)")
	cmd.Flags().Float64Var(&minCredits, "min", 0, "Minimum credits for the semester")
	cmd.Flags().Float64Var(&maxCredits, "max", 0, "Maximum credits for the semester")
	cmd.Flags().BoolVar(&noNarrative, "no-narrative", false, "Skip the advisor verdict")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("courses")

	return cmd
}

// parseSlotAssignments turns repeated CODE=LABEL flags into a map.
func parseSlotAssignments(items []string) (map[string]string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	assignments := make(map[string]string, len(items))
	for _, item := range items {
		code, label, ok := strings.Cut(item, "=")
		code = strings.TrimSpace(code)
		label = strings.TrimSpace(label)
		if !ok || code == "" || label == "" {
			return nil, fmt.Errorf("--slot expects CODE=LABEL, got %q", item)
		}
		assignments[code] = label
	}
	return assignments, nil
}
