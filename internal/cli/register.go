package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maparra/rutero/internal/controller"
)

func newRegisterCmd() *cobra.Command {
	var (
		detail   string
		contact  string
		start    string
		end      string
		evidence string
	)

	cmd := &cobra.Command{
		Use:   "register <id>",
		Short: "Register a completed visit",
		Long: `Register the outcome of a completed visit, optionally attaching a
photo or video as evidence.

Times are HH:MM in the seller's local day.

Examples:
  rutero register 123 --detail "Order placed" --contact "Ana" --start 09:30 --end 10:05
  rutero register 123 --detail "Stocked shelves" --contact "Luis" --start 14:00 --end 14:40 --evidence photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd.Context(), args[0], detail, contact, start, end, evidence)
		},
	}

	cmd.Flags().StringVar(&detail, "detail", "", "what happened during the visit (required)")
	cmd.Flags().StringVar(&contact, "contact", "", "who received the visit")
	cmd.Flags().StringVar(&start, "start", "", "visit start time, HH:MM (required)")
	cmd.Flags().StringVar(&end, "end", "", "visit end time, HH:MM (required)")
	cmd.Flags().StringVarP(&evidence, "evidence", "e", "", "photo or video file to attach")
	_ = cmd.MarkFlagRequired("detail")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runRegister(ctx context.Context, id, detail, contact, start, end, evidence string) error {
	if evidence != "" {
		if _, err := os.Stat(evidence); err != nil {
			return fmt.Errorf("evidence file: %w", err)
		}
	}

	ctrl := controller.NewRegistration(newAPIClient(), id)
	ctrl.SetEvidence(evidence)
	ctrl.Submit(ctx, detail, contact, start, end)

	state := ctrl.State()
	if state.Err != "" {
		return fmt.Errorf("%s", state.Err)
	}

	if isJSON() {
		return printJSON(state.Result)
	}

	fmt.Printf("Visit %s registered as %s (%s–%s)\n", state.Result.ID, state.Result.State.Label(), start, end)
	if state.Result.EvidenceURL != "" {
		fmt.Printf("  Evidence: %s\n", state.Result.EvidenceURL)
	}
	return nil
}
