package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maparra/rutero/internal/controller"
)

func newCancelCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending visit",
		Long: `Cancel a pending visit with a reason.

Examples:
  rutero cancel 123 --reason "Client was not there"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCancel(cmd.Context(), args[0], reason)
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "why the visit could not happen (required)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func runCancel(ctx context.Context, id, reason string) error {
	ctrl := controller.NewVisitDetail(newAPIClient(), id, nil, nil)
	ctrl.Cancel(ctx, reason)

	state := ctrl.State()
	if state.Err != "" {
		return fmt.Errorf("%s", state.Err)
	}

	if isJSON() {
		return printJSON(state.Visit)
	}

	fmt.Printf("Visit %s cancelled: %s\n", state.Visit.ID, reason)
	fmt.Println("The route list will reflect the change on its next fetch.")
	return nil
}
