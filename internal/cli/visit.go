package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maparra/rutero/internal/controller"
)

func newVisitCmd() *cobra.Command {
	var (
		lat float64
		lon float64
	)

	cmd := &cobra.Command{
		Use:   "visit <id>",
		Short: "Show visit details",
		Long:  "Show full details for a scheduled visit, including notes from prior visits and the products to offer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var latPtr, lonPtr *float64
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
				latPtr, lonPtr = &lat, &lon
			}
			return runVisitShow(cmd.Context(), args[0], latPtr, lonPtr)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "current latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "current longitude")

	return cmd
}

func runVisitShow(ctx context.Context, id string, lat, lon *float64) error {
	ctrl := controller.NewVisitDetail(newAPIClient(), id, lat, lon)
	ctrl.Load(ctx)

	state := ctrl.State()
	if state.Err != "" {
		return fmt.Errorf("%s", state.Err)
	}

	if isJSON() {
		return printJSON(state.Visit)
	}

	printVisitDetail(state.Visit)
	return nil
}
