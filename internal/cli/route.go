package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newRouteCmd() *cobra.Command {
	var (
		date string
		lat  float64
		lon  float64
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Show the day's visit route",
		Long: `Show the ordered visit route for a day.

Pending stops are labeled with the travel cue to reach them: the first
from your current position, later ones from the stop before them.

Examples:
  rutero route
  rutero route --date 2025-01-01
  rutero route --lat 4.6534 --lon -74.0837`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var latPtr, lonPtr *float64
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
				latPtr, lonPtr = &lat, &lon
			}
			return runRoute(cmd.Context(), date, latPtr, lonPtr)
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "route date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "current latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "current longitude")

	return cmd
}

func runRoute(ctx context.Context, date string, lat, lon *float64) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	ctrl := newRouteController()
	ctrl.Load(ctx, date, lat, lon)

	state := ctrl.State()
	if state.Err != "" {
		return fmt.Errorf("%s", state.Err)
	}

	if isJSON() {
		return printJSON(state.Stops)
	}

	return printRouteTable(state.Stops, state.Labels)
}
