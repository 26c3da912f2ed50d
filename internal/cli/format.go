package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/maparra/rutero/internal/visit"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRouteTable prints the day's stops as a formatted table.
// labels holds the cue label per stop, same order as stops.
func printRouteTable(stops []visit.RouteStop, labels []string) error {
	if len(stops) == 0 {
		fmt.Println("No visits scheduled.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "#\tID\tCLIENT\tSTATE\tNEXT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "-\t--\t------\t-----\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	pending := 0
	for i, s := range stops {
		if s.State == visit.StatePending {
			pending++
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, s.ID, truncate(s.Name, 32), s.State.Label(), labels[i]); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d stops, %d pending\n", len(stops), pending)
	return nil
}

// printVisitDetail prints a single visit in text format.
func printVisitDetail(d *visit.Detail) {
	fmt.Printf("Visit %s — %s\n", d.ID, d.State.Label())
	fmt.Printf("  Client:    %s\n", d.Institution)
	if loc, ok := visit.Coordinates(d.Address); ok {
		fmt.Printf("  Address:   %s\n", loc.Text)
		fmt.Printf("  Map:       %.6f, %.6f\n", loc.Lat, loc.Lon)
	} else {
		fmt.Printf("  Address:   %s (no map available)\n", d.Address)
	}
	if d.Contact != "" {
		fmt.Printf("  Contact:   %s\n", d.Contact)
	}
	fmt.Printf("  Scheduled: %s\n", d.ScheduledAt.Format("2006-01-02 15:04"))
	if d.TravelEstimate != "" {
		fmt.Printf("  Travel:    %s\n", d.TravelEstimate)
	}
	if d.Notes != "" {
		fmt.Printf("  Notes:     %s\n", d.Notes)
	}
	if d.EvidenceURL != "" {
		fmt.Printf("  Evidence:  %s\n", d.EvidenceURL)
	}

	if len(d.PriorVisits) > 0 {
		fmt.Printf("\nPrior visits (%d):\n", len(d.PriorVisits))
		for _, pv := range d.PriorVisits {
			fmt.Printf("  [%s] %s\n", pv.Date, pv.Detail)
		}
	}

	if len(d.Products) > 0 {
		fmt.Printf("\nProducts to offer (%d):\n", len(d.Products))
		for _, p := range d.Products {
			line := "  " + p.Name
			if p.Brand != "" {
				line += " (" + p.Brand + ")"
			}
			if p.Quantity > 0 {
				line += fmt.Sprintf(" x%d", p.Quantity)
			}
			fmt.Println(line)
		}
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
