package visit

import "fmt"

// CueText builds the display label for the stop at index i.
//
// All distance/time numbers originate server-side; this only picks which
// sentence applies:
//   - non-pending stops show the backend-supplied cue verbatim (usually "N/A"),
//   - the first stop is measured from the seller's current position,
//   - every later stop is measured from the immediately preceding list
//     element, whatever state that element is in. The backend keeps pending
//     stops contiguous at the front, so in practice the predecessor is the
//     previous pending stop; see CheckOrdering.
func CueText(stops []RouteStop, i int) string {
	stop := stops[i]
	if stop.State != StatePending {
		return stop.Cue
	}
	if i == 0 {
		return fmt.Sprintf("at %s from your current location", stop.Cue)
	}
	return fmt.Sprintf("at %s from %s", stop.Cue, stops[i-1].Name)
}

// CueTexts returns the display label for every stop in list order.
func CueTexts(stops []RouteStop) []string {
	labels := make([]string, len(stops))
	for i := range stops {
		labels[i] = CueText(stops, i)
	}
	return labels
}

// CheckOrdering verifies the backend's ordering contract: all pending stops
// precede all terminal ones. CueText relies on this to label each pending
// stop relative to its list predecessor. A violation does not stop label
// production; callers surface it as a diagnostic instead.
func CheckOrdering(stops []RouteStop) error {
	seenTerminal := false
	for i, s := range stops {
		if s.State.IsTerminal() {
			seenTerminal = true
			continue
		}
		if seenTerminal {
			return fmt.Errorf("pending stop %s at position %d follows a terminal stop", s.ID, i)
		}
	}
	return nil
}
