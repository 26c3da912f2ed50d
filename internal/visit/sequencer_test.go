package visit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCueTextPendingRoute(t *testing.T) {
	stops := []RouteStop{
		{ID: "1", Name: "Tienda La Esquina", Cue: "14 mins", State: StatePending},
		{ID: "2", Name: "Supermercado Norte", Cue: "7 mins", State: StatePending},
		{ID: "3", Name: "Drogueria Central", Cue: "22 mins", State: StatePending},
	}

	assert.Equal(t, "at 14 mins from your current location", CueText(stops, 0))
	assert.Equal(t, "at 7 mins from Tienda La Esquina", CueText(stops, 1))
	assert.Equal(t, "at 22 mins from Supermercado Norte", CueText(stops, 2))
}

func TestCueTextTerminalStopsVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		state State
		cue   string
	}{
		{"completed with sentinel", StateCompleted, "N/A"},
		{"cancelled with sentinel", StateCancelled, "N/A"},
		{"completed with odd backend value", StateCompleted, "whatever the server sent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stops := []RouteStop{
				{ID: "1", Name: "Primera", Cue: "5 mins", State: StatePending},
				{ID: "2", Name: "Segunda", Cue: tt.cue, State: tt.state},
			}
			// Supplied value comes back untouched, never a sentence.
			assert.Equal(t, tt.cue, CueText(stops, 1))
		})
	}
}

func TestCueTextFirstStopTerminal(t *testing.T) {
	stops := []RouteStop{
		{ID: "1", Name: "Primera", Cue: "N/A", State: StateCompleted},
	}
	assert.Equal(t, "N/A", CueText(stops, 0))
}

// A pending stop after a cancelled one is still labeled relative to the
// cancelled stop's name. The predecessor reference goes by list position,
// not state; the backend keeps pending stops contiguous at the front, and
// CheckOrdering surfaces the cases where it doesn't.
func TestCueTextPredecessorStateIgnored(t *testing.T) {
	stops := []RouteStop{
		{ID: "1", Name: "Cancelada SA", Cue: "N/A", State: StateCancelled},
		{ID: "2", Name: "Pendiente Ltda", Cue: "9 mins", State: StatePending},
	}

	assert.Equal(t, "at 9 mins from Cancelada SA", CueText(stops, 1))
}

func TestCueTexts(t *testing.T) {
	stops := []RouteStop{
		{ID: "1", Name: "Uno", Cue: "14 mins", State: StatePending},
		{ID: "2", Name: "Dos", Cue: "7 mins", State: StatePending},
		{ID: "3", Name: "Tres", Cue: "N/A", State: StateCompleted},
	}

	labels := CueTexts(stops)

	assert.Equal(t, []string{
		"at 14 mins from your current location",
		"at 7 mins from Uno",
		"N/A",
	}, labels)
}

func TestCueTextsEmpty(t *testing.T) {
	assert.Empty(t, CueTexts(nil))
}

func TestCheckOrdering(t *testing.T) {
	tests := []struct {
		name    string
		states  []State
		wantErr bool
	}{
		{"empty", nil, false},
		{"all pending", []State{StatePending, StatePending}, false},
		{"all terminal", []State{StateCompleted, StateCancelled}, false},
		{"pending then terminal", []State{StatePending, StatePending, StateCompleted, StateCancelled}, false},
		{"pending after completed", []State{StateCompleted, StatePending}, true},
		{"pending sandwiched", []State{StatePending, StateCancelled, StatePending}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stops := make([]RouteStop, len(tt.states))
			for i, s := range tt.states {
				stops[i] = RouteStop{ID: string(rune('a' + i)), State: s}
			}

			err := CheckOrdering(stops)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
