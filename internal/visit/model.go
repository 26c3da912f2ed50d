// Package visit provides the visit domain model and route sequencing logic.
package visit

import "time"

// State represents the lifecycle state of a visit.
// Values match what the backend sends on the wire.
type State string

const (
	StatePending   State = "PENDIENTE"
	StateCompleted State = "COMPLETADA"
	StateCancelled State = "CANCELADA"
)

// ValidStates is the set of recognized visit states.
var ValidStates = []State{StatePending, StateCompleted, StateCancelled}

// IsValid checks if a state is recognized.
func (s State) IsValid() bool {
	for _, v := range ValidStates {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal returns true for states that allow no further transition.
// PENDIENTE is the only non-terminal state; visits enter it server-side
// when a route is scheduled, never from this client.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// Label returns a human-readable label for the state.
func (s State) Label() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateCompleted:
		return "Completed"
	case StateCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// RouteStop is one scheduled visit as it appears in a seller's ordered
// daily route. Stops are immutable list projections: a changed stop is a
// new value from a fresh directory fetch, never an in-place mutation.
type RouteStop struct {
	ID       string `json:"id"`
	ClientID string `json:"cliente_id"`
	Name     string `json:"nombre"`
	Address  string `json:"direccion"`
	Cue      string `json:"tiempo"`
	State    State  `json:"estado"`
}

// PriorVisit is one entry of a visit's historical notes, ordered
// oldest to newest as returned by the backend.
type PriorVisit struct {
	Date   string `json:"fecha"`
	Detail string `json:"detalle"`
}

// Product is a product the backend recommends offering during the visit.
type Product struct {
	Name     string `json:"nombre"`
	Brand    string `json:"marca,omitempty"`
	Quantity int    `json:"cantidad,omitempty"`
}

// Detail is the full server-side view of a single visit. It is fetched
// read-only; the only client-initiated mutation is outcome registration,
// which returns a fresh Detail that replaces this one wholesale.
type Detail struct {
	ID             string       `json:"id"`
	ClientID       string       `json:"cliente_id"`
	SellerID       string       `json:"vendedor_id"`
	Institution    string       `json:"institucion"`
	Address        string       `json:"direccion"`
	Contact        string       `json:"cliente_contacto,omitempty"`
	ScheduledAt    time.Time    `json:"fecha"`
	State          State        `json:"estado"`
	Notes          string       `json:"observaciones,omitempty"`
	EvidenceURL    string       `json:"evidencia,omitempty"`
	TravelEstimate string       `json:"tiempo,omitempty"`
	PriorVisits    []PriorVisit `json:"visitas_anteriores,omitempty"`
	Products       []Product    `json:"productos_recomendados,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
