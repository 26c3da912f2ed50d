package controller

import (
	"context"
	"log/slog"
	"sync"

	"github.com/maparra/rutero/internal/client"
	"github.com/maparra/rutero/internal/session"
	"github.com/maparra/rutero/internal/visit"
)

// RouteListState is the published state of the daily route screen.
type RouteListState struct {
	Loading bool
	Stops   []visit.RouteStop
	Labels  []string // cue label per stop, same order as Stops
	Err     string
}

// RouteList drives the daily route list: it fetches the ordered stops for
// a seller and day and derives the per-stop cue labels.
type RouteList struct {
	api      API
	identity session.Identity

	// OnChange, when set, observes every state publication.
	OnChange func(RouteListState)

	mu        sync.Mutex
	state     RouteListState
	lastQuery client.RouteQuery
}

// NewRouteList creates a route list controller.
func NewRouteList(api API, identity session.Identity) *RouteList {
	return &RouteList{api: api, identity: identity}
}

// State returns a snapshot of the current published state.
func (c *RouteList) State() RouteListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load fetches the route for the given day. A missing seller id publishes
// an error without touching the network. Concurrent loads are not
// guarded; the last publication wins.
func (c *RouteList) Load(ctx context.Context, date string, lat, lon *float64) {
	sellerID := c.identity.SellerID()
	if sellerID == "" {
		c.publish(RouteListState{Err: errorMessage(ErrNoSeller)})
		return
	}

	q := client.RouteQuery{Date: date, SellerID: sellerID, Lat: lat, Lon: lon}
	c.mu.Lock()
	c.lastQuery = q
	c.mu.Unlock()

	c.publish(RouteListState{Loading: true})

	stops, err := c.api.Route(ctx, q)
	if err != nil {
		c.publish(RouteListState{Err: errorMessage(err)})
		return
	}

	// The backend is expected to keep pending stops first; labels are
	// produced either way, but a violation is worth surfacing.
	if err := visit.CheckOrdering(stops); err != nil {
		slog.Warn("route ordering contract violated", "date", date, "seller", sellerID, "error", err)
	}

	c.publish(RouteListState{Stops: stops, Labels: visit.CueTexts(stops)})
}

// Retry re-runs the last load from scratch.
func (c *RouteList) Retry(ctx context.Context) {
	c.mu.Lock()
	q := c.lastQuery
	c.mu.Unlock()
	c.Load(ctx, q.Date, q.Lat, q.Lon)
}

func (c *RouteList) publish(s RouteListState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	if c.OnChange != nil {
		c.OnChange(s)
	}
}
