package controller

import (
	"context"
	"sync"

	"github.com/maparra/rutero/internal/visit"
)

// VisitDetailState is the published state of a single visit's screen.
type VisitDetailState struct {
	Loading   bool
	Visit     *visit.Detail
	Cancelled bool // set once a cancellation round-trip succeeds
	Err       string
}

// VisitDetail drives one visit's detail screen and its cancellation flow.
type VisitDetail struct {
	api     API
	visitID string
	lat     *float64
	lon     *float64

	OnChange func(VisitDetailState)

	mu    sync.Mutex
	state VisitDetailState
}

// NewVisitDetail creates a detail controller bound to one visit.
func NewVisitDetail(api API, visitID string, lat, lon *float64) *VisitDetail {
	return &VisitDetail{api: api, visitID: visitID, lat: lat, lon: lon}
}

// State returns a snapshot of the current published state.
func (c *VisitDetail) State() VisitDetailState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load fetches the visit detail.
func (c *VisitDetail) Load(ctx context.Context) {
	c.publish(VisitDetailState{Loading: true})

	d, err := c.api.Visit(ctx, c.visitID, c.lat, c.lon)
	if err != nil {
		c.publish(VisitDetailState{Err: errorMessage(err)})
		return
	}
	c.publish(VisitDetailState{Visit: d})
}

// Retry re-runs the detail fetch from scratch.
func (c *VisitDetail) Retry(ctx context.Context) {
	c.Load(ctx)
}

// Cancel registers a CANCELADA outcome with the given reason. The caller
// only offers this action on pending visits; the backend is authoritative
// and rejects anything else. On success the published visit is replaced
// by the server response in full.
func (c *VisitDetail) Cancel(ctx context.Context, reason string) {
	reg, err := visit.NewCancellation(reason)
	if err != nil {
		c.publish(VisitDetailState{Visit: c.State().Visit, Err: errorMessage(err)})
		return
	}

	c.publish(VisitDetailState{Visit: c.State().Visit, Loading: true})

	d, err := c.api.Register(ctx, c.visitID, reg)
	if err != nil {
		c.publish(VisitDetailState{Visit: c.State().Visit, Err: errorMessage(err)})
		return
	}
	c.publish(VisitDetailState{Visit: d, Cancelled: true})
}

func (c *VisitDetail) publish(s VisitDetailState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	if c.OnChange != nil {
		c.OnChange(s)
	}
}
