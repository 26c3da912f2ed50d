package controller

import (
	"context"
	"sync"

	"github.com/maparra/rutero/internal/visit"
)

// RegistrationState is the published state of the outcome form.
type RegistrationState struct {
	Loading bool
	Result  *visit.Detail // the fresh authoritative detail after success
	Err     string
}

// Registration drives the "register outcome" form: it holds the evidence
// selection for the next submission and submits COMPLETADA registrations.
type Registration struct {
	api     API
	visitID string

	OnChange func(RegistrationState)

	mu       sync.Mutex
	evidence string
	state    RegistrationState
}

// NewRegistration creates a registration controller bound to one visit.
func NewRegistration(api API, visitID string) *Registration {
	return &Registration{api: api, visitID: visitID}
}

// State returns a snapshot of the current published state.
func (c *Registration) State() RegistrationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetEvidence stores a local file path for the next submission only.
// An empty path clears the selection.
func (c *Registration) SetEvidence(path string) {
	c.mu.Lock()
	c.evidence = path
	c.mu.Unlock()
}

// Submit registers a COMPLETADA outcome. Local validation failures are
// published without any network call; on success the selected evidence is
// consumed and the server response published as the result.
func (c *Registration) Submit(ctx context.Context, detail, contact, start, end string) {
	c.mu.Lock()
	evidencePath := c.evidence
	c.mu.Unlock()

	reg, err := visit.NewCompletion(detail, contact, start, end, evidencePath)
	if err != nil {
		c.publish(RegistrationState{Err: errorMessage(err)})
		return
	}

	c.publish(RegistrationState{Loading: true})

	d, err := c.api.Register(ctx, c.visitID, reg)
	if err != nil {
		c.publish(RegistrationState{Err: errorMessage(err)})
		return
	}

	c.mu.Lock()
	c.evidence = ""
	c.mu.Unlock()
	c.publish(RegistrationState{Result: d})
}

func (c *Registration) publish(s RegistrationState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	if c.OnChange != nil {
		c.OnChange(s)
	}
}
