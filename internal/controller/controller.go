// Package controller implements the screen-facing state holders for the
// route list, visit detail, and outcome registration flows. Each
// controller runs one network operation at a time, converts every failure
// into a published error message, and replaces its state wholesale from
// the server response on success.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/maparra/rutero/internal/client"
	"github.com/maparra/rutero/internal/visit"
)

// ErrNoSeller indicates the identity provider could not resolve a seller
// id; seller-scoped operations publish an error without any network call.
var ErrNoSeller = errors.New("no seller session")

// API is the slice of the visit backend the controllers consume.
// *client.Client satisfies it; tests substitute fakes.
type API interface {
	Route(ctx context.Context, q client.RouteQuery) ([]visit.RouteStop, error)
	Visit(ctx context.Context, id string, lat, lon *float64) (*visit.Detail, error)
	Register(ctx context.Context, id string, reg visit.Registration) (*visit.Detail, error)
}

// errorMessage converts any operation failure into the user-facing
// message published on the controller state. Nothing propagates as an
// uncaught fault past the controller boundary.
func errorMessage(err error) string {
	var vErr *visit.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Msg
	}
	if errors.Is(err, ErrNoSeller) {
		return "no seller session, log in again"
	}
	var connErr *client.ConnectivityError
	if errors.As(err, &connErr) {
		return "cannot reach the server, check your connection"
	}
	var remoteErr *client.RemoteError
	if errors.As(err, &remoteErr) {
		return fmt.Sprintf("operation failed: %s (status %d)", remoteErr.Message, remoteErr.StatusCode)
	}
	return err.Error()
}
