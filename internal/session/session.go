// Package session resolves the seller identity for the current user.
package session

// Identity supplies the seller id of the logged-in user. An empty string
// means no identity is resolvable and callers must not attempt seller-
// scoped network calls.
type Identity interface {
	SellerID() string
}

// Static is a fixed identity, used for injected config values and tests.
type Static struct {
	ID string
}

// SellerID returns the fixed seller id.
func (s Static) SellerID() string {
	return s.ID
}
