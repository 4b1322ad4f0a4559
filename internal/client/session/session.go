// Package session tracks the authenticated principal for the prepshare
// client. The identity provider owns sign-in/out; the tracker only observes
// transitions and re-publishes them to dependent components.
package session

import "context"

// Principal is the authenticated identity making requests.
//
// Token must be called fresh for every outgoing request: bearer credentials
// are short-lived and callers must never cache one across calls.
type Principal interface {
	// UID returns the principal's opaque unique id.
	UID() string

	// Token returns a currently-valid bearer credential, or an error
	// (common.ErrTokenExpired) when the credential can no longer be issued.
	Token(ctx context.Context) (string, error)
}

// Provider is the external identity collaborator. Current returns the
// signed-in principal or nil; Subscribe registers a callback invoked on
// every sign-in/out transition and returns the matching unsubscribe.
type Provider interface {
	Current() Principal
	Subscribe(fn func(Principal)) (unsubscribe func())
}
