// Package common contains shared constants and sentinel errors used across
// prepshare client components. Callers should use errors.Is to match these.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session / credential errors.
	ErrSignInRequired = errors.New("sign-in required")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
)
