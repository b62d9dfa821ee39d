package gauth

import "errors"

var (
	// ErrNotAuthenticated means no token is available yet.
	ErrNotAuthenticated = errors.New("gauth: not authenticated")
	// ErrSessionExpired means the token could not be refreshed; the user must sign in again.
	ErrSessionExpired = errors.New("gauth: session expired")
)
