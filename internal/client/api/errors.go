package api

import "errors"

var (
	// ErrUnauthorized means the server rejected the presented token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrServerUnavailable means the server could not be reached at all.
	ErrServerUnavailable = errors.New("server unavailable")
)
