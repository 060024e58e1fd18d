// Package common defines shared constants and sentinel errors used across
// client and server layers of the authentication service. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateLogin = errors.New("login already exists")

	// Validation errors, in the order the registration flow checks them.
	ErrMissingFields    = errors.New("missing required fields")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPhoneNotAllowed  = errors.New("phone contains invalid characters")
	ErrPhoneLength      = errors.New("invalid phone length")

	// Authentication errors. ErrInvalidCredentials deliberately covers both
	// an unknown login and a wrong password so that callers cannot tell
	// which identifiers are registered.
	ErrInvalidCredentials = errors.New("invalid login or password")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
