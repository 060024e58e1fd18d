// Package api defines the client's view of the authentication server:
// a small interface plus the JSON/HTTP implementation.
package api

import (
	"context"
	"time"
)

// User is the public user summary returned by register and login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AuthResult is a successful register/login response.
type AuthResult struct {
	Token string
	User  User
}

// Profile is the authenticated profile representation.
type Profile struct {
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

// RegisterRequest carries new-user input.
type RegisterRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Client is the transport contract the session-side services depend on.
//
// Profile reports ErrUnauthorized when the server rejects the token; callers
// treat that as an implicit logout. Any transport-level failure is reported
// as ErrServerUnavailable (wrapped), distinct from the server's own errors.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, userID, password string) (*AuthResult, error)
	Profile(ctx context.Context, token string) (*Profile, error)
}
