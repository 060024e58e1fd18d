// Package models defines the persistent records owned by the server.
package models

import "time"

// User is a stored credential record. UserID is the natural key and is
// immutable once created; PasswordHash is the bcrypt verifier and must never
// leave the service layer.
type User struct {
	UserID       string
	PasswordHash string
	Name         string
	Phone        string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
