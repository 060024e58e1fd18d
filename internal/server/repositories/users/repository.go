// Package users provides storage for credential records.
package users

import (
	"context"
	"time"

	"github.com/jaehyuk-choi/portfolio-auth/internal/server/models"
)

// Repository is the store contract required by the authentication flows.
//
// Create must be atomic with respect to the uniqueness of UserID: a colliding
// insert fails with common.ErrDuplicateLogin and leaves no partial record.
// The flows never check-then-insert; the store's constraint is the sole
// duplicate signal.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
