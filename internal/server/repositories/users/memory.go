package users

import (
	"context"
	"sync"
	"time"

	"github.com/jaehyuk-choi/portfolio-auth/internal/common"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/models"
)

// MemoryRepository is an in-memory Repository used by tests and local
// experiments. It mirrors the atomic create-or-conflict semantics of the
// Postgres implementation.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; ok {
		return common.ErrDuplicateLogin
	}
	r.users[user.UserID] = *user
	return nil
}

func (r *MemoryRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *MemoryRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return common.ErrNotFound
	}
	u.LastLoginAt = &at
	r.users[userID] = u
	return nil
}

// Count reports how many records exist for userID (0 or 1); used by tests to
// assert that failed registrations leave no partial record.
func (r *MemoryRepository) Count(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.users[userID]; ok {
		return 1
	}
	return 0
}
