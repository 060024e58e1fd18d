// Package services contains application services for the client. This file
// defines the authentication service: register/login against the server,
// session persistence, profile retrieval, and logout.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaehyuk-choi/portfolio-auth/internal/client/api"
	"github.com/jaehyuk-choi/portfolio-auth/internal/client/session"
)

// ErrNotLoggedIn is returned when an authenticated operation is attempted
// without a persisted session.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines the session lifecycle operations for the client.
//
// Contract:
//   - Register / Login: authenticate against the server and persist the
//     session pair on success.
//   - Profile: fetch the authenticated profile; a rejected token clears the
//     session (implicit logout) before the error is returned.
//   - Logout: clear the persisted session.
//   - Current: return the persisted session, or nil when logged out.
type AuthService interface {
	Register(ctx context.Context, userID, password, name, phone string) (*session.User, error)
	Login(ctx context.Context, userID, password string) (*session.User, error)
	Profile(ctx context.Context) (*api.Profile, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*session.Session, error)
}

type authService struct {
	client api.Client
	store  *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Register(ctx context.Context, userID, password, name, phone string) (*session.User, error) {
	result, err := a.client.Register(ctx, api.RegisterRequest{
		UserID:   userID,
		Password: password,
		Name:     name,
		Phone:    phone,
	})
	if err != nil {
		return nil, err
	}
	return a.persist(ctx, result)
}

func (a *authService) Login(ctx context.Context, userID, password string) (*session.User, error) {
	result, err := a.client.Login(ctx, userID, password)
	if err != nil {
		return nil, err
	}
	return a.persist(ctx, result)
}

// persist saves the issued token and user summary as one pair write.
func (a *authService) persist(ctx context.Context, result *api.AuthResult) (*session.User, error) {
	user := session.User{
		ID:    result.User.ID,
		Name:  result.User.Name,
		Phone: result.User.Phone,
	}
	if err := a.store.Save(ctx, result.Token, user); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &user, nil
}

// Profile attaches the persisted token and fetches the profile. When the
// server rejects the token (expired, tampered, or the backing user is gone),
// the session is cleared so the client returns to the logged-out state.
func (a *authService) Profile(ctx context.Context) (*api.Profile, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotLoggedIn
	}

	profile, err := a.client.Profile(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if clearErr := a.store.Clear(ctx); clearErr != nil {
				return nil, clearErr
			}
		}
		return nil, err
	}

	return profile, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) Current(ctx context.Context) (*session.Session, error) {
	return a.store.Load(ctx)
}
