// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and profile retrieval and
// issues the session JWTs.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jaehyuk-choi/portfolio-auth/internal/common"
	"github.com/jaehyuk-choi/portfolio-auth/internal/logging"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/auth"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/config"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/models"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/repositories/users"
)

const (
	minPasswordLength = 6
	minPhoneLength    = 10
	maxPhoneLength    = 13
)

// phonePattern restricts contact numbers to digits and hyphens.
var phonePattern = regexp.MustCompile(`^[0-9-]+$`)

// PublicUser is the user summary returned alongside a token. It never carries
// the password verifier.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ProfileView is the authenticated profile representation.
type ProfileView struct {
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

// AuthResult bundles a freshly issued token with the public user summary.
type AuthResult struct {
	Token string
	User  PublicUser
}

// RegisterRequest carries validated-at-the-boundary registration input.
type RegisterRequest struct {
	UserID   string
	Password string
	Name     string
	Phone    string
}

// UserService provides the authentication flows:
//   - Register: validate input, create the credential record, issue a token
//   - Login: verify credentials, refresh the login timestamp, issue a token
//   - Profile: return the authenticated user's profile
type UserService struct {
	repo          users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	logger        logging.Logger
}

// NewUserService constructs a UserService using the users repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		logger:        l.With("module", "user_service"),
	}
}

// Register creates a new credential record and returns a session token with
// the public user summary.
//
// Validation short-circuits on the first failure, in this order: required
// fields, password length, phone character class, phone length. Uniqueness of
// the login is enforced only by the store's constraint; a conflict surfaces
// as common.ErrDuplicateLogin, any other store failure as common.ErrInternal.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if req.UserID == "" || req.Password == "" || req.Name == "" || req.Phone == "" {
		return nil, common.ErrMissingFields
	}
	if len(req.Password) < minPasswordLength {
		return nil, common.ErrPasswordTooShort
	}
	if !phonePattern.MatchString(req.Phone) {
		return nil, common.ErrPhoneNotAllowed
	}
	if len(req.Phone) < minPhoneLength || len(req.Phone) > maxPhoneLength {
		return nil, common.ErrPhoneLength
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	user := &models.User{
		UserID:       req.UserID,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateLogin) {
			return nil, common.ErrDuplicateLogin
		}
		s.logger.Error(ctx, "user insert failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	return s.issueToken(user)
}

// Login verifies the given credentials and returns a fresh session token.
//
// An unknown login and a wrong password both yield common.ErrInvalidCredentials
// so that callers cannot probe which identifiers are registered. The
// last-login timestamp update is best effort: its failure is logged and never
// blocks a successful login.
func (s *UserService) Login(ctx context.Context, userID, password string) (*AuthResult, error) {
	if userID == "" || password == "" {
		return nil, common.ErrMissingFields
	}

	user, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, userID, time.Now()); err != nil {
		s.logger.Warn(ctx, "last login update failed", "user_id", userID, "error", err.Error())
	}

	return result, nil
}

// Profile returns the profile of the user identified by a verified token.
// A record that vanished after token issuance is reported as common.ErrNotFound.
func (s *UserService) Profile(ctx context.Context, userID string) (*ProfileView, error) {
	user, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	return &ProfileView{
		UserID:      user.UserID,
		Name:        user.Name,
		Phone:       user.Phone,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}, nil
}

func (s *UserService) issueToken(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.UserID, user.Name, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("token generation: %w", err)
	}
	return &AuthResult{
		Token: token,
		User:  PublicUser{ID: user.UserID, Name: user.Name, Phone: user.Phone},
	}, nil
}
