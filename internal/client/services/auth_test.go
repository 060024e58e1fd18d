package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaehyuk-choi/portfolio-auth/internal/client/api"
	"github.com/jaehyuk-choi/portfolio-auth/internal/client/session"
)

type fakeClient struct {
	registerOut *api.AuthResult
	registerErr error

	loginOut *api.AuthResult
	loginErr error

	profileOut   *api.Profile
	profileErr   error
	profileToken string
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeClient) Login(ctx context.Context, userID, password string) (*api.AuthResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginOut, nil
}

func (f *fakeClient) Profile(ctx context.Context, token string) (*api.Profile, error) {
	f.profileToken = token
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profileOut, nil
}

func newTestService(t *testing.T, client api.Client) (AuthService, *session.Store) {
	t.Helper()

	store, err := session.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewAuthService(client, store), store
}

func authResult() *api.AuthResult {
	return &api.AuthResult{
		Token: "issued-token",
		User:  api.User{ID: "amy", Name: "Amy", Phone: "010-1234-5678"},
	}
}

func TestLogin_PersistsSessionPair(t *testing.T) {
	svc, store := newTestService(t, &fakeClient{loginOut: authResult()})
	ctx := context.Background()

	user, err := svc.Login(ctx, "amy", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "amy", user.ID)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "issued-token", sess.Token)
	assert.Equal(t, "Amy", sess.User.Name)
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	svc, store := newTestService(t, &fakeClient{loginErr: errors.New("아이디 또는 비밀번호가 잘못되었습니다.")})
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy", "wrong")
	require.Error(t, err)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess, "a failed login must not create session state")
}

func TestRegister_PersistsSessionPair(t *testing.T) {
	svc, store := newTestService(t, &fakeClient{registerOut: authResult()})
	ctx := context.Background()

	user, err := svc.Register(ctx, "amy", "secret1", "Amy", "010-1234-5678")
	require.NoError(t, err)
	assert.Equal(t, "amy", user.ID)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
}

func TestProfile_AttachesPersistedToken(t *testing.T) {
	now := time.Now()
	client := &fakeClient{
		loginOut: authResult(),
		profileOut: &api.Profile{
			UserID:      "amy",
			Name:        "Amy",
			Phone:       "010-1234-5678",
			CreatedAt:   now.Add(-24 * time.Hour),
			LastLoginAt: &now,
		},
	}
	svc, _ := newTestService(t, client)
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy", "secret1")
	require.NoError(t, err)

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "amy", profile.UserID)
	assert.Equal(t, "issued-token", client.profileToken)
}

func TestProfile_NotLoggedIn(t *testing.T) {
	svc, _ := newTestService(t, &fakeClient{})

	_, err := svc.Profile(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestProfile_UnauthorizedForcesImplicitLogout(t *testing.T) {
	client := &fakeClient{loginOut: authResult(), profileErr: api.ErrUnauthorized}
	svc, store := newTestService(t, client)
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy", "secret1")
	require.NoError(t, err)

	_, err = svc.Profile(ctx)
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess, "a rejected token must clear the session")
}

func TestProfile_ServerUnavailableKeepsSession(t *testing.T) {
	client := &fakeClient{loginOut: authResult(), profileErr: api.ErrServerUnavailable}
	svc, store := newTestService(t, client)
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy", "secret1")
	require.NoError(t, err)

	_, err = svc.Profile(ctx)
	assert.ErrorIs(t, err, api.ErrServerUnavailable)

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, sess, "connectivity failures must not log the user out")
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, store := newTestService(t, &fakeClient{loginOut: authResult()})
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}
