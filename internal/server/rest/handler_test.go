package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaehyuk-choi/portfolio-auth/internal/logging"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/auth"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/config"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/repositories/users"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/services"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg := &config.Config{SecretKey: testSecret, TokenValidity: 24 * time.Hour}
	us := services.NewUserService(users.NewMemoryRepository(), cfg, logger)

	return NewServer(":0", logger, us, testSecret).Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func registerBody() map[string]string {
	return map[string]string{
		"userId":   "amy",
		"password": "secret1",
		"name":     "Amy",
		"phone":    "010-1234-5678",
	}
}

func TestAuthScenario(t *testing.T) {
	r := newTestRouter(t)

	// Fresh registration succeeds.
	w, body := doJSON(t, r, http.MethodPost, "/auth/register", registerBody(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	token := body["token"].(string)
	require.NotEmpty(t, token)
	user := body["user"].(map[string]any)
	assert.Equal(t, "amy", user["id"])
	assert.Equal(t, "Amy", user["name"])
	assert.Equal(t, "010-1234-5678", user["phone"])

	// Same login again is a duplicate.
	w, body = doJSON(t, r, http.MethodPost, "/auth/register", registerBody(), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "이미 존재하는 아이디입니다.", body["message"])

	// Wrong password fails with the generic credentials message.
	w, body = doJSON(t, r, http.MethodPost, "/auth/login",
		map[string]string{"userId": "amy", "password": "wrong"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "아이디 또는 비밀번호가 잘못되었습니다.", body["message"])

	// Correct login returns a fresh token.
	w, body = doJSON(t, r, http.MethodPost, "/auth/login",
		map[string]string{"userId": "amy", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	loginToken := body["token"].(string)
	require.NotEmpty(t, loginToken)

	// Profile with that token shows the login timestamp and no password field.
	w, body = doJSON(t, r, http.MethodGet, "/auth/profile", nil,
		map[string]string{"Authorization": "Bearer " + loginToken})
	require.Equal(t, http.StatusOK, w.Code)
	profile := body["user"].(map[string]any)
	assert.Equal(t, "amy", profile["userId"])
	assert.Equal(t, "Amy", profile["name"])
	assert.NotNil(t, profile["lastLoginAt"])
	assert.NotContains(t, profile, "password")
	assert.NotContains(t, profile, "passwordHash")
	assert.NotContains(t, strings.ToLower(w.Body.String()), "password")
}

func TestRegister_ValidationResponses(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name        string
		mutate      func(m map[string]string)
		wantMessage string
	}{
		{"missing field", func(m map[string]string) { delete(m, "name") },
			"모든 필드를 입력해주세요."},
		{"short password", func(m map[string]string) { m["password"] = "12345" },
			"비밀번호는 6자 이상이어야 합니다."},
		{"phone with letter", func(m map[string]string) { m["phone"] = "010-1234-5678x" },
			"연락처는 숫자와 하이픈만 입력 가능합니다."},
		{"short phone", func(m map[string]string) { m["phone"] = "12345" },
			"올바른 연락처 형식을 입력해주세요. (예: 010-1234-5678)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := registerBody()
			tc.mutate(body)
			w, resp := doJSON(t, r, http.MethodPost, "/auth/register", body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, tc.wantMessage, resp["message"])
		})
	}
}

func TestRegister_UnparsableBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/auth/login",
		map[string]string{"userId": "amy"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "아이디와 비밀번호를 입력해주세요.", body["message"])
}

func TestLogin_UnknownUserMatchesWrongPassword(t *testing.T) {
	r := newTestRouter(t)

	_, _ = doJSON(t, r, http.MethodPost, "/auth/register", registerBody(), nil)

	wUnknown, bodyUnknown := doJSON(t, r, http.MethodPost, "/auth/login",
		map[string]string{"userId": "ghost", "password": "secret1"}, nil)
	wWrong, bodyWrong := doJSON(t, r, http.MethodPost, "/auth/login",
		map[string]string{"userId": "amy", "password": "wrong"}, nil)

	assert.Equal(t, wUnknown.Code, wWrong.Code)
	assert.Equal(t, bodyUnknown["message"], bodyWrong["message"])
}

func TestProfile_Unauthenticated(t *testing.T) {
	r := newTestRouter(t)

	// No header at all.
	w, body := doJSON(t, r, http.MethodGet, "/auth/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "인증이 필요합니다.", body["message"])

	// Garbage token.
	w, body = doJSON(t, r, http.MethodGet, "/auth/profile", nil,
		map[string]string{"Authorization": "Bearer not.a.jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "유효하지 않은 토큰입니다.", body["message"])

	// Expired token.
	expired, err := auth.GenerateToken("amy", "Amy", []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	w, body = doJSON(t, r, http.MethodGet, "/auth/profile", nil,
		map[string]string{"Authorization": "Bearer " + expired})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "유효하지 않은 토큰입니다.", body["message"])
}

func TestProfile_UserDeletedAfterIssuance(t *testing.T) {
	r := newTestRouter(t)

	// Valid token for a user that was never stored.
	token, err := auth.GenerateToken("ghost", "Ghost", []byte(testSecret), time.Hour)
	require.NoError(t, err)

	w, body := doJSON(t, r, http.MethodGet, "/auth/profile", nil,
		map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "사용자를 찾을 수 없습니다.", body["message"])
}

func TestNoRoute(t *testing.T) {
	r := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "페이지를 찾을 수 없습니다.", body["error"])
}
