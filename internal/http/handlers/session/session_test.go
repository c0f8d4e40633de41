package session

import (
	"context"
	"docvault/internal/models"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionCreator struct {
	mock.Mock
}

func (m *mockSessionCreator) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type mockSessionDeleter struct {
	mock.Mock
}

func (m *mockSessionDeleter) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestAdd_Success(t *testing.T) {
	t.Parallel()

	reqBody := `{"email":"lawyer@firm.example","password":"strongpassword"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth", strings.NewReader(reqBody))
	ctx := req.Context()

	sc := new(mockSessionCreator)
	sc.On("Login", ctx, "lawyer@firm.example", "strongpassword").Return("session-token", nil)

	Add(ctx, slog.Default(), w, req, sc)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "session-token", parsed["response"]["token"])

	sc.AssertExpectations(t)
}

func TestAdd_Fail_InvalidCredentials(t *testing.T) {
	t.Parallel()

	reqBody := `{"email":"lawyer@firm.example","password":"wrong"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth", strings.NewReader(reqBody))
	ctx := req.Context()

	sc := new(mockSessionCreator)
	sc.On("Login", ctx, "lawyer@firm.example", "wrong").Return("", models.ErrInvalidCredentials)

	Add(ctx, slog.Default(), w, req, sc)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestAdd_Fail_DatabaseUnavailable(t *testing.T) {
	t.Parallel()

	reqBody := `{"email":"lawyer@firm.example","password":"strongpassword"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth", strings.NewReader(reqBody))
	ctx := req.Context()

	sc := new(mockSessionCreator)
	sc.On("Login", ctx, "lawyer@firm.example", "strongpassword").Return("", models.ErrDatabaseUnavailable)

	Add(ctx, slog.Default(), w, req, sc)

	assert.Equal(t, http.StatusServiceUnavailable, w.Result().StatusCode)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/session-token", nil)
	ctx := req.Context()

	sd := new(mockSessionDeleter)
	sd.On("Logout", ctx, "session-token").Return(nil)

	Delete(ctx, slog.Default(), w, req, "session-token", sd)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.True(t, parsed["response"]["session-token"])

	sd.AssertExpectations(t)
}

func TestDelete_UnknownSessionStillOK(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/gone", nil)
	ctx := req.Context()

	sd := new(mockSessionDeleter)
	sd.On("Logout", ctx, "gone").Return(models.ErrSessionNotFound)

	Delete(ctx, slog.Default(), w, req, "gone", sd)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
