package authservice

import (
	"context"
	"docvault/internal/models"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) AddUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockSessionStorer struct {
	mock.Mock
}

func (m *mockSessionStorer) SaveSession(ctx context.Context, token string, userJSON string) error {
	args := m.Called(ctx, token, userJSON)
	return args.Error(0)
}

func (m *mockSessionStorer) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockSessionStorer) GetUserByToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo, new(mockSessionStorer))

	repo.On("AddUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "lawyer@firm.example" && u.IsActive && len(u.PassHash) > 0
	})).Return(nil)

	email, err := svc.Register(context.Background(), "lawyer@firm.example", "strongpassword", "Jane Doe", "Doe & Partners")
	assert.NoError(t, err)
	assert.Equal(t, "lawyer@firm.example", email)

	repo.AssertExpectations(t)
}

func TestRegister_InvalidParams(t *testing.T) {
	t.Parallel()

	svc := New(slog.Default(), new(mockUserRepo), new(mockUserRepo), new(mockSessionStorer))

	_, err := svc.Register(context.Background(), "not-an-email", "strongpassword", "", "")
	assert.ErrorIs(t, err, models.ErrInvalidParams)

	_, err = svc.Register(context.Background(), "lawyer@firm.example", "short", "", "")
	assert.ErrorIs(t, err, models.ErrInvalidParams)
}

func TestRegister_UserExists(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo, new(mockSessionStorer))

	repo.On("AddUser", mock.Anything, mock.Anything).Return(&models.UniqueConstraintError{
		Constraint: "users_email_key",
		Err:        models.ErrUNIQUEConstraintFailed,
	})

	_, err := svc.Register(context.Background(), "dup@firm.example", "strongpassword", "", "")
	assert.ErrorIs(t, err, models.ErrUserExists)
}

func TestRegister_DatabaseUnavailable(t *testing.T) {
	t.Parallel()

	svc := New(slog.Default(), nil, nil, new(mockSessionStorer))

	_, err := svc.Register(context.Background(), "lawyer@firm.example", "strongpassword", "", "")
	assert.ErrorIs(t, err, models.ErrDatabaseUnavailable)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	sessions := new(mockSessionStorer)
	svc := New(slog.Default(), repo, repo, sessions)

	passHash, err := bcrypt.GenerateFromPassword([]byte("strongpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{ID: "user1", Email: "lawyer@firm.example", PassHash: passHash, IsActive: true}

	repo.On("UserByEmail", mock.Anything, "lawyer@firm.example").Return(user, nil)
	sessions.On("SaveSession", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	token, err := svc.Login(context.Background(), "lawyer@firm.example", "strongpassword")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	repo.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo, new(mockSessionStorer))

	passHash, err := bcrypt.GenerateFromPassword([]byte("strongpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.On("UserByEmail", mock.Anything, "lawyer@firm.example").Return(&models.User{PassHash: passHash, IsActive: true}, nil)

	_, err = svc.Login(context.Background(), "lawyer@firm.example", "wrongpassword")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo, new(mockSessionStorer))

	repo.On("UserByEmail", mock.Anything, "nobody@firm.example").Return(nil, models.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "nobody@firm.example", "strongpassword")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo, new(mockSessionStorer))

	repo.On("UserByEmail", mock.Anything, "old@firm.example").Return(&models.User{IsActive: false}, nil)

	_, err := svc.Login(context.Background(), "old@firm.example", "strongpassword")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUserByToken_Success(t *testing.T) {
	t.Parallel()

	sessions := new(mockSessionStorer)
	svc := New(slog.Default(), nil, nil, sessions)

	userJSON, err := json.Marshal(&models.User{ID: "user1", Email: "lawyer@firm.example"})
	require.NoError(t, err)

	sessions.On("GetUserByToken", mock.Anything, "token-1").Return(string(userJSON), nil)

	user, err := svc.UserByToken(context.Background(), "token-1")
	assert.NoError(t, err)
	assert.Equal(t, "user1", user.ID)
}

func TestUserByToken_SessionNotFound(t *testing.T) {
	t.Parallel()

	sessions := new(mockSessionStorer)
	svc := New(slog.Default(), nil, nil, sessions)

	sessions.On("GetUserByToken", mock.Anything, "bad-token").Return("", models.ErrSessionNotFound)

	user, err := svc.UserByToken(context.Background(), "bad-token")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	sessions := new(mockSessionStorer)
	svc := New(slog.Default(), nil, nil, sessions)

	sessions.On("DeleteSession", mock.Anything, "token-1").Return(nil).Once()
	assert.NoError(t, svc.Logout(context.Background(), "token-1"))

	sessions.On("DeleteSession", mock.Anything, "gone").Return(models.ErrSessionNotFound).Once()
	assert.ErrorIs(t, svc.Logout(context.Background(), "gone"), models.ErrSessionNotFound)

	sessions.On("DeleteSession", mock.Anything, "broken").Return(errors.New("redis down")).Once()
	assert.ErrorIs(t, svc.Logout(context.Background(), "broken"), models.ErrInternal)
}
