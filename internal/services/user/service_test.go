package userservice

import (
	"context"
	"docvault/internal/models"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) AddUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) UserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAddUser_Success(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo)

	repo.On("AddUser", mock.Anything, mock.Anything).Return(nil)

	err := svc.AddUser(context.Background(), models.User{ID: "user1"})
	assert.NoError(t, err)
}

func TestAddUser_Duplicate(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo)

	repo.On("AddUser", mock.Anything, mock.Anything).Return(&models.UniqueConstraintError{
		Constraint: "users_email_key",
		Err:        models.ErrUNIQUEConstraintFailed,
	})

	err := svc.AddUser(context.Background(), models.User{ID: "user1"})
	assert.ErrorIs(t, err, models.ErrUserExists)
}

func TestUserByID(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo)

	repo.On("UserByID", mock.Anything, "user1").Return(&models.User{ID: "user1"}, nil).Once()

	user, err := svc.UserByID(context.Background(), "user1")
	assert.NoError(t, err)
	assert.Equal(t, "user1", user.ID)

	repo.On("UserByID", mock.Anything, "missing").Return(nil, models.ErrUserNotFound).Once()

	user, err = svc.UserByID(context.Background(), "missing")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserByEmail_RepoError(t *testing.T) {
	t.Parallel()

	repo := new(mockUserRepo)
	svc := New(slog.Default(), repo, repo)

	repo.On("UserByEmail", mock.Anything, "lawyer@firm.example").Return(nil, errors.New("db failure"))

	user, err := svc.UserByEmail(context.Background(), "lawyer@firm.example")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrInternal)
}
