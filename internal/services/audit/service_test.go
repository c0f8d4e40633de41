package auditservice

import (
	"context"
	"docvault/internal/models"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAuditRepo struct {
	mock.Mock
}

func (m *mockAuditRepo) Append(ctx context.Context, entry *models.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockAuditRepo) Recent(ctx context.Context, limit int) ([]*models.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditEntry), args.Error(1)
}

func TestRecord_SetsDefaults(t *testing.T) {
	t.Parallel()

	repo := new(mockAuditRepo)
	svc := New(slog.Default(), repo)

	repo.On("Append", mock.Anything, mock.MatchedBy(func(e *models.AuditEntry) bool {
		return e.Status == models.AuditStatusSuccess && !e.CreatedAt.IsZero()
	})).Return(nil)

	svc.Record(context.Background(), &models.AuditEntry{Action: models.AuditActionEncrypt})

	repo.AssertExpectations(t)
}

func TestRecord_NilRepoSkips(t *testing.T) {
	t.Parallel()

	svc := New(slog.Default(), nil)

	// must not panic
	svc.Record(context.Background(), &models.AuditEntry{Action: models.AuditActionEncrypt})
}

func TestRecord_AppendErrorSwallowed(t *testing.T) {
	t.Parallel()

	repo := new(mockAuditRepo)
	svc := New(slog.Default(), repo)

	repo.On("Append", mock.Anything, mock.Anything).Return(errors.New("db failure"))

	svc.Record(context.Background(), &models.AuditEntry{Action: models.AuditActionDownload})

	repo.AssertExpectations(t)
}

func TestRecent_PassesLimitThrough(t *testing.T) {
	t.Parallel()

	repo := new(mockAuditRepo)
	svc := New(slog.Default(), repo)

	repo.On("Recent", mock.Anything, 25).Return([]*models.AuditEntry{}, nil).Once()

	_, err := svc.Recent(context.Background(), 25)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestRecent_DatabaseUnavailable(t *testing.T) {
	t.Parallel()

	svc := New(slog.Default(), nil)

	entries, err := svc.Recent(context.Background(), 10)
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, models.ErrDatabaseUnavailable)
}

func TestRecent_RepoError(t *testing.T) {
	t.Parallel()

	repo := new(mockAuditRepo)
	svc := New(slog.Default(), repo)

	repo.On("Recent", mock.Anything, 10).Return(nil, errors.New("db failure"))

	entries, err := svc.Recent(context.Background(), 10)
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, models.ErrInternal)

	repo.AssertExpectations(t)
}
