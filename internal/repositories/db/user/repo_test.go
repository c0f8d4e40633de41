package userrepo

import (
	"context"
	"database/sql"
	"docvault/internal/models"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *repository) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := NewRepository(sqlxDB)
	return sqlxDB, mock, repo
}

func TestAddUser_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	user := models.User{
		ID:        "user1",
		Email:     "lawyer@firm.example",
		PassHash:  []byte("hash"),
		FullName:  "Jane Doe",
		FirmName:  "Doe & Partners",
		Role:      "associate",
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Email, user.PassHash, user.FullName, user.FirmName, user.Role, user.IsActive, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AddUser(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := repo.AddUser(context.Background(), models.User{ID: "user1", Email: "dup@firm.example"})

	var uce *models.UniqueConstraintError
	assert.ErrorAs(t, err, &uce)
	assert.Equal(t, "users_email_key", uce.Constraint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByEmail_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	createdAt := time.Now()

	mock.ExpectQuery("SELECT.+FROM users").
		WithArgs("lawyer@firm.example").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "pass_hash", "full_name", "firm_name", "role", "is_active", "created_at",
		}).AddRow("user1", "lawyer@firm.example", []byte("hash"), "Jane Doe", "Doe & Partners", "associate", true, createdAt))

	user, err := repo.UserByEmail(context.Background(), "lawyer@firm.example")
	assert.NoError(t, err)
	assert.Equal(t, "user1", user.ID)
	assert.Equal(t, "lawyer@firm.example", user.Email)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByEmail_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery("SELECT.+FROM users").
		WithArgs("nobody@firm.example").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.UserByEmail(context.Background(), "nobody@firm.example")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByID_QueryError(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery("SELECT.+FROM users").
		WithArgs("user1").
		WillReturnError(errors.New("db failure"))

	user, err := repo.UserByID(context.Background(), "user1")
	assert.Nil(t, user)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
