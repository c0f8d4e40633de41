package userrepo

import (
	"context"
	"database/sql"
	"docvault/internal/entities"
	"docvault/internal/models"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "userRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) AddUser(ctx context.Context, user models.User) error {
	op := pkg + "AddUser"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users(id, email, pass_hash, full_name, firm_name, role, is_active, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.PassHash, user.FullName, user.FirmName, user.Role, user.IsActive, user.CreatedAt)

	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if pgErr.Code == "23505" {
				return &models.UniqueConstraintError{
					Constraint: pgErr.Constraint,
					Err:        models.ErrUNIQUEConstraintFailed,
				}
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) UserByID(ctx context.Context, id string) (*models.User, error) {
	op := pkg + "UserByID"

	rawUser := entities.User{}

	err := r.db.GetContext(ctx, &rawUser,
		`SELECT
			u.id AS id,
			u.email AS email,
			u.pass_hash AS pass_hash,
			u.full_name AS full_name,
			u.firm_name AS firm_name,
			u.role AS role,
			u.is_active AS is_active,
			u.created_at AS created_at
		FROM users u
		WHERE u.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return userFromEntity(&rawUser), nil
}

func (r *repository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	op := pkg + "UserByEmail"

	rawUser := entities.User{}

	err := r.db.GetContext(ctx, &rawUser,
		`SELECT
			u.id AS id,
			u.email AS email,
			u.pass_hash AS pass_hash,
			u.full_name AS full_name,
			u.firm_name AS firm_name,
			u.role AS role,
			u.is_active AS is_active,
			u.created_at AS created_at
		FROM users u
		WHERE u.email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return userFromEntity(&rawUser), nil
}

func userFromEntity(raw *entities.User) *models.User {
	return &models.User{
		ID:        raw.ID,
		Email:     raw.Email,
		PassHash:  raw.PassHash,
		FullName:  raw.FullName,
		FirmName:  raw.FirmName,
		Role:      raw.Role,
		IsActive:  raw.IsActive,
		CreatedAt: raw.CreatedAt,
	}
}
