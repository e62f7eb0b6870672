package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"autores-backend/internal/domains/account/model"
)

const pgUniqueViolation = "23505"

type accountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) RepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	var out model.User
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, created_at`,
		uuid.New(), user.Email, user.PasswordHash,
	).Scan(&out.ID, &out.Email, &out.PasswordHash, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, model.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &out, nil
}

// FindByEmail reports a missing user as invalid credentials so callers do
// not have to distinguish unknown email from wrong password.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var out model.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1`, email,
	).Scan(&out.ID, &out.Email, &out.PasswordHash, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	return &out, nil
}
