package repo

import (
	"context"
	"errors"
	"fmt"

	"blog_api/biz/model/domain"
	"blog_api/biz/model/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgInsertUser = `INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id::text, created_at, updated_at`

	pgSelectUser = `SELECT id::text, name, email, password_hash, created_at, updated_at FROM users`
)

type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	out := *u
	err := r.pool.QueryRow(ctx, pgInsertUser, u.Name, u.Email, u.PasswordHash).
		Scan(&out.UserID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
		return nil, err
	}
	return &out, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.queryOne(ctx, pgSelectUser+" WHERE email = $1", email)
}

func (r *PostgresUserRepository) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedID, userID)
	}
	return r.queryOne(ctx, pgSelectUser+" WHERE id = $1::uuid", userID)
}

func (r *PostgresUserRepository) queryOne(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, sql, arg).
		Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if errs.IsMalformedIDErr(err) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedID, err)
		}
		return nil, err
	}
	return &u, nil
}
