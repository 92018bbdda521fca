package postgres

import (
	"context"
	"errors"

	"github.com/ishehara/autosched-admin/internal/domain/user"
	"github.com/ishehara/autosched-admin/internal/internaltypes"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo stores the admin accounts that may sign in to the console. This is
// the only local persistence in the front-end; all scheduling data lives
// behind the backend API.
type UserRepo struct{ pool *pgxpool.Pool }

func NewUserRepo(pool *pgxpool.Pool) *UserRepo { return &UserRepo{pool: pool} }

func (r *UserRepo) Create(ctx context.Context, u user.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1,$2,$3,$4)`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt,
	)
	return err
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username=$1`, username)
	var u user.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, internaltypes.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
