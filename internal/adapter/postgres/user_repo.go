package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"threadboard/internal/domain"
)

// UserRepo implements domain.UserRepository.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func (d *DB) NewUserRepo() *UserRepo {
	return &UserRepo{db: d}
}

var _ domain.UserRepository = (*UserRepo)(nil)

// GetByID retrieves a user by id. Returns nil when no row matches.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanUser(r.db.sql.QueryRowContext(ctx,
		"SELECT id, nickname, password, created_at FROM users WHERE id = $1", id))
}

// GetByNickname retrieves a user by nickname.
func (r *UserRepo) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	return r.scanUser(r.db.sql.QueryRowContext(ctx,
		"SELECT id, nickname, password, created_at FROM users WHERE nickname = $1", nickname))
}

// GetByCredentials retrieves a user matching both nickname and password
// in a single compound filter.
func (r *UserRepo) GetByCredentials(ctx context.Context, nickname, password string) (*domain.User, error) {
	return r.scanUser(r.db.sql.QueryRowContext(ctx,
		"SELECT id, nickname, password, created_at FROM users WHERE nickname = $1 AND password = $2",
		nickname, password))
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, nickname, password string) (*domain.User, error) {
	var u domain.User
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO users (nickname, password, created_at) VALUES ($1, $2, $3) RETURNING id, nickname, password, created_at",
		nickname, password, time.Now(),
	).Scan(&u.ID, &u.Nickname, &u.Password, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Nickname, &u.Password, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
