package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"threadboard/internal/domain"
)

// PostRepo implements domain.PostRepository.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func (d *DB) NewPostRepo() *PostRepo {
	return &PostRepo{db: d}
}

var _ domain.PostRepository = (*PostRepo)(nil)

// GetByID retrieves a post by id alone, the existence probe of the
// ownership protocol. Returns nil when no row matches.
func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, user_id, title, content, created_at, updated_at FROM posts WHERE id = $1",
		id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListSummaries returns every post joined to its author. The join is on
// the owner id, one row per post; like counts are attached upstream.
func (r *PostRepo) ListSummaries(ctx context.Context) ([]domain.PostSummary, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT p.id, p.user_id, u.nickname, p.title, p.created_at, p.updated_at
		FROM posts AS p
		JOIN users AS u ON p.user_id = u.id
		ORDER BY p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PostSummary
	for rows.Next() {
		var s domain.PostSummary
		if err := rows.Scan(&s.PostID, &s.UserID, &s.Nickname, &s.Title, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetDetail returns one post joined to its author, including the body.
func (r *PostRepo) GetDetail(ctx context.Context, id int64) (*domain.PostDetail, error) {
	var d domain.PostDetail
	err := r.db.sql.QueryRowContext(ctx, `
		SELECT p.id, p.user_id, u.nickname, p.title, p.content, p.created_at, p.updated_at
		FROM posts AS p
		JOIN users AS u ON p.user_id = u.id
		WHERE p.id = $1`,
		id,
	).Scan(&d.PostID, &d.UserID, &d.Nickname, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new post owned by userID.
func (r *PostRepo) Create(ctx context.Context, userID int64, title, content string) (*domain.Post, error) {
	now := time.Now()
	var p domain.Post
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO posts (user_id, title, content, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id, user_id, title, content, created_at, updated_at",
		userID, title, content, now,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update edits a post scoped by both id and owner in one statement and
// reports the affected-row count.
func (r *PostRepo) Update(ctx context.Context, id, userID int64, title, content string) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"UPDATE posts SET title = $3, content = $4, updated_at = $5 WHERE id = $1 AND user_id = $2",
		id, userID, title, content, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a post scoped by both id and owner.
func (r *PostRepo) Delete(ctx context.Context, id, userID int64) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM posts WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
