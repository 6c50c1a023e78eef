package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"threadboard/internal/domain"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// LikeRepo implements domain.LikeRepository.
type LikeRepo struct {
	db *DB
}

// NewLikeRepo wraps a DB as a LikeRepository.
func (d *DB) NewLikeRepo() *LikeRepo {
	return &LikeRepo{db: d}
}

var _ domain.LikeRepository = (*LikeRepo)(nil)

// ListAll returns every like row; the feed service counts them per post.
func (r *LikeRepo) ListAll(ctx context.Context) ([]domain.Like, error) {
	return r.list(ctx, "SELECT post_id, user_id FROM likes")
}

// ListByUser returns the likes placed by one user.
func (r *LikeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Like, error) {
	return r.list(ctx, "SELECT post_id, user_id FROM likes WHERE user_id = $1", userID)
}

// CountByPost returns the number of likes on one post.
func (r *LikeRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM likes WHERE post_id = $1", postID).Scan(&count)
	return count, err
}

// Get retrieves the like row for (postID, userID), nil when absent.
func (r *LikeRepo) Get(ctx context.Context, postID, userID int64) (*domain.Like, error) {
	var l domain.Like
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT post_id, user_id FROM likes WHERE post_id = $1 AND user_id = $2",
		postID, userID,
	).Scan(&l.PostID, &l.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a like row. A unique-constraint violation is surfaced
// as domain.ErrLikeExists so the toggle can treat the race as benign.
func (r *LikeRepo) Create(ctx context.Context, postID, userID int64) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO likes (post_id, user_id, created_at) VALUES ($1, $2, $3)",
		postID, userID, time.Now())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return domain.ErrLikeExists
		}
		return err
	}
	return nil
}

// Delete removes the like row for (postID, userID).
func (r *LikeRepo) Delete(ctx context.Context, postID, userID int64) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM likes WHERE post_id = $1 AND user_id = $2", postID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *LikeRepo) list(ctx context.Context, query string, args ...any) ([]domain.Like, error) {
	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Like
	for rows.Next() {
		var l domain.Like
		if err := rows.Scan(&l.PostID, &l.UserID); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
