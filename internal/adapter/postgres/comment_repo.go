package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"threadboard/internal/domain"
)

// CommentRepo implements domain.CommentRepository.
type CommentRepo struct {
	db *DB
}

// NewCommentRepo wraps a DB as a CommentRepository.
func (d *DB) NewCommentRepo() *CommentRepo {
	return &CommentRepo{db: d}
}

var _ domain.CommentRepository = (*CommentRepo)(nil)

// GetByID retrieves a comment by id alone. Returns nil when no row
// matches.
func (r *CommentRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, post_id, user_id, comment, created_at, updated_at FROM comments WHERE id = $1",
		id,
	).Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByPost returns a post's comments joined to author nicknames.
func (r *CommentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.CommentView, error) {
	rows, err := r.db.sql.QueryContext(ctx, `
		SELECT c.id, c.user_id, u.nickname, c.comment, c.created_at, c.updated_at
		FROM comments AS c
		JOIN users AS u ON c.user_id = u.id
		WHERE c.post_id = $1`,
		postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CommentView
	for rows.Next() {
		var v domain.CommentView
		if err := rows.Scan(&v.CommentID, &v.UserID, &v.Nickname, &v.Text, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Create inserts a new comment.
func (r *CommentRepo) Create(ctx context.Context, postID, userID int64, text string) (*domain.Comment, error) {
	now := time.Now()
	var c domain.Comment
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO comments (post_id, user_id, comment, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id, post_id, user_id, comment, created_at, updated_at",
		postID, userID, text, now,
	).Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update edits a comment scoped by both id and owner.
func (r *CommentRepo) Update(ctx context.Context, id, userID int64, text string) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"UPDATE comments SET comment = $3, updated_at = $4 WHERE id = $1 AND user_id = $2",
		id, userID, text, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a comment scoped by both id and owner.
func (r *CommentRepo) Delete(ctx context.Context, id, userID int64) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM comments WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
