package domain

import (
	"context"
	"errors"
)

// ErrLikeExists is returned by LikeRepository.Create when the (post,
// user) pair already has a row. The store's compound uniqueness
// constraint raises it when two concurrent toggles race.
var ErrLikeExists = errors.New("like already exists")

// Like marks that a user has liked a post. Its existence is the whole
// payload; there is at most one row per (post, user) pair.
type Like struct {
	PostID int64
	UserID int64
}

// LikeRepository defines the port for like persistence operations.
type LikeRepository interface {
	ListAll(ctx context.Context) ([]Like, error)
	ListByUser(ctx context.Context, userID int64) ([]Like, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
	Get(ctx context.Context, postID, userID int64) (*Like, error)
	Create(ctx context.Context, postID, userID int64) error
	Delete(ctx context.Context, postID, userID int64) (int64, error)
}
