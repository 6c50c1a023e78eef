package domain

import (
	"context"
	"time"
)

// Comment represents a reply attached to a post.
type Comment struct {
	ID        int64     `json:"commentId"`
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentView is a comment row joined to its author's nickname.
type CommentView struct {
	CommentID int64     `json:"commentId"`
	UserID    int64     `json:"userId"`
	Nickname  string    `json:"nickname"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentRepository defines the port for comment persistence operations.
type CommentRepository interface {
	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]CommentView, error)
	Create(ctx context.Context, postID, userID int64, text string) (*Comment, error)
	Update(ctx context.Context, id, userID int64, text string) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
}
