package domain

import (
	"context"
	"time"
)

// Post represents a thread opened by a user.
type Post struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostSummary is a denormalized post row joined to its author, as served
// by the listing endpoints. LikeCount is attached by the feed service,
// not by the store.
type PostSummary struct {
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	Nickname  string    `json:"nickname"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	LikeCount int       `json:"likes"`
}

// PostDetail is a single post joined to its author, including the body.
type PostDetail struct {
	PostID    int64     `json:"postId"`
	UserID    int64     `json:"userId"`
	Nickname  string    `json:"nickname"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	LikeCount int       `json:"likes"`
}

// PostRepository defines the port for post persistence operations.
// Update and Delete are compound-filtered by (id, userID) and report the
// affected-row count so the caller can tell "not applied" from success.
type PostRepository interface {
	GetByID(ctx context.Context, id int64) (*Post, error)
	ListSummaries(ctx context.Context) ([]PostSummary, error)
	GetDetail(ctx context.Context, id int64) (*PostDetail, error)
	Create(ctx context.Context, userID int64, title, content string) (*Post, error)
	Update(ctx context.Context, id, userID int64, title, content string) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
}
