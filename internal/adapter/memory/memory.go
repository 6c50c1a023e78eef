// Package memory implements an in-memory repository for development and
// testing. It stands in for the relational store, including the
// compound uniqueness constraint on likes.
package memory

import (
	"context"
	"sync"
	"time"

	"threadboard/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	posts    []*domain.Post
	comments []*domain.Comment
	likes    []domain.Like

	userIDCounter    int64
	postIDCounter    int64
	commentIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.PostRepository = (*PostRepo)(nil)
var _ domain.CommentRepository = (*CommentRepo)(nil)
var _ domain.LikeRepository = (*LikeRepo)(nil)

// --- UserRepository ---

// UserRepo implements user persistence.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new user repository.
func (db *DB) NewUserRepo() *UserRepo {
	return &UserRepo{db: db}
}

// GetByID retrieves a user by id, nil when absent.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByNickname retrieves a user by nickname.
func (r *UserRepo) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return nil, nil
}

// GetByCredentials retrieves a user matching nickname and password.
func (r *UserRepo) GetByCredentials(ctx context.Context, nickname, password string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Nickname == nickname && u.Password == password {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, nickname, password string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.userIDCounter++
	u := &domain.User{
		ID:        r.db.userIDCounter,
		Nickname:  nickname,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	r.db.users = append(r.db.users, u)
	return u, nil
}

// --- PostRepository ---

// PostRepo implements post persistence.
type PostRepo struct {
	db *DB
}

// NewPostRepo creates a new post repository.
func (db *DB) NewPostRepo() *PostRepo {
	return &PostRepo{db: db}
}

// GetByID retrieves a post by id, nil when absent.
func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// ListSummaries returns post rows joined to authors, newest id first as
// the store would.
func (r *PostRepo) ListSummaries(ctx context.Context) ([]domain.PostSummary, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.PostSummary, 0, len(r.db.posts))
	for i := len(r.db.posts) - 1; i >= 0; i-- {
		p := r.db.posts[i]
		out = append(out, domain.PostSummary{
			PostID:    p.ID,
			UserID:    p.UserID,
			Nickname:  r.db.nickname(p.UserID),
			Title:     p.Title,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return out, nil
}

// GetDetail returns one post joined to its author.
func (r *PostRepo) GetDetail(ctx context.Context, id int64) (*domain.PostDetail, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			return &domain.PostDetail{
				PostID:    p.ID,
				UserID:    p.UserID,
				Nickname:  r.db.nickname(p.UserID),
				Title:     p.Title,
				Content:   p.Content,
				CreatedAt: p.CreatedAt,
				UpdatedAt: p.UpdatedAt,
			}, nil
		}
	}
	return nil, nil
}

// Create creates a new post.
func (r *PostRepo) Create(ctx context.Context, userID int64, title, content string) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now().UTC()
	r.db.postIDCounter++
	p := &domain.Post{
		ID:        r.db.postIDCounter,
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.db.posts = append(r.db.posts, p)
	cp := *p
	return &cp, nil
}

// Update edits a post matching both id and owner, reporting the
// affected count.
func (r *PostRepo) Update(ctx context.Context, id, userID int64, title, content string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id && p.UserID == userID {
			p.Title = title
			p.Content = content
			p.UpdatedAt = time.Now().UTC()
			return 1, nil
		}
	}
	return 0, nil
}

// Delete removes a post matching both id and owner.
func (r *PostRepo) Delete(ctx context.Context, id, userID int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, p := range r.db.posts {
		if p.ID == id && p.UserID == userID {
			r.db.posts = append(r.db.posts[:i], r.db.posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// --- CommentRepository ---

// CommentRepo implements comment persistence.
type CommentRepo struct {
	db *DB
}

// NewCommentRepo creates a new comment repository.
func (db *DB) NewCommentRepo() *CommentRepo {
	return &CommentRepo{db: db}
}

// GetByID retrieves a comment by id, nil when absent.
func (r *CommentRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.comments {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByPost returns a post's comments joined to author nicknames.
func (r *CommentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.CommentView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []domain.CommentView
	for _, c := range r.db.comments {
		if c.PostID == postID {
			out = append(out, domain.CommentView{
				CommentID: c.ID,
				UserID:    c.UserID,
				Nickname:  r.db.nickname(c.UserID),
				Text:      c.Text,
				CreatedAt: c.CreatedAt,
				UpdatedAt: c.UpdatedAt,
			})
		}
	}
	return out, nil
}

// Create creates a new comment.
func (r *CommentRepo) Create(ctx context.Context, postID, userID int64, text string) (*domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now().UTC()
	r.db.commentIDCounter++
	c := &domain.Comment{
		ID:        r.db.commentIDCounter,
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.db.comments = append(r.db.comments, c)
	cp := *c
	return &cp, nil
}

// Update edits a comment matching both id and owner.
func (r *CommentRepo) Update(ctx context.Context, id, userID int64, text string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.comments {
		if c.ID == id && c.UserID == userID {
			c.Text = text
			c.UpdatedAt = time.Now().UTC()
			return 1, nil
		}
	}
	return 0, nil
}

// Delete removes a comment matching both id and owner.
func (r *CommentRepo) Delete(ctx context.Context, id, userID int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, c := range r.db.comments {
		if c.ID == id && c.UserID == userID {
			r.db.comments = append(r.db.comments[:i], r.db.comments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// --- LikeRepository ---

// LikeRepo implements like persistence.
type LikeRepo struct {
	db *DB
}

// NewLikeRepo creates a new like repository.
func (db *DB) NewLikeRepo() *LikeRepo {
	return &LikeRepo{db: db}
}

// ListAll returns every like row.
func (r *LikeRepo) ListAll(ctx context.Context) ([]domain.Like, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Like, len(r.db.likes))
	copy(out, r.db.likes)
	return out, nil
}

// ListByUser returns the likes placed by one user.
func (r *LikeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Like, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []domain.Like
	for _, l := range r.db.likes {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// CountByPost returns the number of likes on one post.
func (r *LikeRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	count := 0
	for _, l := range r.db.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

// Get retrieves the like row for (postID, userID), nil when absent.
func (r *LikeRepo) Get(ctx context.Context, postID, userID int64) (*domain.Like, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, l := range r.db.likes {
		if l.PostID == postID && l.UserID == userID {
			cp := l
			return &cp, nil
		}
	}
	return nil, nil
}

// Create inserts a like row, enforcing the compound uniqueness
// constraint the way the store does.
func (r *LikeRepo) Create(ctx context.Context, postID, userID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, l := range r.db.likes {
		if l.PostID == postID && l.UserID == userID {
			return domain.ErrLikeExists
		}
	}
	r.db.likes = append(r.db.likes, domain.Like{PostID: postID, UserID: userID})
	return nil
}

// Delete removes the like row for (postID, userID).
func (r *LikeRepo) Delete(ctx context.Context, postID, userID int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, l := range r.db.likes {
		if l.PostID == postID && l.UserID == userID {
			r.db.likes = append(r.db.likes[:i], r.db.likes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// nickname resolves an owner id to a nickname; callers hold the lock.
func (db *DB) nickname(userID int64) string {
	for _, u := range db.users {
		if u.ID == userID {
			return u.Nickname
		}
	}
	return ""
}
