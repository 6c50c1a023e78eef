package app

import (
	"context"
	"time"

	"threadboard/internal/domain"
)

// Mock repositories shared by the service tests, function-fields pattern.

type mockUserRepo struct {
	getByIDFn          func(ctx context.Context, id int64) (*domain.User, error)
	getByNicknameFn    func(ctx context.Context, nickname string) (*domain.User, error)
	getByCredentialsFn func(ctx context.Context, nickname, password string) (*domain.User, error)
	createFn           func(ctx context.Context, nickname, password string) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	if m.getByNicknameFn != nil {
		return m.getByNicknameFn(ctx, nickname)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByCredentials(ctx context.Context, nickname, password string) (*domain.User, error) {
	if m.getByCredentialsFn != nil {
		return m.getByCredentialsFn(ctx, nickname, password)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, nickname, password string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, nickname, password)
	}
	return &domain.User{ID: 1, Nickname: nickname, Password: password, CreatedAt: time.Now()}, nil
}

type mockPostRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (*domain.Post, error)
	listSummariesFn func(ctx context.Context) ([]domain.PostSummary, error)
	getDetailFn     func(ctx context.Context, id int64) (*domain.PostDetail, error)
	createFn        func(ctx context.Context, userID int64, title, content string) (*domain.Post, error)
	updateFn        func(ctx context.Context, id, userID int64, title, content string) (int64, error)
	deleteFn        func(ctx context.Context, id, userID int64) (int64, error)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) ListSummaries(ctx context.Context) ([]domain.PostSummary, error) {
	if m.listSummariesFn != nil {
		return m.listSummariesFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepo) GetDetail(ctx context.Context, id int64) (*domain.PostDetail, error) {
	if m.getDetailFn != nil {
		return m.getDetailFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) Create(ctx context.Context, userID int64, title, content string) (*domain.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, title, content)
	}
	return &domain.Post{ID: 1, UserID: userID, Title: title, Content: content}, nil
}

func (m *mockPostRepo) Update(ctx context.Context, id, userID int64, title, content string) (int64, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, userID, title, content)
	}
	return 1, nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id, userID int64) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return 1, nil
}

type mockCommentRepo struct {
	getByIDFn    func(ctx context.Context, id int64) (*domain.Comment, error)
	listByPostFn func(ctx context.Context, postID int64) ([]domain.CommentView, error)
	createFn     func(ctx context.Context, postID, userID int64, text string) (*domain.Comment, error)
	updateFn     func(ctx context.Context, id, userID int64, text string) (int64, error)
	deleteFn     func(ctx context.Context, id, userID int64) (int64, error)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64) ([]domain.CommentView, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockCommentRepo) Create(ctx context.Context, postID, userID int64, text string) (*domain.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, postID, userID, text)
	}
	return &domain.Comment{ID: 1, PostID: postID, UserID: userID, Text: text}, nil
}

func (m *mockCommentRepo) Update(ctx context.Context, id, userID int64, text string) (int64, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, userID, text)
	}
	return 1, nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, id, userID int64) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return 1, nil
}

type mockLikeRepo struct {
	listAllFn     func(ctx context.Context) ([]domain.Like, error)
	listByUserFn  func(ctx context.Context, userID int64) ([]domain.Like, error)
	countByPostFn func(ctx context.Context, postID int64) (int, error)
	getFn         func(ctx context.Context, postID, userID int64) (*domain.Like, error)
	createFn      func(ctx context.Context, postID, userID int64) error
	deleteFn      func(ctx context.Context, postID, userID int64) (int64, error)
}

func (m *mockLikeRepo) ListAll(ctx context.Context) ([]domain.Like, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockLikeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Like, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockLikeRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	if m.countByPostFn != nil {
		return m.countByPostFn(ctx, postID)
	}
	return 0, nil
}

func (m *mockLikeRepo) Get(ctx context.Context, postID, userID int64) (*domain.Like, error) {
	if m.getFn != nil {
		return m.getFn(ctx, postID, userID)
	}
	return nil, nil
}

func (m *mockLikeRepo) Create(ctx context.Context, postID, userID int64) error {
	if m.createFn != nil {
		return m.createFn(ctx, postID, userID)
	}
	return nil
}

func (m *mockLikeRepo) Delete(ctx context.Context, postID, userID int64) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID, userID)
	}
	return 1, nil
}
