package app

import (
	"context"
	"strings"
	"testing"

	"threadboard/internal/apperr"
	"threadboard/internal/domain"
)

func ownedCommentRepo(ownerID int64) *mockCommentRepo {
	return &mockCommentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Comment, error) {
			if id == 1 {
				return &domain.Comment{ID: 1, PostID: 1, UserID: ownerID}, nil
			}
			return nil, nil
		},
		updateFn: func(ctx context.Context, id, userID int64, text string) (int64, error) {
			if id == 1 && userID == ownerID {
				return 1, nil
			}
			return 0, nil
		},
		deleteFn: func(ctx context.Context, id, userID int64) (int64, error) {
			if id == 1 && userID == ownerID {
				return 1, nil
			}
			return 0, nil
		},
	}
}

func existingPostRepo() *mockPostRepo {
	return &mockPostRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Post, error) {
			if id == 1 {
				return &domain.Post{ID: 1, UserID: 7}, nil
			}
			return nil, nil
		},
	}
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(&mockCommentRepo{}, existingPostRepo())

	t.Run("valid comment", func(t *testing.T) {
		c, err := svc.Create(ctx, 1, 7, "nice post")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if c.Text != "nice post" {
			t.Errorf("expected text to round-trip, got %q", c.Text)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, 7, "")
		assertKind(t, err, apperr.ValidationFailed)
	})

	t.Run("text too long", func(t *testing.T) {
		_, err := svc.Create(ctx, 1, 7, strings.Repeat("x", 101))
		assertKind(t, err, apperr.ValidationFailed)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := svc.Create(ctx, 99, 7, "nice post")
		assertKind(t, err, apperr.NotFound)
	})
}

func TestCommentService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(ownedCommentRepo(7), existingPostRepo())

	t.Run("owner edits", func(t *testing.T) {
		if err := svc.Update(ctx, 1, 7, "edited"); err != nil {
			t.Errorf("update: %v", err)
		}
	})

	t.Run("missing comment", func(t *testing.T) {
		err := svc.Update(ctx, 99, 7, "edited")
		assertKind(t, err, apperr.NotFound)
	})

	t.Run("foreign owner", func(t *testing.T) {
		err := svc.Update(ctx, 1, 8, "edited")
		assertKind(t, err, apperr.OperationNotApplied)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(ownedCommentRepo(7), existingPostRepo())

	t.Run("owner deletes", func(t *testing.T) {
		if err := svc.Delete(ctx, 1, 7); err != nil {
			t.Errorf("delete: %v", err)
		}
	})

	t.Run("missing comment", func(t *testing.T) {
		err := svc.Delete(ctx, 99, 7)
		assertKind(t, err, apperr.NotFound)
	})

	t.Run("foreign owner", func(t *testing.T) {
		err := svc.Delete(ctx, 1, 8)
		assertKind(t, err, apperr.OperationNotApplied)
	})
}
