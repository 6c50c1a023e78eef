package app

import (
	"context"
	"strings"
	"testing"

	"threadboard/internal/apperr"
	"threadboard/internal/domain"
)

func ownedPostRepo(ownerID int64) *mockPostRepo {
	return &mockPostRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Post, error) {
			if id == 1 {
				return &domain.Post{ID: 1, UserID: ownerID}, nil
			}
			return nil, nil
		},
		updateFn: func(ctx context.Context, id, userID int64, title, content string) (int64, error) {
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

func TestPostService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewPostService(&mockPostRepo{})

	cases := []struct {
		name    string
		title   string
		content string
	}{
		{"empty title", "", "content"},
		{"title too long", strings.Repeat("x", 41), "content"},
		{"title with markup", "hello <b>world</b>", "content"},
		{"empty content", "hello", ""},
		{"content too long", "hello", strings.Repeat("x", 3001)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 1, tc.title, tc.content)
			assertKind(t, err, apperr.ValidationFailed)
		})
	}

	if _, err := svc.Create(ctx, 1, "hello", "a fine body"); err != nil {
		t.Errorf("valid post rejected: %v", err)
	}
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewPostService(ownedPostRepo(7))

	t.Run("owner edits", func(t *testing.T) {
		if err := svc.Update(ctx, 1, 7, "new title", "new content"); err != nil {
			t.Errorf("update: %v", err)
		}
	})

	t.Run("missing post", func(t *testing.T) {
		err := svc.Update(ctx, 99, 7, "new title", "new content")
		assertKind(t, err, apperr.NotFound)
	})

	t.Run("foreign owner", func(t *testing.T) {
		err := svc.Update(ctx, 1, 8, "new title", "new content")
		assertKind(t, err, apperr.OperationNotApplied)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewPostService(ownedPostRepo(7))

	t.Run("owner deletes", func(t *testing.T) {
		if err := svc.Delete(ctx, 1, 7); err != nil {
			t.Errorf("delete: %v", err)
		}
	})

	t.Run("missing post", func(t *testing.T) {
		err := svc.Delete(ctx, 99, 7)
		assertKind(t, err, apperr.NotFound)
	})

	t.Run("foreign owner", func(t *testing.T) {
		err := svc.Delete(ctx, 1, 8)
		assertKind(t, err, apperr.OperationNotApplied)
	})
}
