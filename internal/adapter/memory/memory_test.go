package memory

import (
	"context"
	"testing"

	"threadboard/internal/domain"
)

func TestUserRepo_CompoundCredentials(t *testing.T) {
	ctx := context.Background()
	db := New()
	users := db.NewUserRepo()

	if _, err := users.Create(ctx, "alice", "hunter12"); err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := users.GetByCredentials(ctx, "alice", "hunter12")
	if err != nil {
		t.Fatalf("get by credentials: %v", err)
	}
	if u == nil {
		t.Fatal("expected a match on the full credential pair")
	}

	u, err = users.GetByCredentials(ctx, "alice", "wrongpass")
	if err != nil {
		t.Fatalf("get by credentials: %v", err)
	}
	if u != nil {
		t.Error("expected no match on a wrong password")
	}
}

func TestPostRepo_CompoundMutations(t *testing.T) {
	ctx := context.Background()
	db := New()
	posts := db.NewPostRepo()

	p, err := posts.Create(ctx, 1, "hello", "content")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	affected, err := posts.Update(ctx, p.ID, 2, "stolen", "content")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected a foreign-owner update to affect 0 rows, got %d", affected)
	}

	affected, err = posts.Update(ctx, p.ID, 1, "edited", "content")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected the owner update to affect 1 row, got %d", affected)
	}

	got, err := posts.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "edited" {
		t.Errorf("expected the edit to persist, got %q", got.Title)
	}

	affected, err = posts.Delete(ctx, p.ID, 2)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected a foreign-owner delete to affect 0 rows, got %d", affected)
	}

	affected, err = posts.Delete(ctx, p.ID, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected the owner delete to affect 1 row, got %d", affected)
	}

	got, err = posts.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Error("expected the post to be gone")
	}
}

func TestPostRepo_ListSummariesNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := New()
	users := db.NewUserRepo()
	posts := db.NewPostRepo()

	if _, err := users.Create(ctx, "alice", "hunter12"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, title := range []string{"one", "two", "three"} {
		if _, err := posts.Create(ctx, 1, title, "content"); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	out, err := posts.ListSummaries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(out))
	}
	if out[0].Title != "three" || out[2].Title != "one" {
		t.Errorf("expected newest-first order, got %q...%q", out[0].Title, out[2].Title)
	}
	if out[0].Nickname != "alice" {
		t.Errorf("expected the author join, got %q", out[0].Nickname)
	}
}

func TestLikeRepo_CompoundUniqueness(t *testing.T) {
	ctx := context.Background()
	db := New()
	likes := db.NewLikeRepo()

	if err := likes.Create(ctx, 1, 2); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := likes.Create(ctx, 1, 2); err != domain.ErrLikeExists {
		t.Errorf("expected ErrLikeExists on a duplicate, got %v", err)
	}

	// Different user on the same post is a different row.
	if err := likes.Create(ctx, 1, 3); err != nil {
		t.Errorf("create for another user: %v", err)
	}

	count, err := likes.CountByPost(ctx, 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 likes, got %d", count)
	}

	affected, err := likes.Delete(ctx, 1, 2)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 row deleted, got %d", affected)
	}

	l, err := likes.Get(ctx, 1, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l != nil {
		t.Error("expected the like to be gone")
	}
}
