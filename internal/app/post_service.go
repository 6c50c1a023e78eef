package app

import (
	"context"
	"regexp"

	"threadboard/internal/apperr"
	"threadboard/internal/domain"
)

var (
	reTitle   = regexp.MustCompile(`(?s)^.{1,40}$`)
	reMarkup  = regexp.MustCompile(`(?s)<.*?>`)
	// Go's regexp rejects repeat counts above 1000, so the 3000-rune
	// limit is split into equivalent consecutive runs.
	reContent = regexp.MustCompile(`(?s)^.{1,1000}.{0,1000}.{0,1000}$`)
)

// PostService handles post mutations, enforcing ownership through the
// two-step probe-then-scoped-mutation protocol.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

func validatePost(title, content string) error {
	if !reTitle.MatchString(title) || reMarkup.MatchString(title) {
		return apperr.New(apperr.ValidationFailed, "The format of the post title does not match.")
	}
	if !reContent.MatchString(content) {
		return apperr.New(apperr.ValidationFailed, "The format of the post content does not match.")
	}
	return nil
}

// Create validates and stores a new post owned by userID.
func (s *PostService) Create(ctx context.Context, userID int64, title, content string) (*domain.Post, error) {
	if err := validatePost(title, content); err != nil {
		return nil, err
	}
	return s.posts.Create(ctx, userID, title, content)
}

// Update edits a post. The existence probe distinguishes a missing post
// from one owned by someone else: the compound-filtered update cannot
// tell those apart on its own, it only reports zero rows affected.
func (s *PostService) Update(ctx context.Context, id, userID int64, title, content string) error {
	if err := validatePost(title, content); err != nil {
		return err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.New(apperr.NotFound, "The thread does not exist.")
	}

	affected, err := s.posts.Update(ctx, id, userID, title, content)
	if err != nil {
		return err
	}
	if affected < 1 {
		return apperr.New(apperr.OperationNotApplied, "The post was not properly edited.")
	}
	return nil
}

// Delete removes a post using the same two-step protocol as Update.
func (s *PostService) Delete(ctx context.Context, id, userID int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.New(apperr.NotFound, "The thread does not exist.")
	}

	affected, err := s.posts.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected < 1 {
		return apperr.New(apperr.OperationNotApplied, "The post was not properly deleted.")
	}
	return nil
}
