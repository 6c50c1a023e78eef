package app

import (
	"context"
	"regexp"
	"sort"

	"threadboard/internal/apperr"
	"threadboard/internal/domain"
)

var reComment = regexp.MustCompile(`(?s)^.{1,100}$`)

// CommentService handles comment reads and ownership-enforced mutations.
type CommentService struct {
	comments domain.CommentRepository
	posts    domain.PostRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(comments domain.CommentRepository, posts domain.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// ListByPost returns a post's comments joined to author nicknames,
// newest first.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]domain.CommentView, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// Create validates and stores a comment on an existing post.
func (s *CommentService) Create(ctx context.Context, postID, userID int64, text string) (*domain.Comment, error) {
	if !reComment.MatchString(text) {
		return nil, apperr.New(apperr.ValidationFailed, "The data format is incorrect.")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.New(apperr.NotFound, "The thread does not exist.")
	}

	return s.comments.Create(ctx, postID, userID, text)
}

// Update edits a comment through the two-step ownership protocol.
func (s *CommentService) Update(ctx context.Context, id, userID int64, text string) error {
	if !reComment.MatchString(text) {
		return apperr.New(apperr.ValidationFailed, "The data format is incorrect.")
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return apperr.New(apperr.NotFound, "Comments do not exist.")
	}

	affected, err := s.comments.Update(ctx, id, userID, text)
	if err != nil {
		return err
	}
	if affected < 1 {
		return apperr.New(apperr.OperationNotApplied, "Comment editing was not handled properly.")
	}
	return nil
}

// Delete removes a comment through the two-step ownership protocol.
func (s *CommentService) Delete(ctx context.Context, id, userID int64) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return apperr.New(apperr.NotFound, "Comments do not exist.")
	}

	affected, err := s.comments.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected < 1 {
		return apperr.New(apperr.OperationNotApplied, "Comment deletion was not handled properly.")
	}
	return nil
}
