package app

import (
	"context"
	"errors"

	"threadboard/internal/apperr"
	"threadboard/internal/domain"
)

// EngagementService flips per-user like state on posts.
type EngagementService struct {
	likes domain.LikeRepository
	posts domain.PostRepository
}

// NewEngagementService creates a new engagement service.
func NewEngagementService(likes domain.LikeRepository, posts domain.PostRepository) *EngagementService {
	return &EngagementService{likes: likes, posts: posts}
}

// Toggle creates the like row for (postID, userID) if absent and deletes
// it if present, returning the resulting liked state.
//
// The check-then-act pair is not transactional. When two toggles race,
// the loser's create hits the store's compound uniqueness constraint;
// that is reported as a normal "liked" outcome since the row the caller
// wanted now exists.
func (s *EngagementService) Toggle(ctx context.Context, postID, userID int64) (bool, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, apperr.New(apperr.NotFound, "The thread does not exist.")
	}

	like, err := s.likes.Get(ctx, postID, userID)
	if err != nil {
		return false, err
	}

	if like == nil {
		if err := s.likes.Create(ctx, postID, userID); err != nil {
			if errors.Is(err, domain.ErrLikeExists) {
				return true, nil
			}
			return false, err
		}
		return true, nil
	}

	if _, err := s.likes.Delete(ctx, postID, userID); err != nil {
		return false, err
	}
	return false, nil
}
