package app

import (
	"context"
	"sort"

	"threadboard/internal/apperr"
	"threadboard/internal/domain"
)

// FeedService assembles ranked post listings by joining authors and
// attaching like counts.
type FeedService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
	likes    domain.LikeRepository
}

// NewFeedService creates a new feed service.
func NewFeedService(posts domain.PostRepository, comments domain.CommentRepository, likes domain.LikeRepository) *FeedService {
	return &FeedService{posts: posts, comments: comments, likes: likes}
}

// PostView is the detail payload: the post, its like count, whether the
// viewer liked it, and its comments.
type PostView struct {
	domain.PostDetail
	LikedByMe *bool                `json:"likedByMe,omitempty"`
	Comments  []domain.CommentView `json:"comments"`
}

// ListPosts returns every post summary, most-liked first, recency
// breaking ties.
func (s *FeedService) ListPosts(ctx context.Context) ([]domain.PostSummary, error) {
	return s.rank(ctx)
}

// ListLikedPosts returns the globally ranked sequence filtered to the
// posts the given user has liked, preserving the global relative order.
func (s *FeedService) ListLikedPosts(ctx context.Context, userID int64) ([]domain.PostSummary, error) {
	ranked, err := s.rank(ctx)
	if err != nil {
		return nil, err
	}

	userLikes, err := s.likes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	liked := make(map[int64]bool, len(userLikes))
	for _, l := range userLikes {
		liked[l.PostID] = true
	}

	filtered := make([]domain.PostSummary, 0, len(liked))
	for _, p := range ranked {
		if liked[p.PostID] {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetPost returns the detail view of one post. When hasViewer is set the
// view includes whether that viewer has liked the post.
func (s *FeedService) GetPost(ctx context.Context, postID int64, viewerID int64, hasViewer bool) (*PostView, error) {
	detail, err := s.posts.GetDetail(ctx, postID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperr.New(apperr.NotFound, "The thread does not exist.")
	}

	count, err := s.likes.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	detail.LikeCount = count

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	view := &PostView{PostDetail: *detail, Comments: comments}
	if hasViewer {
		like, err := s.likes.Get(ctx, postID, viewerID)
		if err != nil {
			return nil, err
		}
		likedByMe := like != nil
		view.LikedByMe = &likedByMe
	}
	return view, nil
}

// rank builds the global ranking: join rows from the store, a full like
// scan counted in memory, then two stable sort passes. The like counts
// and the join are separate reads, so counts may lag concurrent toggles
// by a small margin; that is accepted.
func (s *FeedService) rank(ctx context.Context) ([]domain.PostSummary, error) {
	summaries, err := s.posts.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	likes, err := s.likes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[int64]int, len(summaries))
	for _, l := range likes {
		counts[l.PostID]++
	}
	for i := range summaries {
		summaries[i].LikeCount = counts[summaries[i].PostID]
	}

	// Two stable passes, not one composite sort: recency first, then
	// like count as the dominant key. Ties on likes keep the recency
	// order established by the first pass.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LikeCount > summaries[j].LikeCount
	})
	return summaries, nil
}
