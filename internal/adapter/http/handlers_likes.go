package adapthttp

import (
	"net/http"
)

func (s *Server) handleLikedPosts(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	posts, err := s.feed.ListLikedPosts(r.Context(), p.UserID)
	if err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": posts})
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeFail(w, err)
		return
	}

	p, _ := PrincipalFromContext(r.Context())
	liked, err := s.engagement.Toggle(r.Context(), postID, p.UserID)
	if err != nil {
		writeFail(w, err)
		return
	}

	msg := "Unlike the post."
	if liked {
		msg = "Registered to like the post."
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msg})
}
