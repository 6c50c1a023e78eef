package adapthttp

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"threadboard/internal/apperr"
)

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.ValidationFailed, "The data format is incorrect.")
	}
	return id, nil
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.feed.ListPosts(r.Context())
	if err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": posts})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeFail(w, err)
		return
	}

	p, _ := PrincipalFromContext(r.Context())
	view, err := s.feed.GetPost(r.Context(), postID, p.UserID, !p.Anonymous)
	if err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": view})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, apperr.Wrap(apperr.ValidationFailed, "The data format is incorrect.", err))
		return
	}

	p, _ := PrincipalFromContext(r.Context())
	if _, err := s.posts.Create(r.Context(), p.UserID, req.Title, req.Content); err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "You have succeeded in writing a post."})
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeFail(w, err)
		return
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, apperr.Wrap(apperr.ValidationFailed, "The data format is incorrect.", err))
		return
	}

	p, _ := PrincipalFromContext(r.Context())
	if err := s.posts.Update(r.Context(), postID, p.UserID, req.Title, req.Content); err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Edited the post."})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeFail(w, err)
		return
	}

	p, _ := PrincipalFromContext(r.Context())
	if err := s.posts.Delete(r.Context(), postID, p.UserID); err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Post deleted."})
}
