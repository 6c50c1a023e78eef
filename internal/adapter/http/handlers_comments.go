package adapthttp

import (
	"net/http"

	"threadboard/internal/apperr"
)

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeFail(w, err)
		return
	}

	comments, err := s.comments.ListByPost(r.Context(), postID)
	if err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": comments})
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeFail(w, err)
		return
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, apperr.Wrap(apperr.ValidationFailed, "The data format is incorrect.", err))
		return
	}

	p, _ := PrincipalFromContext(r.Context())
	if _, err := s.comments.Create(r.Context(), postID, p.UserID, req.Comment); err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "You wrote a comment."})
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentID")
	if err != nil {
		writeFail(w, err)
		return
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, apperr.Wrap(apperr.ValidationFailed, "The data format is incorrect.", err))
		return
	}

	p, _ := PrincipalFromContext(r.Context())
	if err := s.comments.Update(r.Context(), commentID, p.UserID, req.Comment); err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Edited comment."})
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentID")
	if err != nil {
		writeFail(w, err)
		return
	}

	p, _ := PrincipalFromContext(r.Context())
	if err := s.comments.Delete(r.Context(), commentID, p.UserID); err != nil {
		writeFail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Comment deleted."})
}
