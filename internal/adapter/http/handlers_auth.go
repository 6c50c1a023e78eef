package adapthttp

import (
	"net/http"
	"time"

	"threadboard/internal/apperr"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nickname string `json:"nickname"`
		Password string `json:"password"`
		Confirm  string `json:"confirm"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, apperr.Wrap(apperr.ValidationFailed, "The requested data format is not valid.", err))
		return
	}

	if _, err := s.auth.Signup(r.Context(), req.Nickname, req.Password, req.Confirm); err != nil {
		writeFail(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "You have successfully registered as a member."})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nickname string `json:"nickname"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, apperr.Wrap(apperr.ValidationFailed, "The requested data format is not valid.", err))
		return
	}

	token, err := s.auth.Login(r.Context(), req.Nickname, req.Password)
	if err != nil {
		writeFail(w, err)
		return
	}

	// The cookie outlives the token on purpose; the signed expiry is the
	// one the gate trusts.
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "Bearer " + token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(s.cfg.CookieTTL),
	})

	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}
