package adapthttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"threadboard/internal/apperr"
	"threadboard/internal/domain"
)

// GateMode selects how the auth gate treats the session token.
type GateMode int

const (
	// GateAnonymous passes only when no token is present.
	GateAnonymous GateMode = iota
	// GateRequired fails closed on anything but a valid, resolvable token.
	GateRequired
	// GateOptional fails open, substituting the anonymous principal.
	GateOptional
)

// Principal is the resolved identity attached to a request after the
// gate runs. Anonymous principals carry no user id.
type Principal struct {
	UserID    int64
	Nickname  string
	Anonymous bool
}

type contextKey string

const principalContextKey contextKey = "principal"

// PrincipalFromContext retrieves the principal set by the auth gate.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}

var (
	// ErrTokenMalformedPrefix marks a cookie whose value does not start
	// with the Bearer prefix.
	ErrTokenMalformedPrefix = errors.New("session cookie is not a bearer value")

	errTokenAbsent      = errors.New("session token absent")
	errPrincipalUnknown = errors.New("token user does not resolve")
)

// resolvePrincipal walks the token states for one request: absent,
// malformed prefix, codec failure, lookup miss, or a valid principal.
func (s *Server) resolvePrincipal(r *http.Request) (*domain.User, error) {
	cookie, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return nil, errTokenAbsent
	}

	// The cookie carries a prefixed bearer value: "Bearer <token>".
	parts := strings.SplitN(cookie.Value, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrTokenMalformedPrefix
	}

	userID, err := s.codec.Verify(parts[1])
	if err != nil {
		return nil, err
	}

	user, err := s.auth.ResolveUser(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errPrincipalUnknown
	}
	return user, nil
}

// gate returns middleware enforcing the given mode. All failure states
// collapse into one outward signal so clients cannot tell a missing
// token from an invalid one; the distinction is only logged.
func (s *Server) gate(mode GateMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch mode {
			case GateAnonymous:
				if _, err := r.Cookie(s.cfg.CookieName); err == nil {
					writeFail(w, apperr.New(apperr.AlreadyAuthenticated, "You are already logged in."))
					return
				}
				next.ServeHTTP(w, r)

			case GateRequired:
				user, err := s.resolvePrincipal(r)
				if err != nil {
					if !errors.Is(err, errTokenAbsent) {
						log.Printf("auth gate: rejected token: %v", err)
					}
					writeFail(w, apperr.New(apperr.Unauthenticated, "This feature requires login."))
					return
				}
				p := Principal{UserID: user.ID, Nickname: user.Nickname}
				ctx := context.WithValue(r.Context(), principalContextKey, p)
				next.ServeHTTP(w, r.WithContext(ctx))

			case GateOptional:
				p := Principal{Anonymous: true}
				if user, err := s.resolvePrincipal(r); err == nil {
					p = Principal{UserID: user.ID, Nickname: user.Nickname}
				}
				ctx := context.WithValue(r.Context(), principalContextKey, p)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}
