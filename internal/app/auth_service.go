package app

import (
	"context"
	"regexp"
	"strings"

	"threadboard/internal/apperr"
	"threadboard/internal/domain"
)

var (
	reNickname = regexp.MustCompile(`^[a-zA-Z0-9]{3,10}$`)
	rePassword = regexp.MustCompile(`^[a-zA-Z0-9]{4,30}$`)
)

// AuthService handles signup, login and principal resolution.
//
// Credentials are stored and compared in plaintext through a compound
// nickname+password filter, carried over from the system this replaces.
// Known defect; fixing it is out of scope here.
type AuthService struct {
	users domain.UserRepository
	codec *TokenCodec
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, codec *TokenCodec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

// Signup validates and registers a new user.
func (s *AuthService) Signup(ctx context.Context, nickname, password, confirm string) (*domain.User, error) {
	if password != confirm {
		return nil, apperr.New(apperr.ValidationFailed, "Passwords do not match.")
	}
	if !reNickname.MatchString(nickname) {
		return nil, apperr.New(apperr.ValidationFailed, "The format of the ID does not match.")
	}
	if !rePassword.MatchString(password) {
		return nil, apperr.New(apperr.ValidationFailed, "The password format does not match.")
	}
	if strings.Contains(password, nickname) {
		return nil, apperr.New(apperr.ValidationFailed, "Your password contains your nickname.")
	}

	existing, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.ValidationFailed, "This is a duplicate nickname.")
	}

	return s.users.Create(ctx, nickname, password)
}

// Login checks credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, nickname, password string) (string, error) {
	user, err := s.users.GetByCredentials(ctx, nickname, password)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.New(apperr.ValidationFailed, "Please check your nickname or password.")
	}

	token, _, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// ResolveUser loads the user a verified token points at. A nil user
// means the id no longer resolves.
func (s *AuthService) ResolveUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
