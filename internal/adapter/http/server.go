// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"threadboard/internal/app"
	"threadboard/internal/config"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	cfg        *config.Config
	codec      *app.TokenCodec
	auth       *app.AuthService
	feed       *app.FeedService
	posts      *app.PostService
	comments   *app.CommentService
	engagement *app.EngagementService
}

// New creates a Server wired to the given application services.
func New(cfg *config.Config, codec *app.TokenCodec, auth *app.AuthService, feed *app.FeedService, posts *app.PostService, comments *app.CommentService, engagement *app.EngagementService) *Server {
	return &Server{
		cfg:        cfg,
		codec:      codec,
		auth:       auth,
		feed:       feed,
		posts:      posts,
		comments:   comments,
		engagement: engagement,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(api chi.Router) {
		api.With(s.gate(GateAnonymous)).Post("/signup", s.handleSignup)
		api.With(s.gate(GateAnonymous)).Post("/login", s.handleLogin)

		api.Route("/posts", func(pr chi.Router) {
			pr.With(s.gate(GateOptional)).Get("/", s.handleListPosts)
			pr.With(s.gate(GateRequired)).Post("/", s.handleCreatePost)
			pr.With(s.gate(GateRequired)).Get("/like", s.handleLikedPosts)
			pr.With(s.gate(GateOptional)).Get("/{postID}", s.handleGetPost)
			pr.With(s.gate(GateRequired)).Put("/{postID}", s.handleUpdatePost)
			pr.With(s.gate(GateRequired)).Delete("/{postID}", s.handleDeletePost)
			pr.With(s.gate(GateRequired)).Put("/{postID}/like", s.handleToggleLike)
		})

		api.Route("/comments", func(cr chi.Router) {
			cr.With(s.gate(GateOptional)).Get("/{postID}", s.handleListComments)
			cr.With(s.gate(GateRequired)).Post("/{postID}", s.handleCreateComment)
			cr.With(s.gate(GateRequired)).Put("/{commentID}", s.handleUpdateComment)
			cr.With(s.gate(GateRequired)).Delete("/{commentID}", s.handleDeleteComment)
		})
	})

	return r
}
