package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	adapthttp "threadboard/internal/adapter/http"
	"threadboard/internal/adapter/postgres"
	"threadboard/internal/app"
	"threadboard/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	users := db.NewUserRepo()
	posts := db.NewPostRepo()
	comments := db.NewCommentRepo()
	likes := db.NewLikeRepo()

	codec := app.NewTokenCodec(cfg)
	authSvc := app.NewAuthService(users, codec)
	feedSvc := app.NewFeedService(posts, comments, likes)
	postSvc := app.NewPostService(posts)
	commentSvc := app.NewCommentService(comments, posts)
	engagementSvc := app.NewEngagementService(likes, posts)

	h := adapthttp.New(cfg, codec, authSvc, feedSvc, postSvc, commentSvc, engagementSvc).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
