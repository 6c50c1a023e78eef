// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents a registered board member.
type User struct {
	ID        int64
	Nickname  string
	Password  string
	CreatedAt time.Time
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByNickname(ctx context.Context, nickname string) (*User, error)
	// GetByCredentials looks a user up by nickname and password in one
	// compound filter, so a miss never reveals which half was wrong.
	GetByCredentials(ctx context.Context, nickname, password string) (*User, error)
	Create(ctx context.Context, nickname, password string) (*User, error)
}
