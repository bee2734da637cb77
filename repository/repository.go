// Package repository is responsible for the permanent storage of data of this application
package repository

import (
	"context"
	"time"

	"github.com/futebolada/futebolada-server/pool"
)

//go:generate mockgen -source=repository.go -destination=../internal/mocks/repository.go -package=mocks -mock_names=Admin=MockAdminRepo,Player=MockPlayerRepo,Week=MockWeekRepo

type Admin interface {
	// GetByUsername returns the admin whose username matches
	// case-insensitively, or nil when no such row exists.
	GetByUsername(ctx context.Context, username string) (*pool.Admin, error)

	// Create inserts a new admin row and returns its generated id.
	Create(ctx context.Context, admin pool.Admin) (int, error)

	// Delete removes the admin row by id and reports whether a row was
	// actually deleted.
	Delete(ctx context.Context, id int) (bool, error)
}

type Player interface {
	// GetByUsername returns the player whose username matches
	// case-insensitively, or nil when no such row exists.
	GetByUsername(ctx context.Context, username string) (*pool.Player, error)

	// GetByID returns a player by id, or nil when no such row exists.
	GetByID(ctx context.Context, id int) (*pool.Player, error)

	// UpdatePassword replaces the stored password hash of a player and
	// reports whether a row was affected.
	UpdatePassword(ctx context.Context, id int, hash string) (bool, error)

	// List returns all players.
	List(ctx context.Context) ([]pool.Player, error)
}

type Week interface {
	// List returns all weeks, most recent first.
	List(ctx context.Context) ([]pool.Week, error)

	// GetByID returns a week by id, or nil when no such row exists.
	GetByID(ctx context.Context, id int) (*pool.Week, error)

	// Create inserts a new week and returns its generated id.
	Create(ctx context.Context, date time.Time) (int, error)
}
