// Package store provides the persistence contract for games and its two
// implementations: a GORM/Postgres store used in production and an in-memory
// store used by tests.
//
// Every write path (Insert, Update, SaveAll) applies models.Game.Normalize
// before persisting. That is the one invariant the system guarantees, so it
// lives here rather than in the handlers.
package store

import (
	"context"

	"backlog/backend/internal/models"
)

// GameStore is the persistence contract consumed by handlers and the bulk
// validator.
type GameStore interface {
	// List returns all games in implementation-defined order.
	List(ctx context.Context) ([]models.Game, error)

	// Get returns the game with the given Steam app id, or ErrNotFound.
	Get(ctx context.Context, id int) (*models.Game, error)

	// GetByTitle returns the first game whose title matches exactly, or
	// ErrNotFound. Titles are not unique; the backend decides which match
	// comes first, but deterministically.
	GetByTitle(ctx context.Context, title string) (*models.Game, error)

	// Insert persists a new game. Returns ErrConflict when the primary key
	// already exists; the storage-level unique constraint is the
	// authoritative source of that conflict, any pre-check is a fast path.
	Insert(ctx context.Context, game *models.Game) error

	// Update replaces every mutable field of the stored game with id and
	// returns the stored result, or ErrNotFound. The primary key never
	// changes.
	Update(ctx context.Context, id int, game *models.Game) (*models.Game, error)

	// Delete removes the game with id, or returns ErrNotFound.
	Delete(ctx context.Context, id int) error

	// SaveAll persists the given games in a single commit. Used by the bulk
	// validator; calling it with no games is a no-op.
	SaveAll(ctx context.Context, games []*models.Game) error
}
