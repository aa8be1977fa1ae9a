// Package service holds the bulk validation routine, the only multi-row
// operation in the system.
package service

import (
	"context"
	"fmt"
	"time"

	"backlog/backend/internal/models"
	"backlog/backend/internal/store"
)

// ValidationResult summarizes a bulk validation pass.
type ValidationResult struct {
	UpdatedCount int       `json:"updatedCount"`
	Timestamp    time.Time `json:"timestamp"`
	Message      string    `json:"message"`
	TotalGames   int       `json:"-"`
}

// Validator re-applies the consistency rules across every stored game in one
// pass and commits the whole batch once.
type Validator struct {
	store store.GameStore
	now   func() time.Time
}

func NewValidator(s store.GameStore) *Validator {
	return &Validator{store: s, now: time.Now}
}

// ValidateAll scans all games, applies the consistency rules to each row
// independently and stamps ValidatedOn on every row. Only rows changed by the
// rules count toward UpdatedCount; the ValidatedOn stamp alone does not. The
// scan offers no isolation against concurrent single-row writes.
func (v *Validator) ValidateAll(ctx context.Context) (*ValidationResult, error) {
	games, err := v.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}

	now := v.now().UTC()
	updated := 0

	batch := make([]*models.Game, 0, len(games))
	for i := range games {
		game := &games[i]
		if game.ApplyConsistencyRules(now) {
			updated++
		}
		game.ValidatedOn = &now
		batch = append(batch, game)
	}

	// Commit even when no rule fired: the ValidatedOn stamps must persist.
	if err := v.store.SaveAll(ctx, batch); err != nil {
		return nil, fmt.Errorf("saving validated games: %w", err)
	}

	return &ValidationResult{
		UpdatedCount: updated,
		Timestamp:    now,
		Message:      fmt.Sprintf("Validation complete. %d games updated.", updated),
		TotalGames:   len(games),
	}, nil
}
