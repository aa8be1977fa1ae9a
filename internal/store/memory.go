package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"backlog/backend/internal/apperror"
	"backlog/backend/internal/models"
)

// MemoryStore is a map-backed GameStore with the same semantics as GormStore,
// including normalization on every write. Tests use it in place of a
// database; Now can be overridden to pin timestamps.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[int]models.Game

	Now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[int]models.Game),
		Now:   time.Now,
	}
}

func (s *MemoryStore) List(_ context.Context) ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, cloneGame(g))
	}
	sort.Slice(games, func(i, j int) bool { return games[i].SteamAppId < games[j].SteamAppId })
	return games, nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, apperror.NotFound("game", id)
	}
	c := cloneGame(g)
	return &c, nil
}

func (s *MemoryStore) GetByTitle(_ context.Context, title string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Lowest app id wins, mirroring the ordered first-match of the SQL store.
	ids := make([]int, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if s.games[id].Title == title {
			c := cloneGame(s.games[id])
			return &c, nil
		}
	}
	return nil, apperror.NotFound("game", title)
}

func (s *MemoryStore) Insert(_ context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.SteamAppId]; exists {
		return apperror.Conflict("game", game.SteamAppId)
	}
	game.Normalize(s.Now())
	s.games[game.SteamAppId] = cloneGame(*game)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, id int, game *models.Game) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.games[id]
	if !ok {
		return nil, apperror.NotFound("game", id)
	}
	existing.ApplyUpdate(game)
	existing.Normalize(s.Now())
	s.games[id] = cloneGame(existing)
	return &existing, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return apperror.NotFound("game", id)
	}
	delete(s.games, id)
	return nil
}

func (s *MemoryStore) SaveAll(_ context.Context, games []*models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	for _, game := range games {
		game.Normalize(now)
		s.games[game.SteamAppId] = cloneGame(*game)
	}
	return nil
}

// cloneGame deep-copies a game so callers never alias the stored pointers.
func cloneGame(g models.Game) models.Game {
	c := g
	c.Genre = clonePtr(g.Genre)
	c.Developer = clonePtr(g.Developer)
	c.ReleaseYear = clonePtr(g.ReleaseYear)
	c.CompletedOn = clonePtr(g.CompletedOn)
	c.PlaytimeHours = clonePtr(g.PlaytimeHours)
	c.Rating = clonePtr(g.Rating)
	c.Review = clonePtr(g.Review)
	c.ValidatedOn = clonePtr(g.ValidatedOn)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
