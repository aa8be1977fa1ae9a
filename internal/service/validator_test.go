package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backlog/backend/internal/models"
	"backlog/backend/internal/store"
)

func newFixture(t *testing.T, now time.Time, games ...models.Game) (*Validator, *store.MemoryStore) {
	t.Helper()
	s := store.NewMemoryStore()
	s.Now = func() time.Time { return now }
	for i := range games {
		require.NoError(t, s.Insert(context.Background(), &games[i]))
	}
	v := NewValidator(s)
	v.now = func() time.Time { return now }
	return v, s
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestValidateAll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	t.Run("future release year clears completion", func(t *testing.T) {
		v, s := newFixture(t, now, models.Game{
			SteamAppId:  1,
			Title:       "Unreleased",
			ReleaseYear: intPtr(now.Year() + 5),
			Completed:   true,
		})

		res, err := v.ValidateAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.UpdatedCount)
		assert.Contains(t, res.Message, "1 games updated")

		got, err := s.Get(ctx, 1)
		require.NoError(t, err)
		assert.False(t, got.Completed)
		assert.Nil(t, got.CompletedOn)
		require.NotNil(t, got.ValidatedOn)
		assert.Equal(t, now, *got.ValidatedOn)
	})

	t.Run("rated dropped game becomes completed and undropped", func(t *testing.T) {
		v, s := newFixture(t, now, models.Game{
			SteamAppId: 2,
			Title:      "Rated",
			Rating:     floatPtr(4.5),
			Dropped:    true,
		})

		res, err := v.ValidateAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.UpdatedCount)

		got, err := s.Get(ctx, 2)
		require.NoError(t, err)
		assert.True(t, got.Completed)
		assert.False(t, got.Dropped)
		require.NotNil(t, got.CompletedOn, "normalization stamps CompletedOn at commit")
	})

	t.Run("review also counts as played evidence", func(t *testing.T) {
		v, s := newFixture(t, now, models.Game{
			SteamAppId: 3,
			Review:     strPtr("fine"),
		})

		res, err := v.ValidateAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.UpdatedCount)

		got, err := s.Get(ctx, 3)
		require.NoError(t, err)
		assert.True(t, got.Completed)
	})

	t.Run("validated stamp alone does not count as an update", func(t *testing.T) {
		v, s := newFixture(t, now, models.Game{SteamAppId: 4, Title: "Plain"})

		res, err := v.ValidateAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, res.UpdatedCount)
		assert.Equal(t, 1, res.TotalGames)

		// The stamp must still be committed.
		got, err := s.Get(ctx, 4)
		require.NoError(t, err)
		require.NotNil(t, got.ValidatedOn)
		assert.Equal(t, now, *got.ValidatedOn)
	})

	t.Run("second run is idempotent", func(t *testing.T) {
		v, _ := newFixture(t, now,
			models.Game{SteamAppId: 5, Rating: floatPtr(3), Dropped: true},
			models.Game{SteamAppId: 6, ReleaseYear: intPtr(now.Year() + 2), Completed: true},
		)

		first, err := v.ValidateAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, first.UpdatedCount)

		second, err := v.ValidateAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, second.UpdatedCount)
	})

	t.Run("empty catalog yields zero count", func(t *testing.T) {
		v, _ := newFixture(t, now)
		res, err := v.ValidateAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, res.UpdatedCount)
		assert.Equal(t, 0, res.TotalGames)
	})
}
