package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func floatPtr(f float64) *float64   { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func TestNormalize(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("stamps CompletedOn when completed and unset", func(t *testing.T) {
		g := Game{SteamAppId: 1, Completed: true}
		g.Normalize(now)
		assert.NotNil(t, g.CompletedOn)
		assert.Equal(t, now, *g.CompletedOn)
	})

	t.Run("keeps an existing CompletedOn", func(t *testing.T) {
		earlier := now.Add(-48 * time.Hour)
		g := Game{SteamAppId: 1, Completed: true, CompletedOn: timePtr(earlier)}
		g.Normalize(now)
		assert.Equal(t, earlier, *g.CompletedOn)
	})

	t.Run("clears CompletedOn when not completed", func(t *testing.T) {
		g := Game{SteamAppId: 1, Completed: false, CompletedOn: timePtr(now)}
		g.Normalize(now)
		assert.Nil(t, g.CompletedOn)
	})
}

func TestApplyConsistencyRules(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("future release year clears completion", func(t *testing.T) {
		g := Game{
			SteamAppId:  1,
			ReleaseYear: intPtr(now.Year() + 5),
			Completed:   true,
			CompletedOn: timePtr(now),
		}
		changed := g.ApplyConsistencyRules(now)
		assert.True(t, changed)
		assert.False(t, g.Completed)
		assert.Nil(t, g.CompletedOn)
	})

	t.Run("rating implies completed", func(t *testing.T) {
		g := Game{SteamAppId: 1, Rating: floatPtr(4.5)}
		changed := g.ApplyConsistencyRules(now)
		assert.True(t, changed)
		assert.True(t, g.Completed)
	})

	t.Run("zero rating does not imply completed", func(t *testing.T) {
		g := Game{SteamAppId: 1, Rating: floatPtr(0)}
		assert.False(t, g.ApplyConsistencyRules(now))
		assert.False(t, g.Completed)
	})

	t.Run("review implies completed", func(t *testing.T) {
		g := Game{SteamAppId: 1, Review: strPtr("great")}
		changed := g.ApplyConsistencyRules(now)
		assert.True(t, changed)
		assert.True(t, g.Completed)
	})

	t.Run("empty review does not imply completed", func(t *testing.T) {
		g := Game{SteamAppId: 1, Review: strPtr("")}
		assert.False(t, g.ApplyConsistencyRules(now))
		assert.False(t, g.Completed)
	})

	t.Run("dropped cleared after rating completes the game", func(t *testing.T) {
		g := Game{SteamAppId: 1, Rating: floatPtr(4.5), Dropped: true}
		changed := g.ApplyConsistencyRules(now)
		assert.True(t, changed)
		assert.True(t, g.Completed)
		assert.False(t, g.Dropped)
	})

	t.Run("future release year wins over rating", func(t *testing.T) {
		// Rule 2 is an else-branch of rule 1: once the future year clears
		// completion, the rating must not re-complete the game in the same pass.
		g := Game{
			SteamAppId:  1,
			ReleaseYear: intPtr(now.Year() + 1),
			Completed:   true,
			CompletedOn: timePtr(now),
			Rating:      floatPtr(3),
		}
		changed := g.ApplyConsistencyRules(now)
		assert.True(t, changed)
		assert.False(t, g.Completed)
		assert.Nil(t, g.CompletedOn)
	})

	t.Run("no rules fire on a consistent game", func(t *testing.T) {
		g := Game{SteamAppId: 1, Title: "Done", Completed: true, CompletedOn: timePtr(now), Rating: floatPtr(5)}
		assert.False(t, g.ApplyConsistencyRules(now))
	})
}

func TestApplyUpdate(t *testing.T) {
	g := Game{SteamAppId: 100, Title: "Old", Dropped: true}
	src := Game{SteamAppId: 999, Title: "New", Genre: strPtr("RPG"), PlaytimeHours: floatPtr(12.5)}

	g.ApplyUpdate(&src)

	assert.Equal(t, 100, g.SteamAppId, "primary key must not change")
	assert.Equal(t, "New", g.Title)
	assert.Equal(t, "RPG", *g.Genre)
	assert.Equal(t, 12.5, *g.PlaytimeHours)
	assert.False(t, g.Dropped)
}
