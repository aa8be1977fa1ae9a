package models

import "time"

// Game represents a single entry in the backlog. The Steam app id is supplied
// by the caller and doubles as the primary key; there is no surrogate id.
type Game struct {
	SteamAppId    int        `json:"steamAppId" gorm:"primaryKey;autoIncrement:false" binding:"required"`
	Title         string     `json:"title" gorm:"size:255"`
	Genre         *string    `json:"genre,omitempty"`
	Developer     *string    `json:"developer,omitempty"`
	ReleaseYear   *int       `json:"releaseYear,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedOn   *time.Time `json:"completedOn,omitempty"`
	Dropped       bool       `json:"dropped"`
	PlaytimeHours *float64   `json:"playtimeHours,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	Review        *string    `json:"review,omitempty"`
	ValidatedOn   *time.Time `json:"validatedOn,omitempty"`
}

// Normalize enforces Completed ⇔ CompletedOn. The store calls it on every
// write path before persisting, so no handler can bypass it.
func (g *Game) Normalize(now time.Time) {
	if g.Completed {
		if g.CompletedOn == nil {
			t := now.UTC()
			g.CompletedOn = &t
		}
	} else {
		g.CompletedOn = nil
	}
}

// ApplyConsistencyRules runs the bulk-validation rules against the game and
// reports whether any of them changed a field. ValidatedOn is stamped by the
// validator itself and does not count as a change here.
//
// Rule order matters: a future release year clears Completed before the
// rating/review rule can re-set it, and the Dropped rule sees the final
// Completed value.
func (g *Game) ApplyConsistencyRules(now time.Time) bool {
	changed := false

	unreleased := g.ReleaseYear != nil && *g.ReleaseYear > now.Year() && g.Completed
	if unreleased {
		g.Completed = false
		g.CompletedOn = nil
		changed = true
	} else {
		hasRating := g.Rating != nil && *g.Rating > 0
		hasReview := g.Review != nil && *g.Review != ""
		if (hasRating || hasReview) && !g.Completed {
			g.Completed = true
			changed = true
		}
	}

	if g.Dropped && g.Completed {
		g.Dropped = false
		changed = true
	}

	return changed
}

// ApplyUpdate replaces every mutable field from src. The primary key is
// immutable and intentionally not copied.
func (g *Game) ApplyUpdate(src *Game) {
	g.Title = src.Title
	g.Genre = src.Genre
	g.Developer = src.Developer
	g.ReleaseYear = src.ReleaseYear
	g.Completed = src.Completed
	g.CompletedOn = src.CompletedOn
	g.Dropped = src.Dropped
	g.PlaytimeHours = src.PlaytimeHours
	g.Rating = src.Rating
	g.Review = src.Review
}
