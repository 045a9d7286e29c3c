package models

import (
	"time"

	"cavern-realm/server/generation"
)

// Player is a known identity. Where the player stands lives in the session
// and in their SaveState, not here.
type Player struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveState is everything needed to resume a game: the world is regenerated
// from Seed, so no grid contents are ever stored.
type SaveState struct {
	Seed int64 `json:"seed"`
	X    int   `json:"x"`
	Y    int   `json:"y"`
}

// Position returns the saved avatar position.
func (s SaveState) Position() generation.Position {
	return generation.Position{X: s.X, Y: s.Y}
}
