package persistence

import (
	"errors"

	"cavern-realm/server/models"
)

// ErrNotFound is returned when a player or save does not exist.
var ErrNotFound = errors.New("not found")

// Storage defines the interface for data persistence
type Storage interface {
	SavePlayer(player *models.Player) error
	LoadPlayer(playerID string) (*models.Player, error)
	LoadPlayerByUsername(username string) (*models.Player, error)
	SaveGame(playerID string, state models.SaveState) error
	LoadGame(playerID string) (*models.SaveState, error)
	Close() error
}
