package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cavern-realm/server/models"
	"cavern-realm/server/persistence"
)

// ErrInvalidUsername is returned for blank usernames.
var ErrInvalidUsername = errors.New("username must not be empty")

// PlayerService manages player identities
type PlayerService struct {
	players map[string]*models.Player
	db      persistence.Storage
	mutex   sync.RWMutex
}

// NewPlayerService creates a new player service
func NewPlayerService(db persistence.Storage) *PlayerService {
	return &PlayerService{
		players: make(map[string]*models.Player),
		db:      db,
	}
}

// GetOrCreatePlayer gets an existing player or creates a new one
func (ps *PlayerService) GetOrCreatePlayer(username string) (*models.Player, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	ps.mutex.Lock()
	defer ps.mutex.Unlock()

	for _, player := range ps.players {
		if player.Username == username {
			return player, nil
		}
	}

	player, err := ps.db.LoadPlayerByUsername(username)
	if err != nil {
		if !errors.Is(err, persistence.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up player: %w", err)
		}
		now := time.Now().UTC()
		player = &models.Player{
			ID:        uuid.NewString(),
			Username:  username,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := ps.db.SavePlayer(player); err != nil {
			return nil, fmt.Errorf("failed to save new player to database: %w", err)
		}
	}

	ps.players[player.ID] = player
	return player, nil
}

// GetPlayer retrieves a player by ID
func (ps *PlayerService) GetPlayer(playerID string) (*models.Player, error) {
	ps.mutex.RLock()
	defer ps.mutex.RUnlock()

	player, exists := ps.players[playerID]
	if !exists {
		return nil, fmt.Errorf("player %s: %w", playerID, persistence.ErrNotFound)
	}
	return player, nil
}

// Touch records activity for a player and persists it.
func (ps *PlayerService) Touch(playerID string) error {
	ps.mutex.Lock()
	defer ps.mutex.Unlock()

	player, exists := ps.players[playerID]
	if !exists {
		return fmt.Errorf("player %s: %w", playerID, persistence.ErrNotFound)
	}

	player.UpdatedAt = time.Now().UTC()
	if err := ps.db.SavePlayer(player); err != nil {
		return fmt.Errorf("failed to save updated player to database: %w", err)
	}
	return nil
}
