package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"cavern-realm/server/models"
)

// JSONStore handles data persistence using a local JSON file
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	writeMu  sync.Mutex // orders file writes
	data     *JSONData
}

// JSONData represents the structure of the JSON database
type JSONData struct {
	Players map[string]*models.Player   `json:"players"`
	Saves   map[string]models.SaveState `json:"saves"`
}

// NewJSONStore opens the store at filePath, creating the file if needed.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data: &JSONData{
			Players: make(map[string]*models.Player),
			Saves:   make(map[string]models.SaveState),
		},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	}

	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(file, js.data); err != nil {
		return err
	}
	// files written before saves existed decode with a nil map
	if js.data.Players == nil {
		js.data.Players = make(map[string]*models.Player)
	}
	if js.data.Saves == nil {
		js.data.Saves = make(map[string]models.SaveState)
	}
	return nil
}

// saveToFile writes the whole document. Callers must not hold the mutex.
func (js *JSONStore) saveToFile() error {
	js.writeMu.Lock()
	defer js.writeMu.Unlock()

	js.mutex.RLock()
	data, err := json.MarshalIndent(js.data, "", "  ")
	js.mutex.RUnlock()
	if err != nil {
		return err
	}

	return os.WriteFile(js.filePath, data, 0644)
}

// SavePlayer saves a player to the store
func (js *JSONStore) SavePlayer(player *models.Player) error {
	js.mutex.Lock()
	stored := *player
	js.data.Players[player.ID] = &stored
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadPlayer loads a player by ID
func (js *JSONStore) LoadPlayer(playerID string) (*models.Player, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	player, exists := js.data.Players[playerID]
	if !exists {
		return nil, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}

	p := *player
	return &p, nil
}

// LoadPlayerByUsername loads a player by username
func (js *JSONStore) LoadPlayerByUsername(username string) (*models.Player, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	for _, player := range js.data.Players {
		if player.Username == username {
			p := *player
			return &p, nil
		}
	}

	return nil, fmt.Errorf("player with username %s: %w", username, ErrNotFound)
}

// SaveGame records the resume point for a player.
func (js *JSONStore) SaveGame(playerID string, state models.SaveState) error {
	js.mutex.Lock()
	js.data.Saves[playerID] = state
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadGame returns the resume point for a player.
func (js *JSONStore) LoadGame(playerID string) (*models.SaveState, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	state, exists := js.data.Saves[playerID]
	if !exists {
		return nil, fmt.Errorf("save for player %s: %w", playerID, ErrNotFound)
	}
	return &state, nil
}

// Close closes the store (no-op for JSON store)
func (js *JSONStore) Close() error {
	return nil
}
