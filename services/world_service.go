package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"cavern-realm/server/config"
	"cavern-realm/server/generation"
	"cavern-realm/server/messages"
	"cavern-realm/server/models"
	"cavern-realm/server/monitoring"
	"cavern-realm/server/persistence"
)

var (
	// ErrNoSession is returned for players without an active world.
	ErrNoSession = errors.New("no active world")
	// ErrBlocked is returned when the destination tile cannot be occupied.
	ErrBlocked = errors.New("cannot walk there")
	// ErrInvalidDirection is returned for anything but the four compass points.
	ErrInvalidDirection = errors.New("invalid direction")
)

// session is one player's game: the shared world they are in, where their
// avatar stands and where their camera points.
type session struct {
	world  *generation.World
	avatar generation.Position
	camera camera
}

// WorldService manages per-player sessions on top of the world cache.
type WorldService struct {
	worlds   *WorldCache
	db       persistence.Storage
	viewport config.ViewportConfig
	sessions map[string]*session
	seeds    func() int64
	mutex    sync.RWMutex
}

// NewWorldService creates a new world service
func NewWorldService(worlds *WorldCache, db persistence.Storage, viewport config.ViewportConfig) *WorldService {
	source := rand.New(rand.NewSource(time.Now().UnixNano()))
	var seedMu sync.Mutex
	return &WorldService{
		worlds:   worlds,
		db:       db,
		viewport: viewport,
		sessions: make(map[string]*session),
		seeds: func() int64 {
			seedMu.Lock()
			defer seedMu.Unlock()
			return source.Int63()
		},
	}
}

// StartWorld puts the player into the world for seed at its default spawn.
func (ws *WorldService) StartWorld(playerID string, seed int64) *messages.UpdateMessage {
	world := ws.worlds.Get(seed)
	return ws.enter(playerID, world, world.DefaultSpawn())
}

// NewWorld starts the player in a world from a freshly drawn seed.
func (ws *WorldService) NewWorld(playerID string) *messages.UpdateMessage {
	return ws.StartWorld(playerID, ws.seeds())
}

// Resume restores the player's saved game. Without a save the player gets a
// fresh world. A saved position that is no longer walkable falls back to the
// default spawn.
func (ws *WorldService) Resume(playerID string) (*messages.UpdateMessage, error) {
	state, err := ws.db.LoadGame(playerID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) || errors.Is(err, persistence.ErrNoSavedState) {
			monitoring.Logf("No saved game for %s, starting a new world", playerID)
			return ws.NewWorld(playerID), nil
		}
		return nil, fmt.Errorf("failed to load saved game: %w", err)
	}

	world := ws.worlds.Get(state.Seed)
	spawn := state.Position()
	if !world.CanOccupy(spawn.X, spawn.Y) {
		monitoring.Logf("Saved position %v for %s is not walkable, using default spawn", spawn, playerID)
		spawn = world.DefaultSpawn()
	}
	return ws.enter(playerID, world, spawn), nil
}

func (ws *WorldService) enter(playerID string, world *generation.World, spawn generation.Position) *messages.UpdateMessage {
	w, h := world.Dimensions()
	s := &session{
		world:  world,
		avatar: spawn,
		camera: centerCamera(spawn, w, h, ws.viewport),
	}

	ws.mutex.Lock()
	ws.sessions[playerID] = s
	update := ws.updateLocked(s)
	ws.mutex.Unlock()

	return update
}

// RemovePlayer ends the player's session
func (ws *WorldService) RemovePlayer(playerID string) {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	delete(ws.sessions, playerID)
}

// MovePlayer moves the avatar one tile. The avatar only ever stands on floor.
func (ws *WorldService) MovePlayer(playerID string, direction string) (*messages.UpdateMessage, error) {
	var delta generation.Position
	switch direction {
	case "north":
		delta.Y = -1
	case "south":
		delta.Y = 1
	case "east":
		delta.X = 1
	case "west":
		delta.X = -1
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	s, exists := ws.sessions[playerID]
	if !exists {
		return nil, ErrNoSession
	}

	next := s.avatar.Add(delta)
	if !s.world.CanOccupy(next.X, next.Y) {
		return nil, fmt.Errorf("%w: %s at (%d,%d)", ErrBlocked, s.world.Classify(next.X, next.Y), next.X, next.Y)
	}

	s.avatar = next
	w, h := s.world.Dimensions()
	s.camera = s.camera.follow(next, w, h, ws.viewport)
	return ws.updateLocked(s), nil
}

// Describe names what is at (x, y) in the player's world.
func (ws *WorldService) Describe(playerID string, x, y int) (*messages.DescriptionMessage, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	s, exists := ws.sessions[playerID]
	if !exists {
		return nil, ErrNoSession
	}

	tile := s.world.Classify(x, y).String()
	if s.avatar.X == x && s.avatar.Y == y {
		tile = "you"
	}
	return &messages.DescriptionMessage{X: x, Y: y, Tile: tile}, nil
}

// SaveGame persists the seed and avatar position of the player's session.
func (ws *WorldService) SaveGame(playerID string) (*models.SaveState, error) {
	ws.mutex.RLock()
	s, exists := ws.sessions[playerID]
	var state models.SaveState
	if exists {
		state = models.SaveState{Seed: s.world.Seed(), X: s.avatar.X, Y: s.avatar.Y}
	}
	ws.mutex.RUnlock()

	if !exists {
		return nil, ErrNoSession
	}
	if err := ws.db.SaveGame(playerID, state); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	return &state, nil
}

// GetWorldUpdateForPlayer returns the player's current view.
func (ws *WorldService) GetWorldUpdateForPlayer(playerID string) (*messages.UpdateMessage, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	s, exists := ws.sessions[playerID]
	if !exists {
		return nil, ErrNoSession
	}
	return ws.updateLocked(s), nil
}

func (ws *WorldService) updateLocked(s *session) *messages.UpdateMessage {
	return &messages.UpdateMessage{
		Seed:     s.world.Seed(),
		Avatar:   s.avatar,
		Viewport: s.camera.render(s.world, s.avatar, ws.viewport),
	}
}
