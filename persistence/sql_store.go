package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cavern-realm/server/models"
)

// sqlDialect holds the statements that differ between database engines.
type sqlDialect struct {
	schema        string
	upsertPlayer  string
	playerByID    string
	playerByName  string
	upsertSave    string
	saveForPlayer string
}

// sqlStore implements Storage over database/sql. Timestamps are stored as
// unix nanoseconds so every driver scans them the same way.
type sqlStore struct {
	db      *sql.DB
	dialect sqlDialect
}

func openSQLStore(driver, dsn string, dialect sqlDialect) (*sqlStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(dialect.schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &sqlStore{db: db, dialect: dialect}, nil
}

// SavePlayer inserts or updates a player
func (s *sqlStore) SavePlayer(player *models.Player) error {
	_, err := s.db.Exec(s.dialect.upsertPlayer,
		player.ID, player.Username,
		player.CreatedAt.UnixNano(), player.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// LoadPlayer loads a player by ID
func (s *sqlStore) LoadPlayer(playerID string) (*models.Player, error) {
	return s.scanPlayer(s.db.QueryRow(s.dialect.playerByID, playerID), playerID)
}

// LoadPlayerByUsername loads a player by username
func (s *sqlStore) LoadPlayerByUsername(username string) (*models.Player, error) {
	return s.scanPlayer(s.db.QueryRow(s.dialect.playerByName, username), username)
}

func (s *sqlStore) scanPlayer(row *sql.Row, key string) (*models.Player, error) {
	var player models.Player
	var created, updated int64
	err := row.Scan(&player.ID, &player.Username, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	player.CreatedAt = time.Unix(0, created).UTC()
	player.UpdatedAt = time.Unix(0, updated).UTC()
	return &player, nil
}

// SaveGame records the resume point for a player
func (s *sqlStore) SaveGame(playerID string, state models.SaveState) error {
	_, err := s.db.Exec(s.dialect.upsertSave,
		playerID, state.Seed, state.X, state.Y, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// LoadGame returns the resume point for a player
func (s *sqlStore) LoadGame(playerID string) (*models.SaveState, error) {
	var state models.SaveState
	err := s.db.QueryRow(s.dialect.saveForPlayer, playerID).Scan(&state.Seed, &state.X, &state.Y)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("save for player %s: %w", playerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return &state, nil
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}
