package persistence

import (
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

var sqliteDialect = sqlDialect{
	schema: `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS saves (
		player_id TEXT PRIMARY KEY REFERENCES players(id),
		seed INTEGER NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`,
	upsertPlayer: `
	INSERT INTO players (id, username, created_at, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (id)
	DO UPDATE SET username = excluded.username, updated_at = excluded.updated_at
	`,
	playerByID:   `SELECT id, username, created_at, updated_at FROM players WHERE id = ?`,
	playerByName: `SELECT id, username, created_at, updated_at FROM players WHERE username = ?`,
	upsertSave: `
	INSERT INTO saves (player_id, seed, x, y, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (player_id)
	DO UPDATE SET seed = excluded.seed, x = excluded.x, y = excluded.y, updated_at = excluded.updated_at
	`,
	saveForPlayer: `SELECT seed, x, y FROM saves WHERE player_id = ?`,
}

// SQLiteStore keeps players and saves in a local SQLite database file.
type SQLiteStore struct {
	*sqlStore
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	store, err := openSQLStore("sqlite", path, sqliteDialect)
	if err != nil {
		return nil, err
	}
	// one writer at a time; SQLite serialises writes anyway
	store.db.SetMaxOpenConns(1)
	return &SQLiteStore{sqlStore: store}, nil
}
