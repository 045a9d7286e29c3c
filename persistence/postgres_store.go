package persistence

import (
	"cavern-realm/server/monitoring"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var postgresDialect = sqlDialect{
	schema: `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS saves (
		player_id TEXT PRIMARY KEY REFERENCES players(id),
		seed BIGINT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		updated_at BIGINT NOT NULL
	);
	`,
	upsertPlayer: `
	INSERT INTO players (id, username, created_at, updated_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id)
	DO UPDATE SET username = $2, updated_at = $4
	`,
	playerByID:   `SELECT id, username, created_at, updated_at FROM players WHERE id = $1`,
	playerByName: `SELECT id, username, created_at, updated_at FROM players WHERE username = $1`,
	upsertSave: `
	INSERT INTO saves (player_id, seed, x, y, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (player_id)
	DO UPDATE SET seed = $2, x = $3, y = $4, updated_at = $5
	`,
	saveForPlayer: `SELECT seed, x, y FROM saves WHERE player_id = $1`,
}

// PostgresStore handles database operations using PostgreSQL
type PostgresStore struct {
	*sqlStore
}

// NewPostgresStore connects to PostgreSQL and creates the schema if missing.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	store, err := openSQLStore("postgres", connectionString, postgresDialect)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{sqlStore: store}, nil
}

// Close closes the database connection
func (dm *PostgresStore) Close() error {
	monitoring.Logf("Closing database connection...")
	return dm.sqlStore.Close()
}
