package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"cavern-realm/server/generation"
)

// Storage backends accepted in storage.type and DB_TYPE.
const (
	StorageJSON     = "json"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Config holds everything the server and CLI need at startup.
type Config struct {
	Server     ServerConfig      `yaml:"server"`
	Storage    StorageConfig     `yaml:"storage"`
	Generation generation.Params `yaml:"generation"`
	Viewport   ViewportConfig    `yaml:"viewport"`
	Cache      CacheConfig       `yaml:"cache"`
}

type ServerConfig struct {
	Port            string `yaml:"port"`
	ReadBufferSize  int    `yaml:"readBufferSize"`
	WriteBufferSize int    `yaml:"writeBufferSize"`
	SendQueue       int    `yaml:"sendQueue"` // buffered outgoing messages per connection
}

type StorageConfig struct {
	Type        string `yaml:"type"`
	File        string `yaml:"file"`
	DatabaseURL string `yaml:"databaseUrl"`
	SQLitePath  string `yaml:"sqlitePath"`
}

// ViewportConfig sizes the window of the world sent to a client. The camera
// scrolls once the avatar comes within ScrollThreshold tiles of an edge.
type ViewportConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	ScrollThreshold int `yaml:"scrollThreshold"`
}

type CacheConfig struct {
	Capacity int `yaml:"capacity"` // generated worlds kept in memory
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			SendQueue:       256,
		},
		Storage: StorageConfig{
			Type:        StorageJSON,
			File:        "db.json",
			DatabaseURL: "host=localhost user=cavern password=cavern dbname=cavern_realm sslmode=disable",
			SQLitePath:  "cavern.db",
		},
		Generation: generation.DefaultParams(),
		Viewport: ViewportConfig{
			Width:           60,
			Height:          40,
			ScrollThreshold: 8,
		},
		Cache: CacheConfig{Capacity: 16},
	}
}

// Load reads a YAML file over the defaults, applies environment overrides and
// validates the result. Fields absent from the file keep their default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from the environment variables the server has
// always honoured: PORT, DB_TYPE, DB_FILE, DATABASE_URL and SQLITE_PATH.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("DB_TYPE"); v != "" {
		c.Storage.Type = v
	}
	if v := getenv("DB_FILE"); v != "" {
		c.Storage.File = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		c.Storage.DatabaseURL = v
	}
	if v := getenv("SQLITE_PATH"); v != "" {
		c.Storage.SQLitePath = v
	}
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port must be set")
	}
	if _, err := strconv.ParseUint(c.Server.Port, 10, 16); err != nil {
		return fmt.Errorf("server.port invalid: %w", err)
	}
	if c.Server.ReadBufferSize <= 0 || c.Server.WriteBufferSize <= 0 {
		return errors.New("server buffer sizes must be positive")
	}
	if c.Server.SendQueue <= 0 {
		return errors.New("server.sendQueue must be positive")
	}

	switch c.Storage.Type {
	case StorageJSON:
		if c.Storage.File == "" {
			return errors.New("storage.file must be set for the json store")
		}
	case StoragePostgres:
		if c.Storage.DatabaseURL == "" {
			return errors.New("storage.databaseUrl must be set for the postgres store")
		}
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlitePath must be set for the sqlite store")
		}
	default:
		return fmt.Errorf("storage.type %q is not one of json, postgres, sqlite", c.Storage.Type)
	}

	if err := c.Generation.Validate(); err != nil {
		return err
	}

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errors.New("viewport dimensions must be positive")
	}
	if c.Viewport.Width > c.Generation.Width || c.Viewport.Height > c.Generation.Height {
		return fmt.Errorf("viewport %dx%d exceeds the %dx%d world",
			c.Viewport.Width, c.Viewport.Height, c.Generation.Width, c.Generation.Height)
	}
	if c.Viewport.ScrollThreshold < 0 || 2*c.Viewport.ScrollThreshold >= min(c.Viewport.Width, c.Viewport.Height) {
		return errors.New("viewport.scrollThreshold must leave room between the edges")
	}
	if c.Cache.Capacity <= 0 {
		return errors.New("cache.capacity must be positive")
	}
	return nil
}
