package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cavern-realm/server/config"
	"cavern-realm/server/generation"
	"cavern-realm/server/monitoring"
	"cavern-realm/server/persistence"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

// smallParams keeps generation quick in service tests.
func smallParams() generation.Params {
	params := generation.DefaultParams()
	params.Width, params.Height = 80, 50
	params.MinCaverns, params.MaxCaverns = 8, 12
	return params
}

func smallViewport() config.ViewportConfig {
	return config.ViewportConfig{Width: 20, Height: 12, ScrollThreshold: 3}
}

func newTestWorldService(t *testing.T) (*WorldService, *persistence.JSONStore) {
	t.Helper()
	store, err := persistence.NewJSONStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	gen, err := generation.NewGenerator(smallParams())
	require.NoError(t, err)
	ws := NewWorldService(NewWorldCache(gen, 4), store, smallViewport())
	return ws, store
}
