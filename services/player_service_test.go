package services

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavern-realm/server/persistence"
)

func TestGetOrCreatePlayer(t *testing.T) {
	store, err := persistence.NewJSONStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	ps := NewPlayerService(store)

	player, err := ps.GetOrCreatePlayer("  delver ")
	require.NoError(t, err)
	assert.Equal(t, "delver", player.Username)
	_, err = uuid.Parse(player.ID)
	assert.NoError(t, err)

	again, err := ps.GetOrCreatePlayer("delver")
	require.NoError(t, err)
	assert.Equal(t, player.ID, again.ID)

	// a fresh service finds the stored identity
	other := NewPlayerService(store)
	reloaded, err := other.GetOrCreatePlayer("delver")
	require.NoError(t, err)
	assert.Equal(t, player.ID, reloaded.ID)

	got, err := other.GetPlayer(player.ID)
	require.NoError(t, err)
	assert.Equal(t, "delver", got.Username)
}

func TestGetOrCreatePlayerRejectsBlankName(t *testing.T) {
	store, err := persistence.NewJSONStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	_, err = NewPlayerService(store).GetOrCreatePlayer("   ")
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestTouch(t *testing.T) {
	store, err := persistence.NewJSONStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	ps := NewPlayerService(store)

	assert.ErrorIs(t, ps.Touch("missing"), persistence.ErrNotFound)

	player, err := ps.GetOrCreatePlayer("delver")
	require.NoError(t, err)
	before := player.UpdatedAt
	require.NoError(t, ps.Touch(player.ID))

	stored, err := store.LoadPlayer(player.ID)
	require.NoError(t, err)
	assert.False(t, stored.UpdatedAt.Before(before))
}
