package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConnected(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{
			name: "no floor",
			rows: []string{"   ", "   "},
			want: true,
		},
		{
			name: "single block",
			rows: []string{"...", "..."},
			want: true,
		},
		{
			name: "diagonal contact does not connect",
			rows: []string{". ", " ."},
			want: false,
		},
		{
			name: "wall splits two rooms",
			rows: []string{"..#..", "..#.."},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConnected(gridFromRows(t, tt.rows...)))
		})
	}
}

func TestComponentGroupsFollowDiscoveryOrder(t *testing.T) {
	g := gridFromRows(t,
		"   ..",
		".    ",
		".  . ",
	)
	tiles, ds := floorComponents(&g)
	groups := componentGroups(tiles, ds)

	require.Len(t, groups, 3)
	assert.Equal(t, []Position{{3, 0}, {4, 0}}, groups[0])
	assert.Equal(t, []Position{{0, 1}, {0, 2}}, groups[1])
	assert.Equal(t, []Position{{3, 2}}, groups[2])
	assert.Equal(t, 3, FloorComponents(g))
}

func TestRepairConnectivityJoinsAllComponents(t *testing.T) {
	g := gridFromRows(t,
		"                    ",
		" ...       ...      ",
		" ...       ...      ",
		"                    ",
		"                    ",
		"        .        .. ",
		"                 .. ",
		"                    ",
	)
	s := sessionWithGrid(g, 21)
	require.False(t, IsConnected(s.grid))

	tunnels := s.repairConnectivity()

	assert.Equal(t, 3, tunnels)
	assert.True(t, IsConnected(s.grid))
}

func TestEnsureConnectedLeavesConnectedGridAlone(t *testing.T) {
	g := gridFromRows(t,
		"     ",
		" ... ",
		"     ",
	)
	s := sessionWithGrid(g, 1)
	probe := NewRandom(1)

	s.ensureConnected()

	assert.Zero(t, s.report.Repairs)
	assert.Equal(t, probe.Uniform(1<<30), s.rng.Uniform(1<<30))
}
