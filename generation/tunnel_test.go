package generation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarveTunnelIdenticalEndpointsIsNoOp(t *testing.T) {
	s := sessionWithGrid(newGrid(20, 20), 1)
	before := s.grid.Clone()
	probe := NewRandom(1)

	s.carveTunnel(Position{X: 5, Y: 5}, Position{X: 5, Y: 5})

	assert.Empty(t, cmp.Diff(before.Rows(), s.grid.Rows()))
	assert.Equal(t, probe.Uniform(1<<30), s.rng.Uniform(1<<30), "no random draws expected")
}

func TestCarveStraightAdjacentOnlyConvertsDestination(t *testing.T) {
	for _, dest := range []Position{{6, 5}, {4, 5}, {5, 6}, {5, 4}} {
		g := newGrid(12, 12)
		g.set(5, 5, Floor)
		s := sessionWithGrid(g, 1)

		s.carveTunnel(Position{X: 5, Y: 5}, dest)

		assert.Equal(t, 2, s.grid.Count(Floor), "dest %v", dest)
		assert.Equal(t, Floor, s.grid.At(dest.X, dest.Y))
	}
}

func TestCarveStraightWalksXBeforeY(t *testing.T) {
	s := sessionWithGrid(newGrid(10, 10), 1)
	s.carveStraight(Position{X: 1, Y: 1}, Position{X: 4, Y: 3})

	want := []string{
		"          ",
		" ....     ",
		"    .     ",
		"    .     ",
		"          ",
		"          ",
		"          ",
		"          ",
		"          ",
		"          ",
	}
	assert.Empty(t, cmp.Diff(want, s.grid.Rows()))
}

func TestCarveStraightConvertsWalls(t *testing.T) {
	g := gridFromRows(t,
		"#######",
		"#.###.#",
		"#######",
	)
	s := sessionWithGrid(g, 1)
	s.carveStraight(Position{X: 1, Y: 1}, Position{X: 5, Y: 1})
	assert.Equal(t, "#.....#", s.grid.Rows()[1])
}

func TestCarveTunnelConnectsEndpoints(t *testing.T) {
	s := sessionWithGrid(newGrid(80, 60), 99)
	draw := NewRandom(7)
	for i := 0; i < 300; i++ {
		s.grid = newGrid(80, 60)
		from := Position{X: draw.UniformRange(1, 79), Y: draw.UniformRange(1, 59)}
		to := Position{X: draw.UniformRange(1, 79), Y: draw.UniformRange(1, 59)}
		s.grid.set(from.X, from.Y, Floor)
		s.grid.set(to.X, to.Y, Floor)

		s.carveTunnel(from, to)

		require.True(t, IsConnected(s.grid), "tunnel %v -> %v left the endpoints apart", from, to)
		assert.LessOrEqual(t, s.grid.Count(Floor), 3*Manhattan(from, to)+1)
	}
}

func TestTunnelStaysInsideEndpointBox(t *testing.T) {
	s := sessionWithGrid(newGrid(60, 60), 3)
	from, to := Position{X: 10, Y: 40}, Position{X: 45, Y: 12}
	s.carveTunnel(from, to)

	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if s.grid.At(x, y) != Floor {
				continue
			}
			assert.True(t, x >= 10 && x <= 45 && y >= 12 && y <= 40, "floor at (%d,%d) outside box", x, y)
		}
	}
}

func TestTurnHelpers(t *testing.T) {
	s := sessionWithGrid(newGrid(20, 20), 5)

	assert.Equal(t, 3, s.turnStrictlyInside(2, 4), "span of 2 uses midpoint")
	assert.Equal(t, 3, s.turnStrictlyInside(4, 2))
	for i := 0; i < 100; i++ {
		v := s.turnStrictlyInside(2, 9)
		assert.True(t, v > 2 && v < 9)
	}

	assert.Equal(t, 5, s.turnInMiddleThird(5, 5), "empty span uses midpoint")
	for i := 0; i < 100; i++ {
		v := s.turnInMiddleThird(30, 0)
		assert.True(t, v >= 10 && v < 20, "got %d", v)
	}
}

func TestTunnelEndpointPrefersBoundary(t *testing.T) {
	g := gridFromRows(t,
		"       ",
		" ..... ",
		" ..... ",
		" ..... ",
		"       ",
	)
	s := sessionWithGrid(g, 11)
	c := Cavern{Center: Position{X: 3, Y: 2}}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 5; x++ {
			c.Tiles = append(c.Tiles, Position{X: x, Y: y})
		}
	}
	interior := map[Position]bool{{2, 2}: true, {3, 2}: true, {4, 2}: true}
	for i := 0; i < 200; i++ {
		p := s.tunnelEndpoint(&c)
		require.False(t, interior[p], "picked interior tile %v", p)
	}
}

func TestTunnelEndpointFallbacks(t *testing.T) {
	t.Run("no tiles returns center without drawing", func(t *testing.T) {
		s := sessionWithGrid(newGrid(10, 10), 4)
		probe := NewRandom(4)
		c := Cavern{Center: Position{X: 4, Y: 6}}
		assert.Equal(t, c.Center, s.tunnelEndpoint(&c))
		assert.Equal(t, probe.Uniform(1<<30), s.rng.Uniform(1<<30))
	})

	t.Run("no boundary tile picks any tile", func(t *testing.T) {
		// The cavern only lists the middle of a larger floor block, so none of
		// its tiles touch non-floor.
		g := gridFromRows(t,
			".....",
			".....",
			".....",
			".....",
			".....",
		)
		s := sessionWithGrid(g, 4)
		c := Cavern{Center: Position{X: 2, Y: 2}, Tiles: []Position{{2, 2}, {2, 1}, {1, 2}}}
		p := s.tunnelEndpoint(&c)
		assert.Contains(t, c.Tiles, p)
	})
}
