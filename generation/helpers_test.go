package generation

import "testing"

// gridFromRows builds a grid from ASCII rows: '.' floor, '#' wall, anything
// else empty. Row i becomes y = i.
func gridFromRows(t *testing.T, rows ...string) Grid {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("gridFromRows: no rows")
	}
	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			t.Fatalf("gridFromRows: row %d has width %d, want %d", y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '.':
				g.set(x, y, Floor)
			case '#':
				g.set(x, y, Wall)
			}
		}
	}
	return g
}

// sessionWithGrid returns a session whose grid is g, seeded with seed.
func sessionWithGrid(g Grid, seed int64) *session {
	params := DefaultParams()
	params.Width, params.Height = g.Dimensions()
	s := newSession(params, seed)
	s.grid = g
	return s
}
