package generation

// World is a finished, read-only generation result. Nothing mutates it after
// Generate returns, so it can be shared between readers freely.
type World struct {
	seed    int64
	grid    Grid
	caverns []Cavern
	report  Report
}

// Seed returns the seed the world was generated from.
func (w *World) Seed() int64 {
	return w.seed
}

// Dimensions returns the grid width and height.
func (w *World) Dimensions() (int, int) {
	return w.grid.Dimensions()
}

// Classify returns the tile class at (x, y), or Empty when out of bounds.
func (w *World) Classify(x, y int) TileClass {
	return w.grid.At(x, y)
}

// CanOccupy reports whether (x, y) is in bounds and Floor.
func (w *World) CanOccupy(x, y int) bool {
	return w.grid.InBounds(x, y) && w.grid.At(x, y) == Floor
}

// DefaultSpawn returns the Floor position with the smallest y, then x. With no
// floor at all it returns the grid center.
func (w *World) DefaultSpawn() Position {
	width, height := w.grid.Dimensions()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if w.grid.At(x, y) == Floor {
				return Position{X: x, Y: y}
			}
		}
	}
	return Position{X: width / 2, Y: height / 2}
}

// Snapshot returns a copy of the grid.
func (w *World) Snapshot() Grid {
	return w.grid.Clone()
}

// Hash returns the content hash of the grid.
func (w *World) Hash() string {
	return w.grid.Hash()
}

// Report returns the generation report.
func (w *World) Report() Report {
	return w.report
}

// Caverns returns a copy of the carved caverns in sampling order.
func (w *World) Caverns() []Cavern {
	out := make([]Cavern, len(w.caverns))
	for i, c := range w.caverns {
		tiles := make([]Position, len(c.Tiles))
		copy(tiles, c.Tiles)
		out[i] = Cavern{Center: c.Center, Tiles: tiles}
	}
	return out
}
