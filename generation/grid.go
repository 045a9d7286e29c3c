package generation

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Grid is a fixed-size rectangular buffer of tile classes stored in row-major
// order. Only this package can mutate a Grid; every other package sees the
// read-only accessors below.
type Grid struct {
	width  int
	height int
	cells  []TileClass
}

func newGrid(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make([]TileClass, width*height),
	}
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Dimensions returns the grid width and height.
func (g Grid) Dimensions() (int, int) { return g.width, g.height }

// InBounds reports whether (x, y) lies on the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile class at (x, y). Out-of-bounds cells read as Empty.
func (g Grid) At(x, y int) TileClass {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

func (g Grid) isFloor(x, y int) bool {
	return g.At(x, y) == Floor
}

func (g *Grid) set(x, y int, t TileClass) {
	g.cells[y*g.width+x] = t
}

// Count returns how many cells hold the given class.
func (g Grid) Count(t TileClass) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]TileClass, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Hash returns a hex SHA-256 digest of the dimensions and cell contents.
func (g Grid) Hash() string {
	h := sha256.New()
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(g.width))
	binary.BigEndian.PutUint32(dims[4:8], uint32(g.height))
	h.Write(dims[:])
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil))
}

// Rows renders the grid as one string per row, top row first.
func (g Grid) Rows() []string {
	rows := make([]string, g.height)
	line := make([]byte, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			line[x] = g.cells[y*g.width+x].Glyph()
		}
		rows[y] = string(line)
	}
	return rows
}

// String renders the grid as newline separated rows.
func (g Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

func (g Grid) floorNeighbors4(x, y int) int {
	n := 0
	for _, d := range orthogonal {
		if g.isFloor(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

func (g Grid) floorNeighbors8(x, y int) int {
	n := 0
	for _, d := range surrounding {
		if g.isFloor(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}
