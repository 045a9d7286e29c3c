package generation

// TileClass is the structural class of a grid cell.
type TileClass uint8

const (
	Empty TileClass = iota
	Floor
	Wall
)

// String returns the human readable description of the tile class.
func (t TileClass) String() string {
	switch t {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	default:
		return "nothing"
	}
}

// Glyph returns the single-character map symbol for the tile class.
func (t TileClass) Glyph() byte {
	switch t {
	case Floor:
		return '.'
	case Wall:
		return '#'
	default:
		return ' '
	}
}
