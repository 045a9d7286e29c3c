package generation

// Position is a grid coordinate. x grows to the east, y grows to the south.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

var (
	orthogonal  = [4]Position{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	surrounding = [8]Position{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
