package generation

// tunnelEndpoint picks where a tunnel leaves a cavern: a random boundary tile,
// else any of its tiles, else its center when the room was never carved.
func (s *session) tunnelEndpoint(c *Cavern) Position {
	if len(c.Tiles) == 0 {
		return c.Center
	}
	boundary := make([]Position, 0, len(c.Tiles))
	for _, p := range c.Tiles {
		if s.onBoundary(p) {
			boundary = append(boundary, p)
		}
	}
	if len(boundary) == 0 {
		return c.Tiles[s.rng.Uniform(len(c.Tiles))]
	}
	return boundary[s.rng.Uniform(len(boundary))]
}

// onBoundary reports whether p has a 4-neighbour that is off the grid or not
// Floor.
func (s *session) onBoundary(p Position) bool {
	for _, d := range orthogonal {
		n := p.Add(d)
		if !s.grid.InBounds(n.X, n.Y) || !s.grid.isFloor(n.X, n.Y) {
			return true
		}
	}
	return false
}

// carveTunnel lays floor from start to end. Adjacent endpoints get a straight
// run, short tunnels one randomized turn and long tunnels two.
func (s *session) carveTunnel(start, end Position) {
	dx, dy := end.X-start.X, end.Y-start.Y
	if dx == 0 && dy == 0 {
		return
	}
	if abs(dx) <= 1 && abs(dy) <= 1 {
		s.carveStraight(start, end)
		return
	}
	if abs(dx)+abs(dy) <= singleTurnMaxDistance {
		s.carveOneTurn(start, end)
		return
	}
	s.carveTwoTurns(start, end)
}

func (s *session) carveOneTurn(start, end Position) {
	var turn Position
	if s.rng.Coin() {
		turn = Position{X: s.turnStrictlyInside(start.X, end.X), Y: start.Y}
	} else {
		turn = Position{X: start.X, Y: s.turnStrictlyInside(start.Y, end.Y)}
	}
	s.carveStraight(start, turn)
	s.carveStraight(turn, end)
}

func (s *session) carveTwoTurns(start, end Position) {
	var first, second Position
	if s.rng.Coin() {
		first = Position{X: s.turnInMiddleThird(start.X, end.X), Y: start.Y}
		second = Position{X: first.X, Y: s.turnStrictlyInside(first.Y, end.Y)}
	} else {
		first = Position{X: start.X, Y: s.turnInMiddleThird(start.Y, end.Y)}
		second = Position{X: s.turnStrictlyInside(first.X, end.X), Y: first.Y}
	}
	s.carveStraight(start, first)
	s.carveStraight(first, second)
	s.carveStraight(second, end)
}

// turnStrictlyInside draws a coordinate strictly between a and b when they are
// more than two apart; otherwise it returns their midpoint.
func (s *session) turnStrictlyInside(a, b int) int {
	lo, hi := min(a, b), max(a, b)
	if hi-lo > 2 {
		return s.rng.UniformRange(lo+1, hi)
	}
	return (a + b) / 2
}

// turnInMiddleThird draws a coordinate from the middle third of [a, b], or
// returns the midpoint when the span is too short to split.
func (s *session) turnInMiddleThird(a, b int) int {
	lo, hi := min(a, b), max(a, b)
	third := (hi - lo) / 3
	if hi-third > lo+third {
		return s.rng.UniformRange(lo+third, hi-third)
	}
	return (a + b) / 2
}

// carveStraight walks from start to end one tile at a time, closing the x gap
// before the y gap, and turns every visited non-floor cell into Floor.
func (s *session) carveStraight(start, end Position) {
	x, y := start.X, start.Y
	for x != end.X || y != end.Y {
		s.dig(x, y)
		switch {
		case x < end.X:
			x++
		case x > end.X:
			x--
		case y < end.Y:
			y++
		default:
			y--
		}
	}
	s.dig(end.X, end.Y)
}

func (s *session) dig(x, y int) {
	if s.grid.InBounds(x, y) && s.grid.At(x, y) != Floor {
		s.grid.set(x, y, Floor)
	}
}
