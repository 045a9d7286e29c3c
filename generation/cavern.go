package generation

// Cavern is a carved room: the sampled center plus the floor tiles the room
// carver converted for it, in carving order. A rejected rectangular room keeps
// its center and owns no tiles.
type Cavern struct {
	Center Position   `json:"center"`
	Tiles  []Position `json:"tiles"`
}

// carveCaverns turns each center into a room. The shape is a weighted coin
// flip between a rectangular room, which is dropped entirely if it would
// overlap existing floor, and a compact room, which only claims Empty cells
// and so can merge into its neighbours.
func (s *session) carveCaverns(centers []Position) {
	s.caverns = make([]Cavern, 0, len(centers))
	for _, center := range centers {
		cavern := Cavern{Center: center}
		if s.rng.Bernoulli(s.params.RectangularRoomProb) {
			if !s.carveRectangularRoom(&cavern) {
				s.report.RejectedRooms++
			}
		} else {
			s.carveCompactRoom(&cavern)
		}
		s.caverns = append(s.caverns, cavern)
	}
	s.report.Caverns = len(s.caverns)
}

func (s *session) carveRectangularRoom(c *Cavern) bool {
	w := s.rng.UniformRange(rectMinWidth, rectMaxWidth+1)
	h := s.rng.UniformRange(rectMinHeight, rectMaxHeight+1)
	x0, y0 := s.anchor(c.Center, w, h)

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if s.grid.isFloor(x, y) {
				return false
			}
		}
	}
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if s.interior(x, y) {
				s.grid.set(x, y, Floor)
				c.Tiles = append(c.Tiles, Position{X: x, Y: y})
			}
		}
	}
	return true
}

func (s *session) carveCompactRoom(c *Cavern) {
	w := s.rng.UniformRange(compactMinWidth, compactMaxWidth+1)
	h := s.rng.UniformRange(compactMinHeight, compactMaxHeight+1)
	x0, y0 := s.anchor(c.Center, w, h)

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if s.interior(x, y) && s.grid.At(x, y) == Empty {
				s.grid.set(x, y, Floor)
				c.Tiles = append(c.Tiles, Position{X: x, Y: y})
			}
		}
	}
}

// anchor centers a w by h footprint on center, shifted so it stays one tile
// inside the grid border.
func (s *session) anchor(center Position, w, h int) (int, int) {
	x0 := max(1, min(center.X-w/2, s.params.Width-w-1))
	y0 := max(1, min(center.Y-h/2, s.params.Height-h-1))
	return x0, y0
}

func (s *session) interior(x, y int) bool {
	return x > 0 && x < s.params.Width-1 && y > 0 && y < s.params.Height-1
}
