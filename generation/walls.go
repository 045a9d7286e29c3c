package generation

// synthesizeWalls turns every Empty cell in the 8-neighbourhood of a Floor
// cell into Wall and returns how many walls it added. Floor and existing Wall
// cells are never touched, so scan order does not matter.
func synthesizeWalls(g *Grid) int {
	added := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.isFloor(x, y) {
				continue
			}
			for _, d := range surrounding {
				nx, ny := x+d.X, y+d.Y
				if g.InBounds(nx, ny) && g.At(nx, ny) == Empty {
					g.set(nx, ny, Wall)
					added++
				}
			}
		}
	}
	return added
}
