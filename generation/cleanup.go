package generation

// pruneDeadEnds converts interior Floor cells with exactly one Floor
// 4-neighbour into Wall until none are left. Each pass collects every dead end
// from counts taken before any removal and converts the whole batch at once,
// so a dead-end corridor of length n retracts over n passes.
func pruneDeadEnds(g *Grid) (passes, removed int) {
	for {
		var batch []Position
		for y := 1; y < g.height-1; y++ {
			for x := 1; x < g.width-1; x++ {
				if g.isFloor(x, y) && g.floorNeighbors4(x, y) == 1 {
					batch = append(batch, Position{X: x, Y: y})
				}
			}
		}
		if len(batch) == 0 {
			return passes, removed
		}
		for _, p := range batch {
			g.set(p.X, p.Y, Wall)
		}
		passes++
		removed += len(batch)
	}
}

// sealBorder forces Floor on the outer ring to Wall, then re-runs wall
// synthesis so cells exposed by repair tunnels get enclosed.
func sealBorder(g *Grid) int {
	sealed := 0
	seal := func(x, y int) {
		if g.isFloor(x, y) {
			g.set(x, y, Wall)
			sealed++
		}
	}
	for x := 0; x < g.width; x++ {
		seal(x, 0)
		seal(x, g.height-1)
	}
	for y := 0; y < g.height; y++ {
		seal(0, y)
		seal(g.width-1, y)
	}
	synthesizeWalls(g)
	return sealed
}

// removeOrphanWalls clears walls that separate nothing: those fully enclosed
// by floor (8 of 8 neighbours) and those with no floor neighbour at all. It
// repeats until a pass finds no orphan and returns the total removed.
func removeOrphanWalls(g *Grid) int {
	removed := 0
	for {
		var batch []Position
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if g.At(x, y) != Wall {
					continue
				}
				if n := g.floorNeighbors8(x, y); n == 0 || n == len(surrounding) {
					batch = append(batch, Position{X: x, Y: y})
				}
			}
		}
		if len(batch) == 0 {
			return removed
		}
		for _, p := range batch {
			g.set(p.X, p.Y, Empty)
		}
		removed += len(batch)
	}
}
