package generation

// floorComponents indexes every Floor cell in row-major order and unions each
// one with its Floor 4-neighbours. The returned disjoint set is sized to the
// floor count and addressed by those indices.
func floorComponents(g *Grid) ([]Position, *DisjointSet) {
	index := make([]int, len(g.cells))
	tiles := make([]Position, 0)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			if g.cells[i] != Floor {
				index[i] = -1
				continue
			}
			index[i] = len(tiles)
			tiles = append(tiles, Position{X: x, Y: y})
		}
	}

	ds := NewDisjointSet(len(tiles))
	for i, p := range tiles {
		for _, d := range orthogonal {
			n := p.Add(d)
			if !g.InBounds(n.X, n.Y) {
				continue
			}
			if j := index[n.Y*g.width+n.X]; j >= 0 {
				ds.Union(i, j)
			}
		}
	}
	return tiles, ds
}

// componentGroups buckets floor tiles by disjoint-set root. Groups are ordered
// by the first tile index at which each root is seen.
func componentGroups(tiles []Position, ds *DisjointSet) [][]Position {
	byRoot := make(map[int]int)
	var groups [][]Position
	for i, p := range tiles {
		root := ds.Find(i)
		gi, ok := byRoot[root]
		if !ok {
			gi = len(groups)
			byRoot[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], p)
	}
	return groups
}

// FloorComponents returns the number of 4-connected Floor components in g.
func FloorComponents(g Grid) int {
	_, ds := floorComponents(&g)
	return ds.Count()
}

// IsConnected reports whether all Floor cells of g form a single 4-connected
// component. A grid without floor is trivially connected.
func IsConnected(g Grid) bool {
	tiles, ds := floorComponents(&g)
	return len(tiles) == 0 || ds.Count() == 1
}

// repairConnectivity chains the floor components together: component i is
// tunnelled to component i+1 between one random tile of each. Connectivity is
// not re-checked between tunnels. It returns the number of tunnels carved.
func (s *session) repairConnectivity() int {
	tiles, ds := floorComponents(&s.grid)
	groups := componentGroups(tiles, ds)
	for i := 0; i+1 < len(groups); i++ {
		from := groups[i][s.rng.Uniform(len(groups[i]))]
		to := groups[i+1][s.rng.Uniform(len(groups[i+1]))]
		s.carveTunnel(from, to)
	}
	return max(0, len(groups)-1)
}

// ensureConnected validates the floor graph and repairs it when split.
func (s *session) ensureConnected() {
	if IsConnected(s.grid) {
		return
	}
	s.report.RepairTunnels += s.repairConnectivity()
	s.report.Repairs++
}
