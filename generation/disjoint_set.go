package generation

// DisjointSet tracks set membership over the integers [0, n) using union by
// size and path compression. Find is iterative so long parent chains on large
// grids never grow the call stack.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// NewDisjointSet creates n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Find returns the root of the set containing i.
func (ds *DisjointSet) Find(i int) int {
	root := i
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[i] != root {
		next := ds.parent[i]
		ds.parent[i] = root
		i = next
	}
	return root
}

// Union merges the sets containing a and b. It reports false when they were
// already joined.
func (ds *DisjointSet) Union(a, b int) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
	ds.count--
	return true
}

// Connected reports whether a and b are in the same set.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// SizeOf returns the number of members in the set containing i.
func (ds *DisjointSet) SizeOf(i int) int {
	return ds.size[ds.Find(i)]
}
