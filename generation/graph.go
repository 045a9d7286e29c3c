package generation

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Edge joins two caverns by index. Weight is the Manhattan distance between
// their centers.
type Edge struct {
	A      int `json:"a"`
	B      int `json:"b"`
	Weight int `json:"weight"`
}

// completeGraph returns every cavern pair sorted by ascending weight. Equal
// weights keep enumeration order.
func completeGraph(caverns []Cavern) []Edge {
	n := len(caverns)
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{
				A:      i,
				B:      j,
				Weight: Manhattan(caverns[i].Center, caverns[j].Center),
			})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
	return edges
}

// connectCaverns runs a degree-capped Kruskal over the cavern graph, carves
// the accepted edges, then offers every remaining edge an extra tunnel.
//
// The extra-tunnel trial is drawn for every non-tree edge even when the
// degree cap is certain to refuse it. Skipping those draws would shift every
// later random number for the seed.
func (s *session) connectCaverns() {
	if len(s.caverns) < 2 {
		return
	}

	edges := completeGraph(s.caverns)
	ds := NewDisjointSet(len(s.caverns))
	degree := make([]int, len(s.caverns))
	inTree := mapset.New[int]()

	var tree []Edge
	for i, e := range edges {
		if ds.Connected(e.A, e.B) {
			continue
		}
		if degree[e.A] >= maxCavernDegree || degree[e.B] >= maxCavernDegree {
			continue
		}
		ds.Union(e.A, e.B)
		degree[e.A]++
		degree[e.B]++
		inTree.Put(i)
		tree = append(tree, e)
	}

	for _, e := range tree {
		s.tunnelBetween(e)
	}
	s.report.TreeEdges = tree

	for i, e := range edges {
		if inTree.Has(i) {
			continue
		}
		if !s.rng.Bernoulli(s.params.ExtraTunnelProb) {
			continue
		}
		if degree[e.A] >= maxCavernDegree || degree[e.B] >= maxCavernDegree {
			continue
		}
		s.tunnelBetween(e)
		degree[e.A]++
		degree[e.B]++
		s.report.ExtraEdges = append(s.report.ExtraEdges, e)
	}
}

func (s *session) tunnelBetween(e Edge) {
	from := s.tunnelEndpoint(&s.caverns[e.A])
	to := s.tunnelEndpoint(&s.caverns[e.B])
	s.carveTunnel(from, to)
}
