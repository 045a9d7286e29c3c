package generation

import "fmt"

// Report summarises one generation run.
type Report struct {
	Seed               int64  `json:"seed"`
	TargetCaverns      int    `json:"target_caverns"`
	Caverns            int    `json:"caverns"`
	RejectedRooms      int    `json:"rejected_rooms"`
	TreeEdges          []Edge `json:"tree_edges"`
	ExtraEdges         []Edge `json:"extra_edges"`
	Repairs            int    `json:"repairs"`
	RepairTunnels      int    `json:"repair_tunnels"`
	DeadEndPasses      int    `json:"dead_end_passes"`
	DeadEndsRemoved    int    `json:"dead_ends_removed"`
	BorderTilesSealed  int    `json:"border_tiles_sealed"`
	OrphanWallsRemoved int    `json:"orphan_walls_removed"`
	FloorTiles         int    `json:"floor_tiles"`
}

// Degrees returns the tunnel degree of every cavern across tree and extra
// edges.
func (r Report) Degrees() []int {
	degrees := make([]int, r.Caverns)
	for _, edges := range [][]Edge{r.TreeEdges, r.ExtraEdges} {
		for _, e := range edges {
			degrees[e.A]++
			degrees[e.B]++
		}
	}
	return degrees
}

// String formats the report as a single log line.
func (r Report) String() string {
	return fmt.Sprintf("seed=%d caverns=%d/%d rejected=%d tree=%d extra=%d repairs=%d(%d tunnels) dead_ends=%d/%d passes sealed=%d orphans=%d floor=%d",
		r.Seed, r.Caverns, r.TargetCaverns, r.RejectedRooms, len(r.TreeEdges), len(r.ExtraEdges),
		r.Repairs, r.RepairTunnels, r.DeadEndsRemoved, r.DeadEndPasses,
		r.BorderTilesSealed, r.OrphanWallsRemoved, r.FloorTiles)
}

// Generator produces worlds for a fixed set of parameters. It holds no random
// state of its own, so one Generator may serve concurrent Generate calls.
type Generator struct {
	params Params
}

// NewGenerator validates params and returns a generator for them.
func NewGenerator(params Params) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: params}, nil
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Generate runs the full pipeline for seed. It never fails: a short cavern
// sample, rejected rooms or an all-empty grid are valid outcomes.
func (g *Generator) Generate(seed int64) *World {
	s := newSession(g.params, seed)
	s.run()
	return &World{
		seed:    seed,
		grid:    s.grid,
		caverns: s.caverns,
		report:  s.report,
	}
}

// Generate builds the world for seed with DefaultParams.
func Generate(seed int64) *World {
	return (&Generator{params: DefaultParams()}).Generate(seed)
}

// session is the state of a single generation call. It owns its grid and
// random stream outright and is discarded when the call returns.
type session struct {
	params  Params
	rng     *Random
	grid    Grid
	caverns []Cavern
	report  Report
}

func newSession(params Params, seed int64) *session {
	return &session{
		params: params,
		rng:    NewRandom(seed),
		grid:   newGrid(params.Width, params.Height),
		report: Report{Seed: seed},
	}
}

// run executes the stages in their fixed order. Reordering them changes the
// random draw sequence and therefore every world.
func (s *session) run() {
	centers := s.sampleCenters()
	s.carveCaverns(centers)
	s.connectCaverns()
	synthesizeWalls(&s.grid)
	s.ensureConnected()

	s.report.DeadEndPasses, s.report.DeadEndsRemoved = pruneDeadEnds(&s.grid)
	s.ensureConnected()

	s.report.BorderTilesSealed = sealBorder(&s.grid)
	s.report.OrphanWallsRemoved = removeOrphanWalls(&s.grid)
	s.report.FloorTiles = s.grid.Count(Floor)
}
