package generation

// sampleCenters places cavern centers by rejection sampling. It stops once the
// drawn target is reached or the attempt budget runs out, whichever is first.
func (s *session) sampleCenters() []Position {
	p := s.params
	target := s.rng.UniformRange(p.MinCaverns, p.MaxCaverns+1)
	s.report.TargetCaverns = target

	minDist2 := p.MinCavernDistance * p.MinCavernDistance
	centers := make([]Position, 0, target)
	for attempts := 0; len(centers) < target && attempts < p.MaxPlacementAttempts; attempts++ {
		x := s.rng.UniformRange(sampleMargin, p.Width-sampleMargin)
		y := s.rng.UniformRange(sampleMargin, p.Height-sampleMargin)
		candidate := Position{X: x, Y: y}
		if separated(candidate, centers, minDist2) {
			centers = append(centers, candidate)
		}
	}
	return centers
}

func separated(candidate Position, centers []Position, minDist2 int) bool {
	for _, c := range centers {
		dx, dy := candidate.X-c.X, candidate.Y-c.Y
		if dx*dx+dy*dy < minDist2 {
			return false
		}
	}
	return true
}
