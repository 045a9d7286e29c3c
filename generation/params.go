package generation

import "errors"

// Room footprints, tunnel shape thresholds and topology limits. These are
// fixed by the generator; only the values in Params are configurable.
const (
	rectMinWidth     = 5
	rectMaxWidth     = 12
	rectMinHeight    = 5
	rectMaxHeight    = 10
	compactMinWidth  = 5
	compactMaxWidth  = 9
	compactMinHeight = 5
	compactMaxHeight = 7

	// centers keep this many tiles away from every edge
	sampleMargin = 2

	// tunnels up to this Manhattan length get one turn, longer ones two
	singleTurnMaxDistance = 8

	maxCavernDegree = 2
)

// Params are the generation-time constants of a world. Two worlds generated
// from the same Params and seed are identical.
type Params struct {
	Width                int     `yaml:"width"`
	Height               int     `yaml:"height"`
	MinCaverns           int     `yaml:"minCaverns"`
	MaxCaverns           int     `yaml:"maxCaverns"`
	MinCavernDistance    int     `yaml:"minCavernDistance"`
	MaxPlacementAttempts int     `yaml:"maxPlacementAttempts"`
	RectangularRoomProb  float64 `yaml:"rectangularRoomProb"`
	ExtraTunnelProb      float64 `yaml:"extraTunnelProb"`
}

// DefaultParams returns the canonical configuration: a 200x120 grid holding
// 30 to 45 caverns at least 8 tiles apart.
func DefaultParams() Params {
	return Params{
		Width:                200,
		Height:               120,
		MinCaverns:           30,
		MaxCaverns:           45,
		MinCavernDistance:    8,
		MaxPlacementAttempts: 5000,
		RectangularRoomProb:  0.7,
		ExtraTunnelProb:      0.15,
	}
}

// Validate checks that the parameters describe a grid the carvers can work in.
func (p Params) Validate() error {
	if p.Width < rectMaxWidth+2 || p.Height < rectMaxHeight+2 {
		return errors.New("generation: grid must be at least 14x12")
	}
	if p.MinCaverns < 0 || p.MaxCaverns < p.MinCaverns {
		return errors.New("generation: cavern count range is invalid")
	}
	if p.MinCavernDistance < 1 {
		return errors.New("generation: minCavernDistance must be positive")
	}
	if p.MaxPlacementAttempts < 0 {
		return errors.New("generation: maxPlacementAttempts cannot be negative")
	}
	if p.RectangularRoomProb < 0 || p.RectangularRoomProb > 1 {
		return errors.New("generation: rectangularRoomProb must be within [0, 1]")
	}
	if p.ExtraTunnelProb < 0 || p.ExtraTunnelProb > 1 {
		return errors.New("generation: extraTunnelProb must be within [0, 1]")
	}
	return nil
}
