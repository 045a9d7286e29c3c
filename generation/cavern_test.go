package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCentersRespectsSpacingAndMargin(t *testing.T) {
	params := DefaultParams()
	for seed := int64(0); seed < 20; seed++ {
		s := newSession(params, seed)
		centers := s.sampleCenters()

		require.LessOrEqual(t, len(centers), s.report.TargetCaverns)
		require.GreaterOrEqual(t, s.report.TargetCaverns, params.MinCaverns)
		require.LessOrEqual(t, s.report.TargetCaverns, params.MaxCaverns)

		for i, a := range centers {
			assert.True(t, a.X >= 2 && a.X < params.Width-2, "x out of margin: %v", a)
			assert.True(t, a.Y >= 2 && a.Y < params.Height-2, "y out of margin: %v", a)
			for _, b := range centers[i+1:] {
				dx, dy := a.X-b.X, a.Y-b.Y
				assert.GreaterOrEqual(t, dx*dx+dy*dy, params.MinCavernDistance*params.MinCavernDistance)
			}
		}
	}
}

func TestSampleCentersUnderTargetIsNotAnError(t *testing.T) {
	params := DefaultParams()
	params.Width, params.Height = 16, 16
	params.MinCaverns, params.MaxCaverns = 45, 45
	params.MaxPlacementAttempts = 200

	s := newSession(params, 3)
	centers := s.sampleCenters()

	assert.Equal(t, 45, s.report.TargetCaverns)
	assert.NotEmpty(t, centers)
	assert.Less(t, len(centers), 45)
}

func TestSampleCentersZeroBudget(t *testing.T) {
	params := DefaultParams()
	params.MaxPlacementAttempts = 0
	s := newSession(params, 3)
	assert.Empty(t, s.sampleCenters())
}

func TestRectangularRoomRejectedOnOverlap(t *testing.T) {
	params := DefaultParams()
	params.RectangularRoomProb = 1
	s := newSession(params, 8)
	center := Position{X: 50, Y: 50}
	s.grid.set(center.X, center.Y, Floor)

	s.carveCaverns([]Position{center})

	require.Len(t, s.caverns, 1)
	assert.Empty(t, s.caverns[0].Tiles)
	assert.Equal(t, center, s.caverns[0].Center)
	assert.Equal(t, 1, s.report.RejectedRooms)
	assert.Equal(t, 1, s.grid.Count(Floor), "rejected room carves nothing")
}

func TestRectangularRoomCarvesWholeFootprint(t *testing.T) {
	params := DefaultParams()
	params.RectangularRoomProb = 1
	s := newSession(params, 8)

	s.carveCaverns([]Position{{X: 50, Y: 50}})

	tiles := s.caverns[0].Tiles
	require.NotEmpty(t, tiles)
	minX, maxX, minY, maxY := tiles[0].X, tiles[0].X, tiles[0].Y, tiles[0].Y
	for _, p := range tiles {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	w, h := maxX-minX+1, maxY-minY+1
	assert.Equal(t, w*h, len(tiles), "rectangle must be solid")
	assert.True(t, w >= rectMinWidth && w <= rectMaxWidth)
	assert.True(t, h >= rectMinHeight && h <= rectMaxHeight)
	assert.Equal(t, len(tiles), s.grid.Count(Floor))
}

func TestCompactRoomMergesIntoExistingFloor(t *testing.T) {
	params := DefaultParams()
	params.RectangularRoomProb = 0
	s := newSession(params, 8)
	center := Position{X: 50, Y: 50}
	s.grid.set(center.X, center.Y, Floor)

	s.carveCaverns([]Position{center})

	tiles := s.caverns[0].Tiles
	assert.Zero(t, s.report.RejectedRooms)
	assert.NotContains(t, tiles, center, "already-floor cells are not claimed")
	assert.Equal(t, len(tiles)+1, s.grid.Count(Floor))
	assert.GreaterOrEqual(t, len(tiles)+1, compactMinWidth*compactMinHeight)
	assert.LessOrEqual(t, len(tiles)+1, compactMaxWidth*compactMaxHeight)
}

func TestRoomsStayInsideBorder(t *testing.T) {
	params := DefaultParams()
	corners := []Position{{2, 2}, {params.Width - 3, 2}, {2, params.Height - 3}, {params.Width - 3, params.Height - 3}}
	for _, prob := range []float64{0, 1} {
		params.RectangularRoomProb = prob
		s := newSession(params, 17)
		for _, c := range corners {
			s.grid = newGrid(params.Width, params.Height)
			s.carveCaverns([]Position{c})
			for _, p := range s.caverns[0].Tiles {
				assert.True(t, s.interior(p.X, p.Y), "tile %v touches the border", p)
			}
		}
	}
}
