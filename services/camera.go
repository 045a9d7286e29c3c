package services

import (
	"cavern-realm/server/config"
	"cavern-realm/server/generation"
	"cavern-realm/server/models"
)

// camera is the top-left corner of a session's viewport in world
// coordinates.
type camera struct {
	x, y int
}

// centerCamera places the viewport so the avatar sits in the middle, clamped
// to the world.
func centerCamera(avatar generation.Position, worldW, worldH int, vp config.ViewportConfig) camera {
	return camera{
		x: clamp(avatar.X-vp.Width/2, 0, worldW-vp.Width),
		y: clamp(avatar.Y-vp.Height/2, 0, worldH-vp.Height),
	}
}

// follow scrolls the camera once the avatar comes within the scroll threshold
// of an edge. An avatar outside the window entirely (after a teleport) pulls
// the window straight to it.
func (c camera) follow(avatar generation.Position, worldW, worldH int, vp config.ViewportConfig) camera {
	c.x = followAxis(c.x, avatar.X, worldW, vp.Width, vp.ScrollThreshold)
	c.y = followAxis(c.y, avatar.Y, worldH, vp.Height, vp.ScrollThreshold)
	return c
}

func followAxis(offset, pos, world, view, threshold int) int {
	screen := pos - offset
	switch {
	case screen < threshold:
		offset = max(0, pos-threshold)
	case screen >= view-threshold:
		offset = min(world-view, pos-view+threshold+1)
	}

	screen = pos - offset
	switch {
	case screen < 0:
		offset = max(0, pos)
	case screen >= view:
		offset = min(world-view, pos-view+1)
	}
	return offset
}

// render copies the camera window out of world and draws the avatar on the
// copy.
func (c camera) render(world *generation.World, avatar generation.Position, vp config.ViewportConfig) models.Viewport {
	tiles := make([][]int, vp.Height)
	for row := range tiles {
		tiles[row] = make([]int, vp.Width)
		for col := range tiles[row] {
			tiles[row][col] = models.TileCode(world.Classify(c.x+col, c.y+row))
		}
	}
	if ax, ay := avatar.X-c.x, avatar.Y-c.y; ay >= 0 && ay < vp.Height && ax >= 0 && ax < vp.Width {
		tiles[ay][ax] = models.TileAvatar
	}
	return models.Viewport{
		X:      c.x,
		Y:      c.y,
		Width:  vp.Width,
		Height: vp.Height,
		Tiles:  tiles,
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
