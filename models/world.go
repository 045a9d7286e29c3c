package models

import "cavern-realm/server/generation"

// Wire tile codes sent to clients. The avatar is overlaid on the viewport
// copy only; worlds never contain it.
const (
	TileEmpty = iota
	TileFloor
	TileWall
	TileAvatar
)

// TileCode maps a generated tile class to its wire code.
func TileCode(t generation.TileClass) int {
	switch t {
	case generation.Floor:
		return TileFloor
	case generation.Wall:
		return TileWall
	default:
		return TileEmpty
	}
}

// Viewport is a window onto a world. X and Y are the world coordinates of
// Tiles[0][0]; rows run in increasing y.
type Viewport struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Tiles  [][]int `json:"tiles"`
}
