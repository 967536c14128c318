package level

import (
	"image/color"

	"github.com/milk9111/platformer/common"
)

// Default builds the hardcoded fallback level used whenever loading from disk
// fails: a flat floor with side walls, three floating ledges, a tall wall for
// wall-jump practice, and one hazard strip in front of it.
func Default() *Level {
	const w, h = 40, 23

	lvl := New(w, h, nil)
	lvl.Name = "proving grounds"
	lvl.ParTime = 20
	lvl.BackgroundColor = color.RGBA{R: 0x1a, G: 0x1c, B: 0x2c, A: 0xff}

	// floor: bottom two rows
	for y := h - 2; y < h; y++ {
		for x := 0; x < w; x++ {
			lvl.tiles[y*w+x] = TileSolid
		}
	}

	// side walls
	for y := 0; y < h; y++ {
		lvl.tiles[y*w] = TileSolid
		lvl.tiles[y*w+w-1] = TileSolid
	}

	// three floating ledges, stepping up left to right
	ledge := func(x0, x1, y int) {
		for x := x0; x <= x1; x++ {
			lvl.tiles[y*w+x] = TileSolid
		}
	}
	ledge(8, 12, 17)
	ledge(15, 19, 14)
	ledge(22, 26, 11)

	// vertical wall for wall-jump practice
	for y := 8; y <= h-3; y++ {
		lvl.tiles[y*w+31] = TileSolid
	}

	// hazard strip on the floor ahead of the wall
	lvl.Hazards = []common.Rect{{
		X:      28 * common.TileSize,
		Y:      20 * common.TileSize,
		Width:  3 * common.TileSize,
		Height: common.TileSize,
	}}

	lvl.SpawnX = 3*common.TileSize + common.TileSize/2
	lvl.SpawnY = 19*common.TileSize + common.TileSize/2

	lvl.Goal = common.Rect{
		X:      35 * common.TileSize,
		Y:      19 * common.TileSize,
		Width:  2 * common.TileSize,
		Height: 2 * common.TileSize,
	}

	return lvl
}
