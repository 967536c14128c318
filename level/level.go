package level

import (
	"image/color"

	"github.com/milk9111/platformer/common"
)

// Tile classifies one grid cell.
type Tile int

const (
	TileEmpty Tile = iota
	TileSolid
	// TilePlatform is parsed and rendered distinctly but collides as Empty;
	// one-way passthrough is not implemented.
	TilePlatform
)

// Level is an immutable tile grid plus the static geometry of one map.
// It is built once per level transition (by Load or Default) and only read
// afterwards.
type Level struct {
	Width  int
	Height int

	Name            string
	ParTime         float32
	BackgroundColor color.RGBA

	// SpawnX/SpawnY are the player spawn point in world pixels (cell center).
	SpawnX float32
	SpawnY float32

	Goal    common.Rect
	Hazards []common.Rect

	// row-major, Width*Height entries
	tiles []Tile
}

// New builds a level from a row-major tile slice. The slice is copied and
// padded or truncated to Width*Height so the grid invariant always holds.
func New(width, height int, tiles []Tile) *Level {
	grid := make([]Tile, width*height)
	copy(grid, tiles)
	return &Level{
		Width:           width,
		Height:          height,
		BackgroundColor: color.RGBA{R: 0x1a, G: 0x1c, B: 0x2c, A: 0xff},
		tiles:           grid,
	}
}

// TileAt is the rendering-side query. Horizontally out-of-bounds cells read
// as Solid so the renderer fills past the level edges; vertically
// out-of-bounds cells (above or below) read as Empty.
//
// IsSolid answers the same question with a different vertical boundary
// policy. The two are intentionally kept separate: the player's wall check
// depends on IsSolid's closed top, and tile iteration depends on TileAt's
// open top. Unifying them changes observable behavior.
func (l *Level) TileAt(x, y int) Tile {
	if x < 0 || x >= l.Width {
		return TileSolid
	}
	if y < 0 || y >= l.Height {
		return TileEmpty
	}
	return l.tiles[y*l.Width+x]
}

// IsSolid is the collision-side query. Out-of-bounds columns are solid
// (invisible side walls), cells above the level are solid (no escaping over
// the top), and cells below the level are open so falling out stays possible.
func (l *Level) IsSolid(x, y int) bool {
	if x < 0 || x >= l.Width {
		return true
	}
	if y < 0 {
		return true
	}
	if y >= l.Height {
		return false
	}
	return l.tiles[y*l.Width+x] == TileSolid
}

// TileRect returns the world-pixel rectangle of the cell at (x, y).
func TileRect(x, y int) common.Rect {
	return common.Rect{
		X:      float32(x * common.TileSize),
		Y:      float32(y * common.TileSize),
		Width:  common.TileSize,
		Height: common.TileSize,
	}
}

// PixelWidth returns the level width in world pixels.
func (l *Level) PixelWidth() float32 {
	return float32(l.Width * common.TileSize)
}

// PixelHeight returns the level height in world pixels.
func (l *Level) PixelHeight() float32 {
	return float32(l.Height * common.TileSize)
}

// MarshalTiles re-serializes the grid as rows of integers using the same
// classification the loader consumes, so a load/marshal round trip preserves
// every in-bounds cell.
func (l *Level) MarshalTiles() [][]int {
	rows := make([][]int, l.Height)
	for y := 0; y < l.Height; y++ {
		row := make([]int, l.Width)
		for x := 0; x < l.Width; x++ {
			row[x] = int(l.tiles[y*l.Width+x])
		}
		rows[y] = row
	}
	return rows
}
