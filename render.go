package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/level"
	"golang.org/x/image/colornames"
)

var (
	tileColor     = color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}
	platformColor = color.RGBA{R: 0x6e, G: 0xa8, B: 0xff, A: 0xff}
	hazardFill    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0x60}
	hazardStroke  = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xc8}
	goalColor     = color.RGBA{R: 0x38, G: 0xb7, B: 0x64, A: 0xff}
)

// drawSession renders one frame from a snapshot. The snapshot is a value
// copy, so nothing here can reach back into the session.
func drawSession(screen *ebiten.Image, snap game.Snapshot, zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}
	screen.Fill(snap.Level.BackgroundColor)

	viewW := baseWidth / zoom
	viewH := baseHeight / zoom
	camX := float64(snap.CameraX) - viewW/2
	camY := float64(snap.CameraY) - viewH/2

	worldRect := func(r common.Rect, fill color.Color) {
		vector.FillRect(screen,
			float32((float64(r.X)-camX)*zoom),
			float32((float64(r.Y)-camY)*zoom),
			float32(float64(r.Width)*zoom),
			float32(float64(r.Height)*zoom),
			fill, false)
	}

	// Tiles over the visible range. TileAt reads horizontally out-of-bounds
	// cells as Solid, which is what fills in past the level edges here.
	tx0 := int(math.Floor(camX/common.TileSize)) - 1
	tx1 := int(math.Ceil((camX+viewW)/common.TileSize)) + 1
	ty0 := int(math.Floor(camY / common.TileSize))
	ty1 := int(math.Ceil((camY + viewH) / common.TileSize))
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			switch snap.Level.TileAt(tx, ty) {
			case level.TileSolid:
				worldRect(level.TileRect(tx, ty), tileColor)
			case level.TilePlatform:
				r := level.TileRect(tx, ty)
				r.Height = common.TileSize / 4
				worldRect(r, platformColor)
			}
		}
	}

	for _, h := range snap.Level.Hazards {
		worldRect(h, hazardFill)
		vector.StrokeRect(screen,
			float32((float64(h.X)-camX)*zoom),
			float32((float64(h.Y)-camY)*zoom),
			float32(float64(h.Width)*zoom),
			float32(float64(h.Height)*zoom),
			1.0, hazardStroke, false)
	}

	worldRect(snap.Level.Goal, goalColor)

	drawPlayer(screen, snap, camX, camY, zoom)

	for _, p := range snap.Particles {
		a := float64(p.Life / p.InitialLife)
		c := color.RGBA{
			R: uint8(float64(p.R) * a),
			G: uint8(float64(p.G) * a),
			B: uint8(float64(p.B) * a),
			A: uint8(255 * a),
		}
		worldRect(common.Rect{X: p.X, Y: p.Y, Width: p.Size, Height: p.Size}, c)
	}

	drawHUD(screen, snap)
}

// drawPlayer applies the landing squash: wider and shorter with feet planted.
func drawPlayer(screen *ebiten.Image, snap game.Snapshot, camX, camY, zoom float64) {
	if snap.Mode == game.ModeDead {
		return
	}
	sq := snap.SquashStretch
	w := 2 * snap.PlayerHalfWidth * (1 + sq)
	h := 2 * snap.PlayerHalfHeight * (1 - sq)
	bottom := snap.PlayerY + snap.PlayerHalfHeight
	vector.FillRect(screen,
		float32((float64(snap.PlayerX-w/2)-camX)*zoom),
		float32((float64(bottom-h)-camY)*zoom),
		float32(float64(w)*zoom),
		float32(float64(h)*zoom),
		colornames.Crimson, false)
}

func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %.1fs / par %.0fs  deaths: %d",
		snap.Level.Name, snap.LevelTime, snap.Level.ParTime, snap.Deaths), 4, 4)

	switch snap.Mode {
	case game.ModeMenu:
		ebitenutil.DebugPrintAt(screen, "press SPACE or ENTER to start", baseWidth/2-90, baseHeight/2)
	case game.ModeDead:
		ebitenutil.DebugPrintAt(screen, "ouch", baseWidth/2-12, baseHeight/2)
	case game.ModeLevelComplete:
		msg := fmt.Sprintf("level complete in %.1fs - press SPACE for next", snap.LevelTime)
		if snap.LevelTime <= snap.Level.ParTime {
			msg += "  (under par!)"
		}
		ebitenutil.DebugPrintAt(screen, msg, baseWidth/2-140, baseHeight/2)
	}
}
