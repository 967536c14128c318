package player

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/level"
)

// resolveCollisions pushes the player out of every solid tile the AABB spans,
// one tile at a time in scan order (top-to-bottom, left-to-right). Each tile
// resolves along whichever axis has the smaller penetration; an upward push
// means landing, which grounds the player and refreshes the coyote window.
//
// Later tiles in the scan can override velocity and grounded state written by
// earlier ones within the same frame. That tie-break is defined behavior
// callers rely on; aggregating the deepest penetration across all tiles
// before resolving once would be cleaner but changes edge cases.
func (p *Player) resolveCollisions(lvl *level.Level) {
	if p.State == StateGrounded {
		p.State = StateAirborne
	}

	minTx := tileIndex(p.X - p.HalfWidth)
	maxTx := tileIndex(p.X + p.HalfWidth)
	minTy := tileIndex(p.Y - p.HalfHeight)
	maxTy := tileIndex(p.Y + p.HalfHeight)

	for ty := minTy; ty <= maxTy; ty++ {
		for tx := minTx; tx <= maxTx; tx++ {
			if !lvl.IsSolid(tx, ty) {
				continue
			}
			tile := level.TileRect(tx, ty)

			pushLeft := (p.X + p.HalfWidth) - tile.X
			pushRight := (tile.X + tile.Width) - (p.X - p.HalfWidth)
			pushUp := (p.Y + p.HalfHeight) - tile.Y
			pushDown := (tile.Y + tile.Height) - (p.Y - p.HalfHeight)
			if pushLeft <= 0 || pushRight <= 0 || pushUp <= 0 || pushDown <= 0 {
				continue
			}

			dx := -pushLeft
			if pushRight < pushLeft {
				dx = pushRight
			}
			dy := -pushUp
			if pushDown < pushUp {
				dy = pushDown
			}

			if abs(dx) < abs(dy) {
				p.X += dx
				p.VX = 0
			} else {
				p.Y += dy
				p.VY = 0
				if dy < 0 {
					p.State = StateGrounded
					p.WallDir = 0
					p.Timers.Coyote = p.tuning.CoyoteTime
				}
			}
		}
	}
}

// touchingWall samples a single point just outside the given side of the AABB
// at the player's vertical center. It uses the collision-side tile query, so
// level edges count as walls.
func (p *Player) touchingWall(lvl *level.Level, dir int) bool {
	px := p.X + float32(dir)*(p.HalfWidth+wallProbe)
	return lvl.IsSolid(tileIndex(px), tileIndex(p.Y))
}

func tileIndex(v float32) int {
	return int(math.Floor(float64(v) / common.TileSize))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
