package game

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// Camera follows a world point with smoothing and clamps the view to the
// level bounds. Shake adds a decaying offset on top; renderers should add
// OffsetX/OffsetY to the smoothed position when building the view transform.
type Camera struct {
	X, Y float32

	OffsetX float32
	OffsetY float32

	// smoothing factor (0..1) applied per frame; higher follows faster
	smooth float32

	viewW, viewH   float32
	worldW, worldH float32

	shakeAmp      float32
	shakeTime     float32
	shakeDuration float32
}

func NewCamera(viewW, viewH float32) Camera {
	return Camera{smooth: 0.15, viewW: viewW, viewH: viewH}
}

// SetWorldBounds sets the level pixel dimensions used for clamping. Zero
// disables clamping on that axis.
func (c *Camera) SetWorldBounds(w, h float32) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float32) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// Update moves the camera toward the target and advances the shake timer.
// Call once per frame from the session while playing.
func (c *Camera) Update(targetX, targetY, dt float32) {
	if c.smooth <= 0 {
		c.X = targetX
		c.Y = targetY
	} else {
		c.X += (targetX - c.X) * c.smooth
		c.Y += (targetY - c.Y) * c.smooth
	}
	c.clamp()

	c.OffsetX = 0
	c.OffsetY = 0
	if c.shakeTime > 0 {
		c.shakeTime -= dt
		if c.shakeTime < 0 {
			c.shakeTime = 0
		}
		falloff := float32(0)
		if c.shakeDuration > 0 {
			falloff = c.shakeTime / c.shakeDuration
		}
		t := float64(c.shakeTime)
		c.OffsetX = c.shakeAmp * falloff * float32(math.Sin(t*73))
		c.OffsetY = c.shakeAmp * falloff * float32(math.Cos(t*97))
	}
}

// Shake starts a screen shake of the given amplitude (world pixels) and
// duration (seconds), replacing any shake in progress.
func (c *Camera) Shake(amp, duration float32) {
	c.shakeAmp = amp
	c.shakeTime = duration
	c.shakeDuration = duration
}

// SnapTo centers the camera immediately, bypassing smoothing. Used after a
// level load or respawn so the view doesn't sweep across the map.
func (c *Camera) SnapTo(x, y float32) {
	c.X = x
	c.Y = y
	c.clamp()
}

func (c *Camera) clamp() {
	halfW := c.viewW / 2
	halfH := c.viewH / 2
	if c.worldW > 0 && c.viewW > 0 {
		if c.worldW < c.viewW {
			c.X = c.worldW / 2
		} else {
			c.X = common.Clamp(c.X, halfW, c.worldW-halfW)
		}
	}
	if c.worldH > 0 && c.viewH > 0 {
		if c.worldH < c.viewH {
			c.Y = c.worldH / 2
		} else {
			c.Y = common.Clamp(c.Y, halfH, c.worldH-halfH)
		}
	}
}
