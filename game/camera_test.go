package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraSmoothFollow(t *testing.T) {
	c := NewCamera(0, 0) // zero view disables clamping
	c.SnapTo(0, 0)

	c.Update(100, 0, frame)
	assert.InDelta(t, 15, float64(c.X), 1e-4, "one step covers the smoothing fraction")

	for i := 0; i < 120; i++ {
		c.Update(100, 0, frame)
	}
	assert.InDelta(t, 100, float64(c.X), 0.1, "converges on a still target")
}

func TestCameraSnapBypassesSmoothing(t *testing.T) {
	c := NewCamera(0, 0)
	c.Update(500, 500, frame)
	c.SnapTo(64, 32)
	assert.Equal(t, float32(64), c.X)
	assert.Equal(t, float32(32), c.Y)
}

func TestCameraZeroSmoothSnapsEachFrame(t *testing.T) {
	c := NewCamera(0, 0)
	c.SetSmooth(0)
	c.Update(321, 123, frame)
	assert.Equal(t, float32(321), c.X)
	assert.Equal(t, float32(123), c.Y)
}

func TestCameraClampsToWorldBounds(t *testing.T) {
	c := NewCamera(100, 80)
	c.SetWorldBounds(400, 300)

	c.SnapTo(-50, -50)
	assert.Equal(t, float32(50), c.X, "left edge")
	assert.Equal(t, float32(40), c.Y, "top edge")

	c.SnapTo(1000, 1000)
	assert.Equal(t, float32(350), c.X, "right edge")
	assert.Equal(t, float32(260), c.Y, "bottom edge")
}

func TestCameraCentersWhenWorldSmallerThanView(t *testing.T) {
	c := NewCamera(640, 480)
	c.SetWorldBounds(320, 240)
	c.SnapTo(9999, -9999)
	assert.Equal(t, float32(160), c.X)
	assert.Equal(t, float32(120), c.Y)
}

func TestCameraShakeDecaysToZero(t *testing.T) {
	c := NewCamera(0, 0)
	c.SnapTo(0, 0)
	c.Shake(6, 0.4)

	c.Update(0, 0, frame)
	require.True(t, c.OffsetX != 0 || c.OffsetY != 0, "shake displaces the view")

	total := float32(0)
	for total < 0.5 {
		c.Update(0, 0, frame)
		total += frame
	}
	assert.Zero(t, c.OffsetX)
	assert.Zero(t, c.OffsetY)
	assert.Equal(t, float32(0), c.X, "shake never bleeds into the smoothed position")
}
