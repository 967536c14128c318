package game

import (
	"github.com/milk9111/platformer/level"
	"github.com/milk9111/platformer/player"
)

// Snapshot is the read-only view the renderer consumes: player pose and
// flags, camera, particles, and session metadata. Everything is copied by
// value except Level, which is immutable after construction, so drawing from
// a snapshot can never mutate core state.
type Snapshot struct {
	Mode  Mode
	Level *level.Level

	LevelTime float32
	Deaths    int

	PlayerX, PlayerY                  float32
	PlayerVX, PlayerVY                float32
	PlayerHalfWidth, PlayerHalfHeight float32
	PlayerState                       player.State
	WallDir                           int
	FacingRight                       bool
	SquashStretch                     float32

	CameraX, CameraY float32

	Particles []Particle
}

func (s *Session) Snapshot() Snapshot {
	p := s.Player
	return Snapshot{
		Mode:             s.Mode,
		Level:            s.Level,
		LevelTime:        s.LevelTime,
		Deaths:           s.Deaths,
		PlayerX:          p.X,
		PlayerY:          p.Y,
		PlayerVX:         p.VX,
		PlayerVY:         p.VY,
		PlayerHalfWidth:  p.HalfWidth,
		PlayerHalfHeight: p.HalfHeight,
		PlayerState:      p.State,
		WallDir:          p.WallDir,
		FacingRight:      p.FacingRight,
		SquashStretch:    p.SquashStretch,
		CameraX:          s.Camera.X + s.Camera.OffsetX,
		CameraY:          s.Camera.Y + s.Camera.OffsetY,
		Particles:        s.Particles.All(),
	}
}
