package player

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/level"
)

const (
	defaultHalfWidth  = 6
	defaultHalfHeight = 7

	// facing only flips once horizontal speed clears this deadzone
	facingDeadzone = 10
	// wall probe distance beyond the half-extent, world pixels
	wallProbe = 2

	landingSquash = 0.35
)

// Player is the movement state machine. X/Y is the AABB center in world
// pixels; velocities are world pixels per second. One Player is owned by the
// session and reset in place on every (re)spawn.
type Player struct {
	X, Y   float32
	VX, VY float32

	HalfWidth  float32
	HalfHeight float32

	State State
	// WallDir is -1 while sliding on a wall to the left, +1 to the right,
	// 0 otherwise.
	WallDir     int
	FacingRight bool
	Timers      Timers

	// JumpHeld is latched from the input each frame.
	JumpHeld bool
	// SquashStretch is presentation only: 0 at rest, spikes on landing.
	SquashStretch float32

	canVariableJump bool
	prevGrounded    bool

	tuning Tuning
}

// New creates a player at the given spawn point (world pixels, center).
func New(x, y float32, tn Tuning) *Player {
	p := &Player{tuning: tn}
	p.Reset(x, y)
	return p
}

// Reset puts the player back at a spawn point in place, clearing motion,
// timers, and latches.
func (p *Player) Reset(x, y float32) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.HalfWidth = defaultHalfWidth
	p.HalfHeight = defaultHalfHeight
	p.State = StateAirborne
	p.WallDir = 0
	p.FacingRight = true
	p.Timers = Timers{}
	p.JumpHeld = false
	p.SquashStretch = 0
	p.canVariableJump = false
	p.prevGrounded = false
}

func (p *Player) Grounded() bool    { return p.State == StateGrounded }
func (p *Player) WallSliding() bool { return p.State == StateWallSliding }

// Rect returns the collision AABB derived from the center and half-extents.
func (p *Player) Rect() common.Rect {
	return common.Rect{
		X:      p.X - p.HalfWidth,
		Y:      p.Y - p.HalfHeight,
		Width:  2 * p.HalfWidth,
		Height: 2 * p.HalfHeight,
	}
}

// Update advances the player one frame. The phases run in a fixed order:
// timers, horizontal velocity, wall detection, jump resolution, gravity,
// integration, collision resolution, landing edge, facing. Reordering them
// changes behavior (wall detection reads last frame's velocity, jump
// resolution reads this frame's wall state).
func (p *Player) Update(in Input, lvl *level.Level, dt float32) {
	p.Timers.Tick(dt)

	// Horizontal velocity. Grounded movement snaps straight to the target
	// with no ramp; airborne movement blends toward it, and airborne with no
	// input keeps whatever speed it had (no air drag).
	target := in.MoveX * p.tuning.MoveSpeed
	if p.State == StateGrounded {
		p.VX = target
	} else if p.State != StateWallSliding && in.MoveX != 0 {
		p.VX = common.Lerp(p.VX, target, common.Clamp(p.tuning.AirControl, 0, 1))
	}

	// Wall detection, cleared every frame. Wall contact only registers while
	// falling, and sliding only engages on the side being pressed toward.
	p.WallDir = 0
	if p.State == StateWallSliding {
		p.State = StateAirborne
	}
	if p.Timers.WallJumpCooldown == 0 && p.State != StateGrounded && p.VY >= 0 {
		if in.MoveX < 0 && p.touchingWall(lvl, -1) {
			p.State = StateWallSliding
			p.WallDir = -1
		} else if in.MoveX > 0 && p.touchingWall(lvl, 1) {
			p.State = StateWallSliding
			p.WallDir = 1
		}
	}

	// Jump resolution. A press latches the buffer; the buffer is consumed by
	// at most one launch.
	if in.JumpPressed {
		p.Timers.JumpBuffer = p.tuning.JumpBufferTime
	}
	if p.Timers.JumpBuffer > 0 {
		if p.State == StateWallSliding {
			p.wallJump()
		} else if p.State == StateGrounded || p.Timers.Coyote > 0 {
			p.groundJump()
		}
	}

	p.JumpHeld = in.JumpHeld
	if !in.JumpHeld && p.canVariableJump && p.VY < 0 {
		// releasing early caps the jump arc; applied once per launch
		p.VY *= p.tuning.JumpCutFactor
		p.canVariableJump = false
	}

	// Gravity. Wall slides fall at a reduced rate up to a hard ceiling;
	// everything else gets full gravity, scaled up once already descending,
	// clamped at terminal velocity.
	if p.State == StateWallSliding {
		if p.VY < p.tuning.WallSlideSpeed {
			p.VY += p.tuning.Gravity * p.tuning.WallSlideGravityFactor * dt
		}
		if p.VY >= p.tuning.WallSlideSpeed {
			p.VY = p.tuning.WallSlideSpeed
		}
	} else {
		g := p.tuning.Gravity
		if p.VY > 0 {
			g *= p.tuning.FastFallMultiplier
		}
		p.VY += g * dt
		if p.VY > p.tuning.TerminalVelocity {
			p.VY = p.tuning.TerminalVelocity
		}
	}

	// Explicit Euler, no sub-stepping. Tunneling through a thin tile at very
	// high speed is an accepted limitation.
	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.resolveCollisions(lvl)

	// Landing edge. The coyote refresh is redundant with the resolver's own
	// but kept alongside the visual hook.
	if p.State == StateGrounded && !p.prevGrounded {
		p.SquashStretch = landingSquash
		p.Timers.Coyote = p.tuning.CoyoteTime
	}
	p.prevGrounded = p.State == StateGrounded

	p.SquashStretch = common.Lerp(p.SquashStretch, 0, common.Clamp(12*dt, 0, 1))

	if p.VX > facingDeadzone {
		p.FacingRight = true
	} else if p.VX < -facingDeadzone {
		p.FacingRight = false
	}
}

func (p *Player) groundJump() {
	p.VY = -p.tuning.JumpForce
	p.State = StateAirborne
	p.Timers.Coyote = 0
	p.Timers.JumpBuffer = 0
	p.canVariableJump = true
}

func (p *Player) wallJump() {
	p.VX = float32(-p.WallDir) * p.tuning.WallJumpForceX
	p.VY = -p.tuning.WallJumpForceY
	p.State = StateAirborne
	p.FacingRight = p.WallDir == -1
	p.WallDir = 0
	p.Timers.WallJumpCooldown = p.tuning.WallJumpCooldown
	p.Timers.JumpBuffer = 0
	p.canVariableJump = true
}
