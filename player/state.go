package player

// State is the movement state. The wall-slide and grounded conditions are
// mutually exclusive (wall contact only registers while airborne and
// falling), so a single tag plus the timer side table covers every case.
type State int

const (
	StateGrounded State = iota
	StateAirborne
	StateWallSliding
)

func (s State) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateAirborne:
		return "airborne"
	case StateWallSliding:
		return "wallsliding"
	default:
		return "unknown"
	}
}

// Timers is the countdown side table. Every timer ticks toward zero once per
// frame, floored at zero, before any other player logic runs.
type Timers struct {
	Coyote           float32
	JumpBuffer       float32
	WallJumpCooldown float32
}

func (t *Timers) Tick(dt float32) {
	t.Coyote = tickDown(t.Coyote, dt)
	t.JumpBuffer = tickDown(t.JumpBuffer, dt)
	t.WallJumpCooldown = tickDown(t.WallJumpCooldown, dt)
}

func tickDown(v, dt float32) float32 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
