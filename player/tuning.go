package player

// Tuning holds every movement constant. Values are in world pixels and
// seconds and are tuned for a 60Hz update; because integration is a plain
// Euler step with no accumulator, other frame rates feel different.
type Tuning struct {
	// MoveSpeed is the grounded horizontal speed. Velocity snaps straight to
	// moveX*MoveSpeed on the ground; there is no acceleration ramp.
	MoveSpeed float32 `yaml:"move_speed"`
	// AirControl is the per-frame blend factor toward the target horizontal
	// speed while airborne with input held.
	AirControl float32 `yaml:"air_control"`

	JumpForce     float32 `yaml:"jump_force"`
	JumpCutFactor float32 `yaml:"jump_cut_factor"`

	Gravity            float32 `yaml:"gravity"`
	FastFallMultiplier float32 `yaml:"fast_fall_multiplier"`
	TerminalVelocity   float32 `yaml:"terminal_velocity"`

	WallSlideSpeed         float32 `yaml:"wall_slide_speed"`
	WallSlideGravityFactor float32 `yaml:"wall_slide_gravity_factor"`
	WallJumpForceX         float32 `yaml:"wall_jump_force_x"`
	WallJumpForceY         float32 `yaml:"wall_jump_force_y"`

	// timer windows, seconds
	CoyoteTime       float32 `yaml:"coyote_time"`
	JumpBufferTime   float32 `yaml:"jump_buffer_time"`
	WallJumpCooldown float32 `yaml:"wall_jump_cooldown"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:              200,
		AirControl:             0.9,
		JumpForce:              350,
		JumpCutFactor:          0.5,
		Gravity:                800,
		FastFallMultiplier:     1.6,
		TerminalVelocity:       500,
		WallSlideSpeed:         80,
		WallSlideGravityFactor: 0.3,
		WallJumpForceX:         250,
		WallJumpForceY:         320,
		CoyoteTime:             0.1,
		JumpBufferTime:         0.12,
		WallJumpCooldown:       0.15,
	}
}
