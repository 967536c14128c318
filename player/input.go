package player

// Input is the per-frame intent the platform layer feeds into the core. The
// core never polls a device; whatever produces this (keyboard, gamepad, a
// test script) owns edge detection for the *Pressed fields.
type Input struct {
	// MoveX/MoveY are in [-1, 1].
	MoveX float32
	MoveY float32
	// JumpPressed is true exactly one frame on the rising edge.
	JumpPressed bool
	// JumpHeld is true while the jump key is held down.
	JumpHeld bool
	// PausePressed and StartPressed are edge-triggered.
	PausePressed bool
	StartPressed bool
}
