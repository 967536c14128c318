package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/player"
)

// Input polls the keyboard and first gamepad into the core's intent struct.
// Edge detection for the *Pressed fields happens here; the core only ever
// sees the finished per-frame intent.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Poll() player.Input {
	var in player.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.MoveY += 1
	}

	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.StartPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	// Gamepad: left stick X plus the standard button layout.
	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			in.MoveX = -1
		} else if leftX > 0.3 {
			in.MoveX = 1
		}
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY < -0.3 {
			in.MoveY = -1
		} else if leftY > 0.3 {
			in.MoveY = 1
		}

		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		in.JumpHeld = in.JumpHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		in.PausePressed = in.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
		in.StartPressed = in.StartPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	return in
}
