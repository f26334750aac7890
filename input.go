package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/arena"
	"github.com/milk9111/twinstick/ecs/component"
)

const (
	stickDeadzone = 0.2
	// stickAimReach is how far ahead of the player a stick aims.
	stickAimReach = 5.0
)

// Input samples keyboard, mouse and the first gamepad once per frame and
// hands the result to the match as the player's intent.
type Input struct {
	view    View
	current component.Input
}

var _ arena.InputProvider = (*Input)(nil)

func NewInput(view View) *Input {
	return &Input{view: view}
}

func (i *Input) Input(*arena.Match) component.Input {
	return i.current
}

func (i *Input) Update(playerPos cp.Vector) {
	var in component.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Move.Y -= 1
	}

	mx, my := ebiten.CursorPosition()
	in.AimTarget = i.view.ToWorld(float64(mx), float64(my))
	in.HasAim = true

	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Dash = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.Move = cp.Vector{X: lx, Y: -ly}
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			in.AimTarget = playerPos.Add(cp.Vector{X: rx, Y: -ry}.Normalize().Mult(stickAimReach))
		}

		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.Reload = in.Reload || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Dash = in.Dash || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	if in.Move.LengthSq() > 1 {
		in.Move = in.Move.Normalize()
	}
	i.current = in
}
