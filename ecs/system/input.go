package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
)

const stickDeadzone = 0.2

// Intent is the movement request for one frame.
type Intent struct {
	MoveX float64
	Jump  bool
}

// InputSystem copies player intent into every character controller.
type InputSystem struct {
	// Read samples the devices; tests replace it.
	Read func() Intent
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Read: readDevices}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.Read == nil {
		return
	}
	intent := i.Read()
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody) {
		cc, ok := body.Variant.(*component.CharacterController)
		if !ok {
			return
		}
		cc.MoveX = math.Max(-1, math.Min(1, intent.MoveX))
		cc.Jump = intent.Jump
	})
}

func readDevices() Intent {
	var in Intent
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	in.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.MoveX = leftX
		}
		in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return in
}
