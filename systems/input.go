package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateMatch in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var held [cfg.ActionCount]bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
				keyboardUsed = true
			}
		}
		if pollGamepads(binding, gamepadIDs) {
			held[actionID] = true
			gamepadUsed = true
		}
	}
	input.Advance(held)

	// Escape quits from any scene
	if GetAction(input, cfg.ActionQuit).JustPressed {
		RequestQuit()
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// PrimeInput polls once and treats everything already held as old, so a key
// that confirmed the previous scene does not also act in the new one.
func PrimeInput(ecs *ecs.ECS) {
	UpdateInput(ecs)
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
}

// pollGamepads reports whether the binding is held on the pads it listens to.
func pollGamepads(binding cfg.InputBinding, gamepads []ebiten.GamepadID) bool {
	for i, gpID := range gamepads {
		if binding.Gamepad != cfg.AnyGamepad && binding.Gamepad != i {
			continue
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
		if binding.Axis != 0 {
			v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
			if axisHeld(v, binding.Axis, cfg.Input.AnalogDeadzone) {
				return true
			}
		}
	}
	return false
}

// axisHeld applies the deadzone to a stick value in the bound direction.
func axisHeld(value float64, direction int, deadzone float64) bool {
	if direction < 0 {
		return value < -deadzone
	}
	return value > deadzone
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
