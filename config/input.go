package config

import (
	"github.com/automoto/pong/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionP1Up
	ActionP1Down
	ActionP2Up
	ActionP2Down
	ActionServe
	ActionPause
	ActionQuit
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionToggleMute
	ActionToggleFullscreen
	ActionToggleDebug
	ActionVolumeDown
	ActionVolumeUp
	ActionCount // Must be last - used for array sizing
)

// AnyGamepad binds a button on every connected pad.
const AnyGamepad = -1

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	// Gamepad is the connection index of the pad the buttons are read from,
	// or AnyGamepad.
	Gamepad int
	// Axis, when set, also triggers the action from the pad's left stick.
	// Negative means up.
	Axis int
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// SimControls maps actions to the simulation controls they drive.
var SimControls = map[ActionID]sim.Control{
	ActionP1Up:   sim.ControlP1Up,
	ActionP1Down: sim.ControlP1Down,
	ActionP2Up:   sim.ControlP2Up,
	ActionP2Down: sim.ControlP2Down,
	ActionServe:  sim.ControlServe,
	ActionPause:  sim.ControlPause,
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			// Red defends the right side with the arrow keys or the first pad.
			ActionP1Up: {
				Keys:                   []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
				Gamepad:                0,
				Axis:                   -1,
			},
			ActionP1Down: {
				Keys:                   []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
				Gamepad:                0,
				Axis:                   1,
			},
			// Blue defends the left side with W/S or the second pad.
			ActionP2Up: {
				Keys:                   []ebiten.Key{ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
				Gamepad:                1,
				Axis:                   -1,
			},
			ActionP2Down: {
				Keys:                   []ebiten.Key{ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
				Gamepad:                1,
				Axis:                   1,
			},
			ActionServe: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
				Gamepad:                AnyGamepad,
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
				Gamepad:                AnyGamepad,
			},
			ActionQuit: {
				Keys:    []ebiten.Key{ebiten.KeyEscape},
				Gamepad: AnyGamepad,
			},
			ActionMenuUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
				Gamepad:                AnyGamepad,
				Axis:                   -1,
			},
			ActionMenuDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
				Gamepad:                AnyGamepad,
				Axis:                   1,
			},
			ActionMenuSelect: {
				Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
				Gamepad:                AnyGamepad,
			},
			ActionToggleMute: {
				Keys:    []ebiten.Key{ebiten.KeyM},
				Gamepad: AnyGamepad,
			},
			ActionToggleFullscreen: {
				Keys:    []ebiten.Key{ebiten.KeyF11},
				Gamepad: AnyGamepad,
			},
			ActionToggleDebug: {
				Keys:    []ebiten.Key{ebiten.KeyF3},
				Gamepad: AnyGamepad,
			},
			ActionVolumeDown: {
				Keys:    []ebiten.Key{ebiten.KeyMinus},
				Gamepad: AnyGamepad,
			},
			ActionVolumeUp: {
				Keys:    []ebiten.Key{ebiten.KeyEqual},
				Gamepad: AnyGamepad,
			},
		},
	}
}
