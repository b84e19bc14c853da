package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// Advance swaps buffers: current becomes previous and held becomes current.
func (d *InputData) Advance(held [cfg.ActionCount]bool) {
	d.Previous = d.Current
	d.Current = held
}

// SimInput projects the action state onto the simulation's controls.
func (d *InputData) SimInput() sim.InputState {
	var in sim.InputState
	for action, control := range cfg.SimControls {
		in.Current[control] = d.Current[action]
		in.Previous[control] = d.Previous[action]
	}
	return in
}
