package sim

// Control is a logical simulation input, independent of the device that
// produced it.
type Control int

const (
	ControlP1Up Control = iota
	ControlP1Down
	ControlP2Up
	ControlP2Down
	ControlServe
	ControlPause
	ControlCount // Must be last - used for array sizing
)

var controlNames = [ControlCount]string{
	ControlP1Up:   "p1-up",
	ControlP1Down: "p1-down",
	ControlP2Up:   "p2-up",
	ControlP2Down: "p2-down",
	ControlServe:  "serve",
	ControlPause:  "pause",
}

func (c Control) String() string {
	if c < 0 || c >= ControlCount {
		return "unknown"
	}
	return controlNames[c]
}

// InputState holds the held state of every control for this tick and the
// previous one. Edges are derived by comparing the two.
type InputState struct {
	Current  [ControlCount]bool
	Previous [ControlCount]bool
}

// Held reports whether c is down this tick.
func (s InputState) Held(c Control) bool {
	return s.Current[c]
}

// JustPressed reports whether c went down this tick.
func (s InputState) JustPressed(c Control) bool {
	return s.Current[c] && !s.Previous[c]
}

// JustReleased reports whether c went up this tick.
func (s InputState) JustReleased(c Control) bool {
	return !s.Current[c] && s.Previous[c]
}

// Advance shifts the current frame into Previous and installs held as the
// new current frame.
func (s *InputState) Advance(held [ControlCount]bool) {
	s.Previous = s.Current
	s.Current = held
}

// Hold returns a copy of s with the given controls added to the current frame.
func (s InputState) Hold(controls ...Control) InputState {
	for _, c := range controls {
		s.Current[c] = true
	}
	return s
}

// Press builds a state in which every given control was just pressed.
func Press(controls ...Control) InputState {
	return InputState{}.Hold(controls...)
}
