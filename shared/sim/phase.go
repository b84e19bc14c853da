package sim

import "errors"

// ErrInvalidTransition is returned when a phase change is not allowed from the
// current phase.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the top-level mode of a match.
type Phase uint8

const (
	PhaseMainMenu Phase = iota
	PhasePlaying
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	}
	return "Unknown"
}

// PhaseMachine tracks the current Phase. The zero value is in PhaseMainMenu.
type PhaseMachine struct {
	current Phase
}

func (m PhaseMachine) Current() Phase {
	return m.current
}

// Start leaves the main menu.
func (m *PhaseMachine) Start() (Event, error) {
	if m.current != PhaseMainMenu {
		return Event{}, ErrInvalidTransition
	}
	return m.set(PhasePlaying), nil
}

// TogglePause flips between Playing and Paused. It does nothing in the menu.
func (m *PhaseMachine) TogglePause() (Event, bool) {
	switch m.current {
	case PhasePlaying:
		return m.set(PhasePaused), true
	case PhasePaused:
		return m.set(PhasePlaying), true
	}
	return Event{}, false
}

// ReturnToMenu ends the match.
func (m *PhaseMachine) ReturnToMenu() (Event, bool) {
	if m.current == PhaseMainMenu {
		return Event{}, false
	}
	return m.set(PhaseMainMenu), true
}

func (m *PhaseMachine) set(to Phase) Event {
	from := m.current
	m.current = to
	return PhaseChanged(from, to)
}
