package sim

import "fmt"

// Match owns every piece of simulation state. Step is its only writer while a
// match is running.
type Match struct {
	Config  Config
	Field   Rect
	Paddles [2]Paddle
	Ball    Ball
	Goals   [2]Goal
	Score   ScoreBoard

	phase    PhaseMachine
	resolver *Resolver
	rng      Source
}

// State is a value copy of a match, comparable with ==.
type State struct {
	Paddles [2]Paddle
	Ball    Ball
	Score   ScoreBoard
	Phase   Phase
}

// NewMatch validates cfg and lays out the court. The match starts in the main
// menu with the ball parked on the center spot.
func NewMatch(cfg Config, rng Source) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("new match: %w", &ConfigError{Field: "rng", Reason: "must not be nil"})
	}

	m := &Match{
		Config: cfg,
		Field:  cfg.Field(),
		rng:    rng,
	}
	for _, p := range Players {
		m.Paddles[p.Index()] = NewPaddle(cfg, p)
		m.Goals[p.Index()] = NewGoal(cfg, p)
	}
	m.Ball = Ball{Position: m.Field.Center(), Radius: cfg.BallRadius}
	m.resolver = NewResolver(m.Field, m.Goals, m.Paddles, cfg.CellSize)
	return m, nil
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase.Current()
}

// Paddle returns p's paddle.
func (m *Match) Paddle(p Player) *Paddle {
	return &m.Paddles[p.Index()]
}

// Resolver returns the collision resolver, mainly for debug drawing.
func (m *Match) Resolver() *Resolver {
	return m.resolver
}

// Start leaves the main menu and begins a fresh match: scores are zeroed,
// paddles recentered and the ball served toward a random player.
func (m *Match) Start() ([]Event, error) {
	ev, err := m.phase.Start()
	if err != nil {
		return nil, fmt.Errorf("start match from %s: %w", m.phase.Current(), err)
	}
	m.Score.Reset()
	for _, p := range Players {
		m.Paddles[p.Index()] = NewPaddle(m.Config, p)
	}
	server := RandomPlayer(m.rng)
	m.Ball.ResetToCenter(m.Field, m.Config.Heading(server))
	return []Event{ev, BallReset(server)}, nil
}

// TogglePause pauses or resumes a running match. It reports false in the
// main menu.
func (m *Match) TogglePause() (Event, bool) {
	return m.phase.TogglePause()
}

// ReturnToMenu abandons the match. Scores are kept until the next Start.
func (m *Match) ReturnToMenu() (Event, bool) {
	return m.phase.ReturnToMenu()
}

// Snapshot copies the current state.
func (m *Match) Snapshot() State {
	return State{
		Paddles: m.Paddles,
		Ball:    m.Ball,
		Score:   m.Score,
		Phase:   m.phase.Current(),
	}
}

// Step advances the match by dt seconds and returns what happened. Outside
// PhasePlaying only the pause control is honoured and nothing moves.
func (m *Match) Step(in InputState, dt float64) []Event {
	var events []Event
	if in.JustPressed(ControlPause) {
		if ev, ok := m.phase.TogglePause(); ok {
			events = append(events, ev)
		}
	}
	if m.phase.Current() != PhasePlaying {
		return events
	}

	for i := range m.Paddles {
		m.Paddles[i].Move(in, dt)
	}
	m.Ball.Integrate(dt)
	if m.Ball.BounceOffWalls(m.Field) {
		events = append(events, WallBounce())
	}

	resolved := m.resolver.Resolve(&m.Ball, &m.Paddles, in, m.rng)
	m.apply(resolved)
	events = append(events, resolved...)

	return append(events, m.checkWinner(resolved)...)
}

// apply folds resolver output into the match. Points land before resets so a
// goal is never lost to a same-tick reset.
func (m *Match) apply(events []Event) {
	for _, e := range events {
		if e.Kind == EventPointScored {
			m.Score.Apply(e)
		}
	}
	for _, e := range events {
		if e.Kind == EventBallReset {
			m.Ball.ResetToCenter(m.Field, m.Config.Heading(e.Player))
		}
	}
}

func (m *Match) checkWinner(events []Event) []Event {
	target := m.Config.TargetScore
	if target <= 0 {
		return nil
	}
	for _, e := range events {
		if e.Kind != EventPointScored || m.Score.Get(e.Player) < target {
			continue
		}
		won := MatchWon(e.Player)
		if ev, ok := m.phase.ReturnToMenu(); ok {
			return []Event{won, ev}
		}
		return []Event{won}
	}
	return nil
}
