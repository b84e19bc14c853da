package sim_test

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/pong/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func startedMatch(t *testing.T, cfg sim.Config, seed uint64) *sim.Match {
	t.Helper()
	m, err := sim.NewMatch(cfg, newRand(seed))
	require.NoError(t, err)
	events, err := m.Start()
	require.NoError(t, err)
	require.Equal(t, sim.PhasePlaying, m.Phase())
	require.Equal(t, 1, sim.CountEvents(events, sim.EventBallReset))
	return m
}

func TestNewMatchRequiresRandomSource(t *testing.T) {
	_, err := sim.NewMatch(sim.DefaultConfig(), nil)
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
}

func TestGoalScenario(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.BallRadius = 25
	m := startedMatch(t, cfg, 1)

	// Keep the right paddle out of the ball's path.
	m.Paddle(sim.Player1).Position.Y = m.Paddle(sim.Player1).MaxY
	m.Ball.Position = m.Field.Center()
	m.Ball.Velocity = sim.Vector2{X: 100}
	before := m.Score.Get(sim.Player2)

	events := m.Step(sim.InputState{}, (480.0-25.0-0.0)/100.0)

	assert.Equal(t, []sim.Event{sim.PointScored(sim.Player2), sim.BallReset(sim.Player2)}, events)
	assert.Equal(t, before+1, m.Score.Get(sim.Player2))
	assert.Equal(t, 0, m.Score.Get(sim.Player1))
	assert.Equal(t, m.Field.Center(), m.Ball.Position)
	assert.Equal(t, cfg.Heading(sim.Player2), m.Ball.Velocity)
}

func TestServeScenario(t *testing.T) {
	m := startedMatch(t, sim.DefaultConfig(), 3)
	in := sim.InputState{}

	for i := 0; i < 200; i++ {
		held := [sim.ControlCount]bool{}
		held[sim.ControlServe] = i%2 == 0
		in.Advance(held)

		events := m.Step(in, tick)

		if in.JustPressed(sim.ControlServe) {
			require.Equal(t, 1, sim.CountEvents(events, sim.EventBallReset))
			require.Zero(t, sim.CountEvents(events, sim.EventPointScored))
			require.Equal(t, m.Field.Center(), m.Ball.Position)
		}
	}
}

func TestEveryResetCentersTheBall(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.BallSpeed = 900
	m := startedMatch(t, cfg, 9)
	rng := newRand(42)
	var in sim.InputState
	resets := 0

	for i := 0; i < 20_000; i++ {
		in.Advance(randomHeld(rng))
		events := m.Step(in, tick)

		var last *sim.Event
		for j := range events {
			if events[j].Kind == sim.EventBallReset {
				last = &events[j]
			}
		}
		if last == nil {
			continue
		}
		resets++
		require.Equal(t, m.Field.Center(), m.Ball.Position)
		require.Equal(t, cfg.Heading(last.Player), m.Ball.Velocity)
	}
	assert.Positive(t, resets)
}

func TestScoreMatchesPointEvents(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.BallSpeed = 1200
	cfg.PaddleHalfExtent.Y = 20
	m := startedMatch(t, cfg, 21)
	rng := newRand(8)
	var in sim.InputState
	points := map[sim.Player]int{}

	for i := 0; i < 30_000; i++ {
		in.Advance(randomHeld(rng))
		for _, e := range m.Step(in, tick) {
			if e.Kind == sim.EventPointScored {
				points[e.Player]++
			}
		}
		require.Equal(t, points[sim.Player1]+points[sim.Player2], m.Score.Total())
	}

	assert.Equal(t, points[sim.Player1], m.Score.Get(sim.Player1))
	assert.Equal(t, points[sim.Player2], m.Score.Get(sim.Player2))
	assert.Positive(t, m.Score.Total())
}

func TestDeterministicReplay(t *testing.T) {
	cfg := sim.DefaultConfig()
	a := startedMatch(t, cfg, 77)
	b := startedMatch(t, cfg, 77)
	rng := newRand(5)
	var in sim.InputState

	for i := 0; i < 10_000; i++ {
		in.Advance(randomHeld(rng))
		dt := tick * (0.5 + rng.Float64())

		ea := a.Step(in, dt)
		eb := b.Step(in, dt)

		require.Equal(t, ea, eb)
		require.True(t, a.Snapshot() == b.Snapshot(), "diverged at tick %d", i)
	}
}

func TestStepFrozenOutsidePlaying(t *testing.T) {
	m, err := sim.NewMatch(sim.DefaultConfig(), newRand(1))
	require.NoError(t, err)
	m.Ball.Velocity = sim.Vector2{X: 100, Y: 100}
	before := m.Snapshot()

	in := sim.Press(sim.ControlP1Up, sim.ControlP2Down, sim.ControlServe, sim.ControlPause)
	assert.Empty(t, m.Step(in, 1))
	assert.Equal(t, before, m.Snapshot())
}

func TestPauseFreezesEverything(t *testing.T) {
	m := startedMatch(t, sim.DefaultConfig(), 2)
	m.Step(sim.InputState{}, tick)

	var in sim.InputState
	in.Advance([sim.ControlCount]bool{sim.ControlPause: true})
	events := m.Step(in, tick)
	require.Equal(t, []sim.Event{sim.PhaseChanged(sim.PhasePlaying, sim.PhasePaused)}, events)
	paused := m.Snapshot()

	held := [sim.ControlCount]bool{sim.ControlPause: true, sim.ControlP1Up: true, sim.ControlServe: true}
	for i := 0; i < 30; i++ {
		in.Advance(held)
		assert.Empty(t, m.Step(in, tick))
	}
	assert.Equal(t, paused, m.Snapshot())

	in.Advance([sim.ControlCount]bool{})
	in.Advance([sim.ControlCount]bool{sim.ControlPause: true})
	events = m.Step(in, tick)
	require.Equal(t, sim.PhaseChanged(sim.PhasePaused, sim.PhasePlaying), events[0])
	assert.Equal(t, sim.PhasePlaying, m.Phase())
	assert.NotEqual(t, paused.Ball.Position, m.Ball.Position)
}

func TestWallBounceEvent(t *testing.T) {
	m := startedMatch(t, sim.DefaultConfig(), 4)
	m.Ball.Position = sim.Vector2{Y: 255}
	m.Ball.Velocity = sim.Vector2{X: 10, Y: 600}

	events := m.Step(sim.InputState{}, tick)

	assert.Equal(t, []sim.Event{sim.WallBounce()}, events)
	assert.Equal(t, -600.0, m.Ball.Velocity.Y)
	assert.Equal(t, m.Field.Max.Y-m.Ball.Radius, m.Ball.Position.Y)
}

func TestTargetScoreEndsMatch(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.TargetScore = 2
	m := startedMatch(t, cfg, 6)

	score := func() []sim.Event {
		m.Paddle(sim.Player2).Position.Y = m.Paddle(sim.Player2).MaxY
		m.Ball.Position = sim.Vector2{X: -475}
		m.Ball.Velocity = sim.Vector2{X: -100}
		return m.Step(sim.InputState{}, tick)
	}

	events := score()
	require.Zero(t, sim.CountEvents(events, sim.EventMatchWon))
	require.Equal(t, sim.PhasePlaying, m.Phase())

	events = score()
	assert.Equal(t, []sim.Event{
		sim.PointScored(sim.Player1),
		sim.BallReset(sim.Player1),
		sim.MatchWon(sim.Player1),
		sim.PhaseChanged(sim.PhasePlaying, sim.PhaseMainMenu),
	}, events)
	assert.Equal(t, sim.PhaseMainMenu, m.Phase())
	assert.Equal(t, 2, m.Score.Get(sim.Player1))

	_, err := m.Start()
	require.NoError(t, err)
	assert.Zero(t, m.Score.Total())
}

func TestNoTargetScoreByDefault(t *testing.T) {
	m := startedMatch(t, sim.DefaultConfig(), 6)

	for i := 0; i < 50; i++ {
		m.Paddle(sim.Player2).Position.Y = m.Paddle(sim.Player2).MaxY
		m.Ball.Position = sim.Vector2{X: -475}
		m.Ball.Velocity = sim.Vector2{X: -100}
		require.Zero(t, sim.CountEvents(m.Step(sim.InputState{}, tick), sim.EventMatchWon))
	}
	assert.Equal(t, 50, m.Score.Get(sim.Player1))
	assert.Equal(t, sim.PhasePlaying, m.Phase())
}

func randomHeld(rng *rand.Rand) [sim.ControlCount]bool {
	var held [sim.ControlCount]bool
	for c := sim.Control(0); c < sim.ControlCount; c++ {
		switch c {
		case sim.ControlPause:
			held[c] = rng.IntN(400) == 0
		case sim.ControlServe:
			held[c] = rng.IntN(150) == 0
		default:
			held[c] = rng.IntN(2) == 0
		}
	}
	return held
}

func TestReturnToMenuAndRestart(t *testing.T) {
	m := startedMatch(t, sim.DefaultConfig(), 9)

	ev, ok := m.TogglePause()
	require.True(t, ok)
	assert.Equal(t, sim.PhaseChanged(sim.PhasePlaying, sim.PhasePaused), ev)

	m.Score.Apply(sim.PointScored(sim.Player1))
	ev, ok = m.ReturnToMenu()
	require.True(t, ok)
	assert.Equal(t, sim.PhaseChanged(sim.PhasePaused, sim.PhaseMainMenu), ev)
	assert.Equal(t, 1, m.Score.Get(sim.Player1))

	_, ok = m.TogglePause()
	assert.False(t, ok)
	_, ok = m.ReturnToMenu()
	assert.False(t, ok)

	_, err := m.Start()
	require.NoError(t, err)
	assert.Equal(t, 0, m.Score.Total())
}
