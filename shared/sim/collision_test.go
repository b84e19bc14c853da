package sim_test

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/pong/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFixture struct {
	cfg      sim.Config
	paddles  [2]sim.Paddle
	resolver *sim.Resolver
}

func newResolverFixture(t *testing.T, cfg sim.Config) *resolverFixture {
	t.Helper()
	require.NoError(t, cfg.Validate())

	f := &resolverFixture{cfg: cfg}
	var goals [2]sim.Goal
	for _, p := range sim.Players {
		f.paddles[p.Index()] = sim.NewPaddle(cfg, p)
		goals[p.Index()] = sim.NewGoal(cfg, p)
	}
	f.resolver = sim.NewResolver(cfg.Field(), goals, f.paddles, cfg.CellSize)
	return f
}

func (f *resolverFixture) resolve(b *sim.Ball, in sim.InputState) []sim.Event {
	return f.resolver.Resolve(b, &f.paddles, in, rand.New(rand.NewPCG(1, 1)))
}

// narrowConfig builds a court so small that a centered ball touches both paddles.
func narrowConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.MinX, cfg.MaxX = -30, 30
	cfg.PaddleInset = 20
	cfg.PaddleHalfExtent = sim.Vector2{X: 8, Y: 50}
	cfg.GoalDepth = 10
	cfg.CellSize = 8
	return cfg
}

func TestResolveServeEmitsSingleReset(t *testing.T) {
	f := newResolverFixture(t, sim.DefaultConfig())

	for seed := uint64(0); seed < 50; seed++ {
		// Parked on a goal line so any collision check would score.
		b := sim.Ball{Position: sim.Vector2{X: 475}, Radius: 10}
		rng := rand.New(rand.NewPCG(seed, seed))

		events := f.resolver.Resolve(&b, &f.paddles, sim.Press(sim.ControlServe), rng)

		require.Len(t, events, 1)
		assert.Equal(t, sim.EventBallReset, events[0].Kind)
		assert.True(t, events[0].Player.Valid())
		assert.Zero(t, sim.CountEvents(events, sim.EventPointScored))
	}
}

func TestResolveServeIsRandomBySeed(t *testing.T) {
	f := newResolverFixture(t, sim.DefaultConfig())
	seen := map[sim.Player]bool{}

	for seed := uint64(0); seed < 64; seed++ {
		b := sim.Ball{Radius: 10}
		events := f.resolver.Resolve(&b, &f.paddles, sim.Press(sim.ControlServe), rand.New(rand.NewPCG(seed, 3)))
		seen[events[0].Player] = true
	}

	assert.True(t, seen[sim.Player1])
	assert.True(t, seen[sim.Player2])
}

func TestResolveHeldServeDoesNotRepeat(t *testing.T) {
	f := newResolverFixture(t, sim.DefaultConfig())
	b := sim.Ball{Radius: 10}
	in := sim.Press(sim.ControlServe)
	in.Advance(in.Current)

	assert.Empty(t, f.resolve(&b, in))
}

func TestResolvePaddleTieBreakPrefersPlayer1(t *testing.T) {
	f := newResolverFixture(t, narrowConfig())
	require.True(t, f.paddles[0].Box().Overlaps(sim.Ball{Radius: 15}.Box()))
	require.True(t, f.paddles[1].Box().Overlaps(sim.Ball{Radius: 15}.Box()))

	for i := 0; i < 10; i++ {
		b := sim.Ball{Radius: 15, Velocity: sim.Vector2{X: 50, Y: 5}}

		events := f.resolve(&b, sim.InputState{})

		require.Equal(t, []sim.Event{sim.PaddleHit(sim.Player1)}, events)
		assert.Equal(t, sim.Player1, b.Tint)
		assert.Equal(t, sim.Vector2{X: -50, Y: 5}, b.Velocity)
		assert.Equal(t, f.paddles[0].Box().Min.X-15, b.Position.X)
	}
}

func TestResolvePaddleHit(t *testing.T) {
	tests := []struct {
		name     string
		x, vx    float64
		owner    sim.Player
		wantVX   float64
		wantEdge func(sim.Rect) float64
	}{
		{"into player1", 425, 200, sim.Player1, -200, func(r sim.Rect) float64 { return r.Min.X - 10 }},
		{"into player2", -425, -200, sim.Player2, 200, func(r sim.Rect) float64 { return r.Max.X + 10 }},
		{"already leaving player1", 425, -200, sim.Player1, -200, func(r sim.Rect) float64 { return r.Min.X - 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResolverFixture(t, sim.DefaultConfig())
			b := sim.Ball{Position: sim.Vector2{X: tt.x, Y: 20}, Radius: 10, Velocity: sim.Vector2{X: tt.vx, Y: 30}}

			events := f.resolve(&b, sim.InputState{})

			require.Equal(t, []sim.Event{sim.PaddleHit(tt.owner)}, events)
			assert.Equal(t, tt.wantVX, b.Velocity.X)
			assert.Equal(t, 30.0, b.Velocity.Y)
			assert.Equal(t, tt.owner, b.Tint)
			assert.Equal(t, tt.wantEdge(f.paddles[tt.owner.Index()].Box()), b.Position.X)
		})
	}
}

func TestResolveMissesPaddle(t *testing.T) {
	f := newResolverFixture(t, sim.DefaultConfig())
	b := sim.Ball{Position: sim.Vector2{X: 425, Y: 200}, Radius: 10, Velocity: sim.Vector2{X: 200}}

	assert.Empty(t, f.resolve(&b, sim.InputState{}))
	assert.Equal(t, sim.PlayerNone, b.Tint)
}

func TestResolveGoal(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		scorer sim.Player
	}{
		{"touching right goal line", 470, sim.Player2},
		{"inside right goal", 500, sim.Player2},
		{"far beyond right goal", 5000, sim.Player2},
		{"touching left goal line", -470, sim.Player1},
		{"far beyond left goal", -5000, sim.Player1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResolverFixture(t, sim.DefaultConfig())
			// Above both paddles.
			b := sim.Ball{Position: sim.Vector2{X: tt.x, Y: 250}, Radius: 10}

			events := f.resolve(&b, sim.InputState{})

			assert.Equal(t, []sim.Event{sim.PointScored(tt.scorer), sim.BallReset(tt.scorer)}, events)
		})
	}
}

func TestResolveNoContactInOpenCourt(t *testing.T) {
	f := newResolverFixture(t, sim.DefaultConfig())
	rng := rand.New(rand.NewPCG(5, 5))

	for i := 0; i < 500; i++ {
		b := sim.Ball{
			Position: sim.Vector2{X: rng.Float64()*700 - 350, Y: rng.Float64()*500 - 250},
			Radius:   10,
		}
		require.Empty(t, f.resolve(&b, sim.InputState{}))
	}
}

func TestGoalReached(t *testing.T) {
	cfg := sim.DefaultConfig()
	right := sim.NewGoal(cfg, sim.Player1)
	left := sim.NewGoal(cfg, sim.Player2)

	assert.Equal(t, cfg.MaxX, right.Bounds.Min.X)
	assert.Equal(t, cfg.MaxX+cfg.GoalDepth, right.Bounds.Max.X)
	assert.Equal(t, cfg.MinX, left.Bounds.Max.X)

	box := sim.RectAround(sim.Vector2{X: 470}, sim.Vector2{X: 10, Y: 10})
	assert.True(t, right.Reached(box))
	assert.False(t, left.Reached(box))

	box = sim.RectAround(sim.Vector2{X: 469.9}, sim.Vector2{X: 10, Y: 10})
	assert.False(t, right.Reached(box))
}
