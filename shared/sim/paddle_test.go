package sim_test

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/pong/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioPaddle() sim.Paddle {
	cfg := sim.DefaultConfig()
	cfg.PaddleSpeed = 100
	return sim.NewPaddle(cfg, sim.Player1)
}

func TestPaddleMoveUnclamped(t *testing.T) {
	p := scenarioPaddle()
	require.Equal(t, 0.0, p.Position.Y)

	p.Move(sim.Press(sim.ControlP1Up), 0.1)

	assert.InDelta(t, 10.0, p.Position.Y, 1e-9)
}

func TestPaddleMoveAtClampIsUnchanged(t *testing.T) {
	p := scenarioPaddle()
	p.Position.Y = p.MaxY

	p.Move(sim.Press(sim.ControlP1Up), 0.1)

	assert.Equal(t, p.MaxY, p.Position.Y)
}

func TestPaddleMove(t *testing.T) {
	tests := []struct {
		name  string
		owner sim.Player
		held  []sim.Control
		want  float64
	}{
		{"p1 down", sim.Player1, []sim.Control{sim.ControlP1Down}, -10},
		{"p1 both cancel", sim.Player1, []sim.Control{sim.ControlP1Up, sim.ControlP1Down}, 0},
		{"p1 ignores p2 keys", sim.Player1, []sim.Control{sim.ControlP2Up}, 0},
		{"p2 up", sim.Player2, []sim.Control{sim.ControlP2Up}, 10},
		{"p2 down", sim.Player2, []sim.Control{sim.ControlP2Down}, -10},
		{"idle", sim.Player2, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sim.DefaultConfig()
			cfg.PaddleSpeed = 100
			p := sim.NewPaddle(cfg, tt.owner)

			p.Move(sim.Press(tt.held...), 0.1)

			assert.InDelta(t, tt.want, p.Position.Y, 1e-9)
		})
	}
}

func TestPaddleStaysInsideField(t *testing.T) {
	cfg := sim.DefaultConfig()
	rng := rand.New(rand.NewPCG(7, 11))
	p := sim.NewPaddle(cfg, sim.Player2)

	for i := 0; i < 5000; i++ {
		var in sim.InputState
		in.Current[sim.ControlP2Up] = rng.IntN(2) == 0
		in.Current[sim.ControlP2Down] = rng.IntN(3) == 0
		p.Move(in, rng.Float64()*2)

		require.GreaterOrEqual(t, p.Position.Y, cfg.MinY+cfg.PaddleHalfExtent.Y)
		require.LessOrEqual(t, p.Position.Y, cfg.MaxY-cfg.PaddleHalfExtent.Y)
	}
}

func TestPaddleOutOfRangeSelfCorrects(t *testing.T) {
	p := scenarioPaddle()
	p.Position.Y = 10_000

	p.Move(sim.InputState{}, 0.016)

	assert.Equal(t, p.MaxY, p.Position.Y)
}

func TestNewPaddlePlacement(t *testing.T) {
	cfg := sim.DefaultConfig()

	right := sim.NewPaddle(cfg, sim.Player1)
	left := sim.NewPaddle(cfg, sim.Player2)

	assert.Equal(t, cfg.MaxX-cfg.PaddleInset, right.Position.X)
	assert.Equal(t, cfg.MinX+cfg.PaddleInset, left.Position.X)
	assert.Equal(t, sim.ControlP1Up, right.Up)
	assert.Equal(t, sim.ControlP2Down, left.Down)
}
