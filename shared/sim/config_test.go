package sim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/pong/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sim.Config)
		field  string
	}{
		{"inverted y", func(c *sim.Config) { c.MinY, c.MaxY = 10, -10 }, "MinY"},
		{"empty y", func(c *sim.Config) { c.MinY, c.MaxY = 5, 5 }, "MinY"},
		{"inverted x", func(c *sim.Config) { c.MinX = c.MaxX }, "MinX"},
		{"negative radius", func(c *sim.Config) { c.BallRadius = -1 }, "BallRadius"},
		{"huge radius", func(c *sim.Config) { c.BallRadius = 1000 }, "BallRadius"},
		{"negative ball speed", func(c *sim.Config) { c.BallSpeed = -3 }, "BallSpeed"},
		{"negative paddle speed", func(c *sim.Config) { c.PaddleSpeed = -3 }, "PaddleSpeed"},
		{"flat paddle", func(c *sim.Config) { c.PaddleHalfExtent.Y = 0 }, "PaddleHalfExtent"},
		{"tall paddle", func(c *sim.Config) { c.PaddleHalfExtent.Y = 300 }, "PaddleHalfExtent.Y"},
		{"paddle off court", func(c *sim.Config) { c.PaddleInset = 2 }, "PaddleInset"},
		{"no goal", func(c *sim.Config) { c.GoalDepth = 0 }, "GoalDepth"},
		{"no cells", func(c *sim.Config) { c.CellSize = 0 }, "CellSize"},
		{"negative target", func(c *sim.Config) { c.TargetScore = -1 }, "TargetScore"},
		{"nan", func(c *sim.Config) { c.MaxY = math.NaN() }, "MaxY"},
		{"inf", func(c *sim.Config) { c.BallSpeed = math.Inf(1) }, "BallSpeed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sim.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, sim.ErrInvalidConfig)
			var cfgErr *sim.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)

			m, err := sim.NewMatch(cfg, newRand(1))
			assert.Nil(t, m)
			assert.ErrorIs(t, err, sim.ErrInvalidConfig)
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, sim.DefaultConfig().Validate())
}

func TestHeading(t *testing.T) {
	cfg := sim.DefaultConfig()

	h1 := cfg.Heading(sim.Player1)
	h2 := cfg.Heading(sim.Player2)

	assert.Greater(t, h1.X, 0.0)
	assert.Equal(t, h1.Neg(), h2)
	assert.InDelta(t, cfg.BallSpeed, h1.Len(), 1e-9)
}
