package scenes

import (
	"testing"

	"github.com/automoto/pong/assets"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupConfigFollowsCourtAndOverride(t *testing.T) {
	long, err := assets.LoadCourt("long")
	require.NoError(t, err)

	base := MatchSetup{TargetScore: -1}
	assert.Equal(t, cfg.MatchConfig(), base.Config())

	onCourt := MatchSetup{Court: long, TargetScore: -1}
	assert.Equal(t, long.Apply(cfg.MatchConfig()), onCourt.Config())

	forced := MatchSetup{Court: long, TargetScore: 3}
	assert.Equal(t, 3, forced.Config().TargetScore)

	endless := MatchSetup{Court: long, TargetScore: 0}
	assert.Zero(t, endless.Config().TargetScore)
}

func TestSeededSetupsServeAlike(t *testing.T) {
	setup := MatchSetup{Seed: 7, TargetScore: -1}

	a, err := setup.NewMatch()
	require.NoError(t, err)
	b, err := setup.NewMatch()
	require.NoError(t, err)

	_, err = a.Start()
	require.NoError(t, err)
	_, err = b.Start()
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestNewMatchNamesTheCourt(t *testing.T) {
	classic, err := assets.LoadCourt("classic")
	require.NoError(t, err)

	prev := cfg.Court
	t.Cleanup(func() { cfg.Court = prev })
	cfg.Court.BallSpeed = -1

	_, err = MatchSetup{Court: classic, TargetScore: -1}.NewMatch()
	require.Error(t, err)
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "classic")
}
