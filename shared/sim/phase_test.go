package sim_test

import (
	"testing"

	"github.com/automoto/pong/shared/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseMachine(t *testing.T) {
	var m sim.PhaseMachine
	require.Equal(t, sim.PhaseMainMenu, m.Current())

	_, ok := m.TogglePause()
	assert.False(t, ok, "pause is ignored in the menu")

	ev, err := m.Start()
	require.NoError(t, err)
	assert.Equal(t, sim.PhaseChanged(sim.PhaseMainMenu, sim.PhasePlaying), ev)

	_, err = m.Start()
	assert.ErrorIs(t, err, sim.ErrInvalidTransition)

	ev, ok = m.TogglePause()
	require.True(t, ok)
	assert.Equal(t, sim.PhaseChanged(sim.PhasePlaying, sim.PhasePaused), ev)

	_, err = m.Start()
	assert.ErrorIs(t, err, sim.ErrInvalidTransition)

	ev, ok = m.TogglePause()
	require.True(t, ok)
	assert.Equal(t, sim.PhaseChanged(sim.PhasePaused, sim.PhasePlaying), ev)

	ev, ok = m.ReturnToMenu()
	require.True(t, ok)
	assert.Equal(t, sim.PhaseMainMenu, ev.To)

	_, ok = m.ReturnToMenu()
	assert.False(t, ok)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "PointScored(Player2)", sim.PointScored(sim.Player2).String())
	assert.Equal(t, "PhaseChanged(Playing->Paused)", sim.PhaseChanged(sim.PhasePlaying, sim.PhasePaused).String())
	assert.Equal(t, "WallBounce", sim.WallBounce().String())
}
