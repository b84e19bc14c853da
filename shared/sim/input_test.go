package sim_test

import (
	"testing"

	"github.com/automoto/pong/shared/sim"
	"github.com/stretchr/testify/assert"
)

func TestInputStateEdges(t *testing.T) {
	var in sim.InputState

	in.Advance([sim.ControlCount]bool{sim.ControlServe: true})
	assert.True(t, in.Held(sim.ControlServe))
	assert.True(t, in.JustPressed(sim.ControlServe))

	in.Advance([sim.ControlCount]bool{sim.ControlServe: true})
	assert.True(t, in.Held(sim.ControlServe))
	assert.False(t, in.JustPressed(sim.ControlServe))

	in.Advance([sim.ControlCount]bool{})
	assert.False(t, in.Held(sim.ControlServe))
	assert.True(t, in.JustReleased(sim.ControlServe))
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "pause", sim.ControlPause.String())
	assert.Equal(t, "unknown", sim.ControlCount.String())
}
