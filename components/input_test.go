package components

import (
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/stretchr/testify/assert"
)

func TestSimInputProjectsBothFrames(t *testing.T) {
	var d InputData
	d.Advance([cfg.ActionCount]bool{cfg.ActionP1Up: true, cfg.ActionPause: true})
	d.Advance([cfg.ActionCount]bool{cfg.ActionP1Up: true, cfg.ActionServe: true, cfg.ActionMenuUp: true})

	in := d.SimInput()
	assert.True(t, in.Held(sim.ControlP1Up))
	assert.False(t, in.JustPressed(sim.ControlP1Up))
	assert.True(t, in.JustPressed(sim.ControlServe))
	assert.True(t, in.JustReleased(sim.ControlPause))
	assert.False(t, in.Held(sim.ControlP2Up))
}
