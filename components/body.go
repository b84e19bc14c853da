package components

import (
	"image/color"

	"github.com/automoto/pong/shared/sim"
	"github.com/yohamta/donburi"
)

// BodyData mirrors a simulated box for drawing. Positions are in field space.
type BodyData struct {
	Center     sim.Vector2
	HalfExtent sim.Vector2
	Color      color.RGBA
}

var Body = donburi.NewComponentType[BodyData]()

// PaddleData links a paddle entity to its side.
type PaddleData struct {
	Owner sim.Player
}

var Paddle = donburi.NewComponentType[PaddleData]()
