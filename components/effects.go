package components

import (
	"github.com/automoto/pong/shared/sim"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData brightens a paddle after it returns the ball. Amount fades 1 -> 0.
type FlashData struct {
	Tween  *gween.Tween
	Amount float32
}

var Flash = donburi.NewComponentType[FlashData]()

// ScorePopData scales a player's score up and back down after a point.
type ScorePopData struct {
	Owner    sim.Player
	Sequence *gween.Sequence
	Scale    float32
}

var ScorePop = donburi.NewComponentType[ScorePopData]()

// WallPulseData lights the top or bottom wall after a bounce.
type WallPulseData struct {
	Tween  *gween.Tween
	Amount float32
	Top    bool
}

var WallPulse = donburi.NewComponentType[WallPulseData]()
