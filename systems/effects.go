package systems

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the cosmetic tweens started by match events and
// removes the ones that have finished.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(FrameTime())
	updateFlashEffects(ecs, dt)
	updateScorePops(ecs, dt)
	updateWallPulses(ecs, dt)
}

func updateFlashEffects(ecs *ecs.ECS, dt float32) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		amount, finished := flash.Tween.Update(dt)
		flash.Amount = amount
		if finished {
			flash.Tween = nil
			flash.Amount = 0
		}
	})
}

func updateScorePops(ecs *ecs.ECS, dt float32) {
	var toRemove []*donburi.Entry

	components.ScorePop.Each(ecs.World, func(e *donburi.Entry) {
		pop := components.ScorePop.Get(e)
		scale, _, done := pop.Sequence.Update(dt)
		pop.Scale = scale
		if done {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

func updateWallPulses(ecs *ecs.ECS, dt float32) {
	var toRemove []*donburi.Entry

	components.WallPulse.Each(ecs.World, func(e *donburi.Entry) {
		pulse := components.WallPulse.Get(e)
		amount, finished := pulse.Tween.Update(dt)
		pulse.Amount = amount
		if finished {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

// TriggerPaddleFlash brightens p's paddle.
func TriggerPaddleFlash(ecs *ecs.ECS, p sim.Player) {
	components.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		if components.Paddle.Get(e).Owner != p {
			return
		}
		flash := components.Flash.Get(e)
		flash.Tween = gween.New(1, 0, cfg.Effects.PaddleFlashDuration, ease.OutQuad)
		flash.Amount = 1
	})
}

// TriggerScorePop grows p's score digits and shrinks them back. A pop
// already running for p is restarted.
func TriggerScorePop(ecs *ecs.ECS, p sim.Player) {
	half := cfg.Effects.ScorePopDuration / 2
	peak := cfg.Effects.ScorePopScale
	seq := gween.NewSequence(
		gween.New(1, peak, half, ease.OutBack),
		gween.New(peak, 1, half, ease.InQuad),
	)

	var existing *donburi.Entry
	components.ScorePop.Each(ecs.World, func(e *donburi.Entry) {
		if components.ScorePop.Get(e).Owner == p {
			existing = e
		}
	})
	if existing == nil {
		existing = archetypes.ScorePop.Spawn(ecs)
	}
	components.ScorePop.SetValue(existing, components.ScorePopData{
		Owner:    p,
		Sequence: seq,
		Scale:    1,
	})
}

// TriggerWallPulse lights the top or bottom wall.
func TriggerWallPulse(ecs *ecs.ECS, top bool) {
	e := archetypes.WallPulse.Spawn(ecs)
	components.WallPulse.SetValue(e, components.WallPulseData{
		Tween:  gween.New(1, 0, cfg.Effects.WallPulseDuration, ease.OutQuad),
		Amount: 1,
		Top:    top,
	})
}

// ScoreScale returns the current pop scale for p's score, 1 when idle.
func ScoreScale(ecs *ecs.ECS, p sim.Player) float32 {
	scale := float32(1)
	components.ScorePop.Each(ecs.World, func(e *donburi.Entry) {
		if pop := components.ScorePop.Get(e); pop.Owner == p {
			scale = pop.Scale
		}
	})
	return scale
}

// WallGlow returns how lit the top or bottom wall is, 0 to 1.
func WallGlow(ecs *ecs.ECS, top bool) float32 {
	var glow float32
	components.WallPulse.Each(ecs.World, func(e *donburi.Entry) {
		if pulse := components.WallPulse.Get(e); pulse.Top == top && pulse.Amount > glow {
			glow = pulse.Amount
		}
	})
	return glow
}
