package archetypes

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Paddle = newArchetype(
		tags.Paddle,
		components.Paddle,
		components.Body,
		components.Flash,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Body,
	)
	ScorePop = newArchetype(
		tags.Effect,
		components.ScorePop,
	)
	WallPulse = newArchetype(
		tags.Effect,
		components.WallPulse,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
