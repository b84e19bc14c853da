package systems

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnCourt stores the match and creates the drawable paddle and ball
// entities for it.
func SpawnCourt(ecs *ecs.ECS, data components.MatchData) *components.MatchData {
	match := SetMatch(ecs, data)

	for _, p := range sim.Players {
		e := archetypes.Paddle.Spawn(ecs)
		components.Paddle.SetValue(e, components.PaddleData{Owner: p})
	}
	archetypes.Ball.Spawn(ecs)

	UpdateBodies(ecs)
	return match
}

// UpdateBodies copies paddle and ball boxes out of the simulation. The
// simulation stays the only writer of positions.
func UpdateBodies(ecs *ecs.ECS) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	m := match.Match

	components.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		paddle := m.Paddle(components.Paddle.Get(e).Owner)
		components.Body.SetValue(e, components.BodyData{
			Center:     paddle.Position,
			HalfExtent: paddle.HalfExtent,
			Color:      cfg.PlayerColors[paddle.Owner],
		})
	})

	if e, ok := tags.Ball.First(ecs.World); ok {
		components.Body.SetValue(e, components.BodyData{
			Center:     m.Ball.Position,
			HalfExtent: sim.Vector2{X: m.Ball.Radius, Y: m.Ball.Radius},
			Color:      cfg.PlayerColors[m.Ball.Tint],
		})
	}
}
