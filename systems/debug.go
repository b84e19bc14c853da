package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broadphase object and prints the tick, phase and
// ball state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}

	resolver := match.Match.Resolver()
	origin := resolver.Origin()
	for _, obj := range resolver.Space().Objects() {
		// Space objects are stored relative to origin with y up
		x, y := ToScreen(match, sim.Vector2{X: obj.X + origin.X, Y: obj.Y + obj.H + origin.Y})

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(sim.TagPaddle) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(sim.TagGoal) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	ball := match.Match.Ball
	info := fmt.Sprintf("tick %d  %s  ball (%.0f, %.0f) v (%.0f, %.0f)",
		match.Ticks, match.Match.Phase(),
		ball.Position.X, ball.Position.Y, ball.Velocity.X, ball.Velocity.Y)
	text.Draw(screen, info, fonts.Small.Get(), 8, 16, color.White)
}
