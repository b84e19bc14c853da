package systems

import (
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ToScreen converts a field position to screen pixels. Courts loaded from a
// map keep the map's placement; otherwise the field is centred.
func ToScreen(match *components.MatchData, v sim.Vector2) (x, y float64) {
	if match.Court != nil {
		return match.Court.ToScreen(v)
	}
	return float64(cfg.C.Width)/2 + v.X, float64(cfg.C.Height)/2 - v.Y
}

// DrawCourt renders the background, the walls and the center line.
func DrawCourt(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	screen.Fill(cfg.Menu.BackgroundColor)

	field := match.Match.Field
	left, top := ToScreen(match, sim.Vector2{X: field.Min.X, Y: field.Max.Y})
	right, bottom := ToScreen(match, field.Min.Add(sim.Vector2{X: field.Width()}))
	thick := cfg.HUD.WallThickness

	vector.FillRect(screen, float32(left), float32(top-thick), float32(right-left), float32(thick),
		brighten(cfg.HUD.WallColor, WallGlow(ecs, true)), false)
	vector.FillRect(screen, float32(left), float32(bottom), float32(right-left), float32(thick),
		brighten(cfg.HUD.WallColor, WallGlow(ecs, false)), false)

	// Dashed center line
	cx := float32((left+right)/2 - cfg.HUD.CenterLineWidth/2)
	for y := top; y < bottom; y += cfg.HUD.CenterDash + cfg.HUD.CenterGap {
		h := cfg.HUD.CenterDash
		if y+h > bottom {
			h = bottom - y
		}
		vector.FillRect(screen, cx, float32(y), float32(cfg.HUD.CenterLineWidth), float32(h), cfg.HUD.CenterLineColor, false)
	}
}

// DrawPaddles renders both paddles in their side's color, flashing white
// after a return.
func DrawPaddles(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		flash := components.Flash.Get(e)

		x, y := ToScreen(match, sim.Vector2{
			X: body.Center.X - body.HalfExtent.X,
			Y: body.Center.Y + body.HalfExtent.Y,
		})
		vector.FillRect(screen,
			float32(x), float32(y),
			float32(2*body.HalfExtent.X), float32(2*body.HalfExtent.Y),
			brighten(body.Color, flash.Amount), false)
	})
}

// DrawBall renders the ball tinted by whoever touched it last.
func DrawBall(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	e, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	body := components.Body.Get(e)
	x, y := ToScreen(match, body.Center)
	vector.FillCircle(screen, float32(x), float32(y), float32(body.HalfExtent.X), body.Color, true)
}

// brighten mixes c toward white by amount (0 to 1).
func brighten(c color.RGBA, amount float32) color.RGBA {
	if amount <= 0 {
		return c
	}
	if amount > 1 {
		amount = 1
	}
	mix := func(v uint8) uint8 {
		return v + uint8(float32(255-v)*amount)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
