package systems

import (
	"image/color"
	"strconv"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawScore renders each side's points above its half of the court. Red
// sits on the right like its paddle.
func DrawScore(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(ecs)
	if !ok {
		return
	}
	face := fonts.Score.Get()
	centerX := float64(screen.Bounds().Dx()) / 2

	for _, p := range sim.Players {
		x := centerX + cfg.HUD.ScoreOffsetX
		if p == sim.Player2 {
			x = centerX - cfg.HUD.ScoreOffsetX
		}
		drawScaled(screen, strconv.Itoa(match.Match.Score.Get(p)), face,
			x, cfg.HUD.ScoreY, float64(ScoreScale(ecs, p)), cfg.PlayerColors[p])
	}

	width := float64(screen.Bounds().Dx())
	height := screen.Bounds().Dy()
	drawCentered(screen, cfg.HUD.Hint, fonts.Small.Get(), width, height-10, cfg.HUD.HintColor)
}

// drawScaled draws s centred on x with its baseline at y, scaled about that
// point.
func drawScaled(screen *ebiten.Image, s string, face font.Face, x, y, scale float64, clr color.Color) {
	w := float64(font.MeasureString(face, s).Ceil())

	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(-w/2, 0)
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(x, y)
	hudDrawOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, hudDrawOp)
}
