package systems

import (
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// bannerFadeTime is the tail of the banner's display time spent fading out.
const bannerFadeTime = 0.5

// NewUpdateMenu creates the main menu system. Keyboard and gamepad move the
// selection; activate runs the chosen option, the same callback the mouse
// buttons use.
func NewUpdateMenu(activate func(components.MainMenuOption)) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		updateBanner(menu, float32(FrameTime()))

		numOptions := int(components.MainMenuQuit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.Selected = components.MainMenuOption((int(menu.Selected) - 1 + numOptions) % numOptions)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.Selected = components.MainMenuOption((int(menu.Selected) + 1) % numOptions)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			activate(menu.Selected)
		}
	}
}

// ShowBanner puts msg under the title. It stays fully visible for most of
// the configured time and then fades out.
func ShowBanner(e *ecs.ECS, msg string, clr color.RGBA) {
	menu := GetOrCreateMenu(e)
	menu.Banner = msg
	menu.BannerColor = clr
	menu.BannerAlpha = 0
	if msg == "" {
		menu.BannerFade = nil
		return
	}
	menu.BannerAlpha = 1
	menu.BannerFade = gween.New(cfg.Menu.WinnerMessageTime, 0, cfg.Menu.WinnerMessageTime, ease.Linear)
}

func updateBanner(menu *components.MenuData, dt float32) {
	if menu.BannerFade == nil {
		return
	}
	remaining, finished := menu.BannerFade.Update(dt)
	menu.BannerAlpha = bannerAlpha(remaining)
	if finished {
		menu.BannerFade = nil
		menu.Banner = ""
		menu.BannerAlpha = 0
	}
}

// bannerAlpha maps the remaining display time to opacity.
func bannerAlpha(remaining float32) float32 {
	if remaining >= bannerFadeTime {
		return 1
	}
	if remaining <= 0 {
		return 0
	}
	return remaining / bannerFadeTime
}

// DrawMenuBanner renders the winner banner over the menu UI.
func DrawMenuBanner(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	if menu.Banner == "" || menu.BannerAlpha <= 0 {
		return
	}

	face := fonts.Title.Get()
	width := float64(screen.Bounds().Dx())
	y := float64(screen.Bounds().Dy()) / 4
	drawScaled(screen, menu.Banner, face, width/2, y, 1, fade(menu.BannerColor, menu.BannerAlpha))
}

// fade scales a color by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Selected: components.MainMenuStart,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
