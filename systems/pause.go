package systems

import (
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// quitRequested is polled by the game loop, which ends with ebiten.Termination.
var quitRequested bool

// RequestQuit asks the game loop to exit after the current update.
func RequestQuit() {
	quitRequested = true
}

// QuitRequested reports whether anything asked the game to exit.
func QuitRequested() bool {
	return quitRequested
}

// UpdatePause handles pause menu navigation. The pause toggle itself belongs
// to the simulation, so this must run AFTER UpdateMatch.
func UpdatePause(ecs *ecs.ECS) {
	match, ok := GetMatch(ecs)
	if !ok || match.Match.Phase() != sim.PhasePaused {
		return
	}
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuQuit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	PlaySFX(ecs, cfg.SoundMenuSelect)
	switch pause.SelectedOption {
	case components.MenuResume:
		if ev, ok := match.Match.TogglePause(); ok {
			HandleMatchEvents(ecs, []sim.Event{ev})
		}
	case components.MenuMainMenu:
		match.Match.ReturnToMenu()
	case components.MenuQuit:
		RequestQuit()
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	match, ok := GetMatch(ecs)
	if !ok || match.Match.Phase() != sim.PhasePaused {
		return
	}
	pause := GetOrCreatePause(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	titleFace := fonts.Title.Get()
	drawCentered(screen, "PAUSED", titleFace, width, int(startY)-int(cfg.Pause.MenuItemHeight), cfg.Pause.TextColorNormal)

	fontFace := fonts.Regular.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		drawCentered(screen, option, fontFace, width, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(ecs)
	drawCentered(screen, pauseHint(input.LastInputMethod), fonts.Small.Get(), width, int(height)-12, cfg.Pause.TextColorNormal)
}

func pauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   P: Resume"
}

// drawCentered draws s horizontally centered on a screen of the given width
// with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	x := int((width - float64(w)) / 2)
	text.Draw(screen, s, face, x, y, clr)
}

// WithPauseCheck wraps a system to skip execution unless the match is
// being played.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if match, ok := GetMatch(e); ok && match.Match.Phase() != sim.PhasePlaying {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
