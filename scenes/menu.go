package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
	setup        MatchSetup
	winner       sim.Player
	banner       string
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, setup MatchSetup) *MenuScene {
	return &MenuScene{sceneChanger: sc, setup: setup}
}

// NewMenuSceneWithResult creates a menu scene announcing how the last match
// ended. An empty banner shows nothing.
func NewMenuSceneWithResult(sc SceneChanger, setup MatchSetup, winner sim.Player, banner string) *MenuScene {
	return &MenuScene{sceneChanger: sc, setup: setup, winner: winner, banner: banner}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.Draw(screen, systems.GetOrCreateMenu(ms.ecs).Selected)
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.menuUI = ui.NewMenuUI(ms.activate)

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSettings)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.activate))

	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawMenuBanner)

	systems.PrimeInput(ms.ecs)
	systems.ShowBanner(ms.ecs, ms.banner, cfg.PlayerColors[ms.winner])

	// Start menu music
	systems.PlayMusic(ms.ecs, cfg.Sound.MenuMusic)
}

func (ms *MenuScene) activate(option components.MainMenuOption) {
	switch option {
	case components.MainMenuStart:
		systems.FadeOutMusic(ms.ecs)
		ms.sceneChanger.ChangeScene(NewCourtScene(ms.sceneChanger, ms.setup))
	case components.MainMenuQuit:
		systems.RequestQuit()
	}
}
