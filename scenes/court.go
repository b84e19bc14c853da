package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CourtScene runs one match from serve to winner
type CourtScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        MatchSetup
	once         sync.Once
}

// NewCourtScene creates a court scene that starts a match on first update
func NewCourtScene(sc SceneChanger, setup MatchSetup) *CourtScene {
	return &CourtScene{sceneChanger: sc, setup: setup}
}

func (cs *CourtScene) Update() {
	cs.once.Do(cs.configure)
	if cs.ecs == nil {
		return
	}
	cs.ecs.Update()
}

func (cs *CourtScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CourtScene) configure() {
	// Preload assets to avoid lag on the first hit
	systems.PreloadAllSFX()

	match, err := cs.setup.NewMatch()
	if err != nil {
		log.Printf("Warning: Could not build match: %v", err)
		cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger, cs.setup))
		return
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// The match handles its own pause toggle; the pause menu reads the result
	ecs.AddSystem(systems.UpdateMatch)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateBodies)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.NewUpdateMatchExit(cs.sceneChanger, func(winner sim.Player, banner string) interface{} {
		return NewMenuSceneWithResult(cs.sceneChanger, cs.setup, winner, banner)
	}))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawCourt)
	ecs.AddRenderer(cfg.Default, systems.DrawPaddles)
	ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ecs.AddRenderer(cfg.Default, systems.DrawScore)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	cs.ecs = ecs
	systems.PrimeInput(cs.ecs)

	data := systems.SpawnCourt(cs.ecs, components.MatchData{
		Match: match,
		Court: cs.setup.Court,
	})
	events, err := data.Match.Start()
	if err != nil {
		log.Printf("Warning: Could not start match: %v", err)
		return
	}
	data.Events = events
	systems.HandleMatchEvents(cs.ecs, events)
	systems.UpdateBodies(cs.ecs)
}
