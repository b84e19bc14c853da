package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"strings"

	"github.com/automoto/pong/assets"
	"github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/scenes"
	"github.com/automoto/pong/shared/sim"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(setup scenes.MatchSetup) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewCourtScene(g, setup)
	} else {
		g.scene = scenes.NewMenuScene(g, setup)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if systems.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the built-in settings")
	court := flag.String("court", "", "Court map under assets/courts (overrides the config file)")
	seed := flag.Uint64("seed", 0, "Serve seed (0 = random every match)")
	skipMenu := flag.Bool("skip-menu", false, "Start straight into a match")
	debug := flag.Bool("debug", false, "Draw colliders and tick info")
	target := flag.Int("target", -1, "Points needed to win (0 = endless, -1 = from config/court)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *debug {
		config.Debug.ShowColliders = true
	}
	if *seed != 0 {
		config.Debug.Seed = *seed
	}
	if *court != "" {
		config.Court.Map = *court
	}

	setup := scenes.MatchSetup{
		Seed:        config.Debug.Seed,
		TargetScore: *target,
	}
	if config.Court.Map != "" {
		layout, err := assets.LoadCourt(config.Court.Map)
		if err != nil {
			log.Fatalf("Failed to load court %q: %v (available: %s)", config.Court.Map, err, courtNames())
		}
		// The screen is the map
		config.C.Width, config.C.Height = layout.MapWidth, layout.MapHeight
		setup.Court = layout
	}
	if err := setup.Config().Validate(); err != nil {
		var cerr *sim.ConfigError
		if errors.As(err, &cerr) {
			log.Fatalf("Invalid court settings (%s): %v", cerr.Field, err)
		}
		log.Fatalf("Invalid court settings: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.InitSettings()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(setup)); err != nil {
		log.Fatal(err)
	}
}

// courtNames lists the embedded courts for error messages.
func courtNames() string {
	courts, err := assets.LoadCourts()
	if err != nil {
		return err.Error()
	}
	names := make([]string, 0, len(courts))
	for _, c := range courts {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}
