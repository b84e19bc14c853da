package config

import (
	"image/color"

	"github.com/automoto/pong/shared/sim"
)

// Config holds general game configuration
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// CourtConfig is the court geometry in screen pixels. The court is centred on
// the screen unless a court map supplies its own layout.
type CourtConfig struct {
	Map string `toml:"map"` // court map under assets/courts, empty for the built-in layout

	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleInset  float64 `toml:"paddle_inset"` // screen edge to paddle center
	PaddleSpeed  float64 `toml:"paddle_speed"` // pixels per second

	BallRadius float64 `toml:"ball_radius"`
	BallSpeed  float64 `toml:"ball_speed"` // pixels per second
	ServeAngle float64 `toml:"serve_angle"`

	GoalDepth   float64 `toml:"goal_depth"`
	CellSize    int     `toml:"cell_size"`
	TargetScore int     `toml:"target_score"` // 0 plays forever
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title             string
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColor         color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	ButtonWidth       int
	ButtonHeight      int
	ButtonSpacing     int
	MenuOptions       []string
	WinnerMessageTime float32 // seconds the "X wins" banner stays up
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// HUDConfig contains in-match drawing values
type HUDConfig struct {
	ScoreY          float64
	ScoreOffsetX    float64 // distance of each score from the center line
	CenterDash      float64
	CenterGap       float64
	CenterLineWidth float64
	CenterLineColor color.RGBA
	WallColor       color.RGBA
	WallThickness   float64
	HintColor       color.RGBA
	Hint            string
}

// EffectsConfig contains tween timings for cosmetic reactions to match events
type EffectsConfig struct {
	PaddleFlashDuration float32 // seconds
	ScorePopScale       float32
	ScorePopDuration    float32 // seconds, split between grow and shrink
	WallPulseDuration   float32 // seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool   `toml:"skip_menu"`      // Skip menu and go directly to a match
	ShowColliders bool   `toml:"show_colliders"` // Draw the broadphase space
	Seed          uint64 `toml:"seed"`           // Serve seed, 0 picks one from the clock
}

// Global configuration instances
var C *Config
var Court CourtConfig
var Menu MenuConfig
var Pause PauseConfig
var HUD HUDConfig
var Effects EffectsConfig
var Debug DebugConfig

// PlayerColors maps each side to its paddle and score color.
var PlayerColors map[sim.Player]color.RGBA

// PlayerNames is how each side is announced.
var PlayerNames map[sim.Player]string

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGrey     = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 230, G: 40, B: 40, A: 255}
	Blue         = color.RGBA{R: 40, G: 90, B: 240, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Red Vs Blue PONG!",
	}

	Court = CourtConfig{
		Map: "classic",

		PaddleWidth:  16,
		PaddleHeight: 100,
		PaddleInset:  40,
		PaddleSpeed:  420,

		BallRadius: 10,
		BallSpeed:  360,
		ServeAngle: 0.35,

		GoalDepth:   40,
		CellSize:    32,
		TargetScore: 0,
	}

	Menu = MenuConfig{
		Title:             "Red Vs Blue PONG!",
		BackgroundColor:   color.RGBA{R: 15, G: 15, B: 25, A: 255},
		TitleColor:        White,
		TextColor:         color.RGBA{R: 230, G: 230, B: 230, A: 255},
		ButtonIdle:        DarkGrey,
		ButtonHover:       color.RGBA{R: 77, G: 77, B: 77, A: 255},
		ButtonPressed:     Grey,
		ButtonWidth:       200,
		ButtonHeight:      56,
		ButtonSpacing:     16,
		MenuOptions:       []string{"Start", "Quit"},
		WinnerMessageTime: 3,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu", "Quit"},
	}

	HUD = HUDConfig{
		ScoreY:          56,
		ScoreOffsetX:    80,
		CenterDash:      18,
		CenterGap:       12,
		CenterLineWidth: 4,
		CenterLineColor: color.RGBA{R: 90, G: 90, B: 90, A: 255},
		WallColor:       color.RGBA{R: 200, G: 200, B: 200, A: 255},
		WallThickness:   4,
		HintColor:       color.RGBA{R: 140, G: 140, B: 140, A: 255},
		Hint:            "W/S  blue    Up/Down  red    Space serve    P pause",
	}

	Effects = EffectsConfig{
		PaddleFlashDuration: 0.25,
		ScorePopScale:       1.6,
		ScorePopDuration:    0.4,
		WallPulseDuration:   0.15,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}

	PlayerColors = map[sim.Player]color.RGBA{
		sim.PlayerNone: White,
		sim.Player1:    Red,
		sim.Player2:    Blue,
	}

	PlayerNames = map[sim.Player]string{
		sim.Player1: "Red",
		sim.Player2: "Blue",
	}
}

// MatchConfig converts the screen-space court settings into simulation
// geometry. The field fills the window with its origin at the center.
func MatchConfig() sim.Config {
	return matchConfig(*C, Court)
}

func matchConfig(window Config, court CourtConfig) sim.Config {
	halfW, halfH := float64(window.Width)/2, float64(window.Height)/2
	return sim.Config{
		MinX: -halfW, MaxX: halfW,
		MinY: -halfH, MaxY: halfH,

		PaddleHalfExtent: sim.Vector2{X: court.PaddleWidth / 2, Y: court.PaddleHeight / 2},
		PaddleInset:      court.PaddleInset,
		PaddleSpeed:      court.PaddleSpeed,

		BallRadius: court.BallRadius,
		BallSpeed:  court.BallSpeed,
		ServeAngle: court.ServeAngle,

		GoalDepth:   court.GoalDepth,
		CellSize:    court.CellSize,
		TargetScore: court.TargetScore,
	}
}
