package systems

import (
	"fmt"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// UpdateMatch advances the simulation by one frame and reacts to what it
// reports. Pause is handled inside the simulation, so this system is never
// wrapped in WithGameplayChecks.
func UpdateMatch(e *ecs.ECS) {
	match, ok := GetMatch(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	match.Events = match.Match.Step(input.SimInput(), FrameTime())
	if match.Match.Phase() == sim.PhasePlaying {
		match.Ticks++
	}
	HandleMatchEvents(e, match.Events)
}

// HandleMatchEvents turns simulation events into sounds, effects and music
// changes.
func HandleMatchEvents(e *ecs.ECS, events []sim.Event) {
	match, _ := GetMatch(e)
	for _, sound := range SoundsFor(events) {
		PlaySFX(e, sound)
	}

	for _, ev := range events {
		switch ev.Kind {
		case sim.EventPaddleHit:
			TriggerPaddleFlash(e, ev.Player)
		case sim.EventWallBounce:
			if match != nil {
				TriggerWallPulse(e, match.Match.Ball.Position.Y > 0)
			}
		case sim.EventPointScored:
			TriggerScorePop(e, ev.Player)
		case sim.EventMatchWon:
			if match != nil {
				match.Winner = ev.Player
			}
		case sim.EventPhaseChanged:
			switch {
			case ev.To == sim.PhasePaused:
				GetOrCreatePause(e).SelectedOption = components.MenuResume
				PauseMusic(e)
			case ev.From == sim.PhasePaused && ev.To == sim.PhasePlaying:
				ResumeMusic(e)
			}
		}
	}
}

// SoundsFor lists the sound effects for one frame of events. A ball reset
// that follows a point is covered by the goal sound.
func SoundsFor(events []sim.Event) []cfg.SoundID {
	scored := sim.CountEvents(events, sim.EventPointScored) > 0

	var sounds []cfg.SoundID
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventPaddleHit:
			sounds = append(sounds, cfg.SoundPaddleHit)
		case sim.EventWallBounce:
			sounds = append(sounds, cfg.SoundWallBounce)
		case sim.EventPointScored:
			sounds = append(sounds, cfg.SoundGoal)
		case sim.EventBallReset:
			if !scored {
				sounds = append(sounds, cfg.SoundServe)
			}
		case sim.EventMatchWon:
			sounds = append(sounds, cfg.SoundMatchWon)
		}
	}
	return sounds
}

// NewUpdateMatchExit creates a system that leaves the court once the match is
// back in the main menu phase, either because someone won or because the
// pause menu asked for it.
func NewUpdateMatchExit(sceneChanger SceneChanger, createMenuScene func(winner sim.Player, banner string) interface{}) ecs.System {
	left := false
	return func(e *ecs.ECS) {
		match, ok := GetMatch(e)
		if !ok || left || match.Match.Phase() != sim.PhaseMainMenu {
			return
		}
		left = true
		sceneChanger.ChangeScene(createMenuScene(match.Winner, WinnerBanner(match)))
	}
}

// WinnerBanner is the message the menu shows after a match, empty when the
// match was abandoned.
func WinnerBanner(match *components.MatchData) string {
	if !match.Winner.Valid() {
		return ""
	}
	score := match.Match.Score
	return fmt.Sprintf("%s wins %d - %d!",
		cfg.PlayerNames[match.Winner],
		score.Get(match.Winner),
		score.Get(match.Winner.Opponent()),
	)
}

// GetMatch returns the singleton Match component.
func GetMatch(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

// SetMatch stores m as the scene's match, replacing any previous one.
func SetMatch(e *ecs.ECS, data components.MatchData) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Match))
	}
	components.Match.SetValue(entry, data)
	return components.Match.Get(entry)
}

// FrameTime is the simulated duration of one update in seconds.
func FrameTime() float64 {
	return 1 / float64(ebiten.TPS())
}
