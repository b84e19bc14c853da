package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// current is shared by every scene so toggles survive scene changes.
var current = components.SettingsData{
	MusicVolume: cfg.Audio.DefaultMusicVol,
	SFXVolume:   cfg.Audio.DefaultSFXVol,
}

// InitSettings resets the shared settings to the configured defaults. Call it
// after config files and flags are applied.
func InitSettings() {
	current = components.SettingsData{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
		Debug:       cfg.Debug.ShowColliders,
	}
	applyVolumes(nil, current)
}

// UpdateSettings handles the global hotkeys: mute, fullscreen, debug overlay
// and volume steps. Every change is written to disk.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionVolumeDown).JustPressed {
		settings.MusicVolume = StepVolume(settings.MusicVolume, -1)
		settings.SFXVolume = StepVolume(settings.SFXVolume, -1)
		changed = true
	}
	if GetAction(input, cfg.ActionVolumeUp).JustPressed {
		settings.MusicVolume = StepVolume(settings.MusicVolume, 1)
		settings.SFXVolume = StepVolume(settings.SFXVolume, 1)
		changed = true
	}
	if !changed {
		return
	}

	current = *settings
	applyVolumes(e, current)
	SaveCurrentSettings(settings)
}

// StepVolume moves v to the next configured volume step in direction dir,
// stopping at the ends.
func StepVolume(v float64, dir int) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return v
	}
	// Snap to the nearest step first
	idx := 0
	for i, s := range steps {
		if abs(s-v) < abs(steps[idx]-v) {
			idx = i
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	return steps[idx]
}

func applyVolumes(e *ecs.ECS, s components.SettingsData) {
	if s.Muted {
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
		return
	}
	SetMusicVolume(e, s.MusicVolume)
	SetSFXVolume(e, s.SFXVolume)
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the shared settings.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, current)
	}
	return components.Settings.Get(entry)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
