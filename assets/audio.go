package assets

import (
	"bytes"
	"fmt"
	"io"

	"github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader synthesizes, decodes and caches the game's sounds
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders and decodes a sound effect and caches it without
// creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	// Already cached
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	spec, ok := config.Sound.SFX[id]
	if !ok {
		return fmt.Errorf("no sound registered for id %d", id)
	}

	decoded, err := l.decode(SynthTone(spec, l.context.SampleRate()))
	if err != nil {
		return fmt.Errorf("failed to decode sound %d: %w", id, err)
	}

	l.sfxCache[id] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// LoadMusic returns a looping player for the named track.
func (l *AudioLoader) LoadMusic(key string) (*audio.Player, error) {
	if key != config.Sound.MenuMusic {
		return nil, fmt.Errorf("unknown music track %q", key)
	}

	data := SynthMelody(config.Sound.MenuTheme, config.Sound.ThemeBPM, 0.35, l.context.SampleRate())
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music %s: %w", key, err)
	}

	// Create infinite loop for music
	loop := audio.NewInfiniteLoop(stream, stream.Length())

	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) decode(data []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio: %w", err)
	}
	return decoded, nil
}
