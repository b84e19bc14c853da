package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Match sounds
	SoundPaddleHit
	SoundWallBounce
	SoundGoal
	SoundServe
	SoundMatchWon
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Waveform selects the oscillator used to synthesize a tone.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveNoise
)

// ToneSpec describes a synthesized sound effect. The pitch slides linearly
// from Freq to EndFreq over Duration.
type ToneSpec struct {
	Wave     Waveform
	Freq     float64 // Hz
	EndFreq  float64 // Hz, 0 keeps Freq
	Duration float64 // seconds
	Volume   float64 // 0.0 - 1.0
}

// Note is one step of a synthesized melody. Freq 0 is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int     `toml:"sample_rate"`
	DefaultMusicVol   float64 `toml:"music_volume"`
	DefaultSFXVol     float64 `toml:"sfx_volume"`
	MusicFadeDuration int     `toml:"music_fade_frames"` // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	MenuMusic string
	MenuTheme []Note
	ThemeBPM  float64
	SFX       map[SoundID]ToneSpec
}

var Audio AudioConfig
var Sound SoundConfig

// Note frequencies used by the menu theme.
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
)

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuMusic: "menu-theme",
		ThemeBPM:  132,
		MenuTheme: []Note{
			{noteC4, 1}, {noteE4, 1}, {noteG4, 1}, {noteC5, 1},
			{noteB4, 1}, {noteG4, 1}, {noteE4, 2},
			{noteA4, 1}, {noteC5, 1}, {noteE5, 1}, {noteD5, 1},
			{noteC5, 1}, {noteA4, 1}, {noteG4, 1}, {0, 1},
		},
		SFX: map[SoundID]ToneSpec{
			SoundPaddleHit:    {Wave: WaveSquare, Freq: 440, Duration: 0.06, Volume: 0.5},
			SoundWallBounce:   {Wave: WaveSquare, Freq: 220, Duration: 0.05, Volume: 0.4},
			SoundGoal:         {Wave: WaveTriangle, Freq: 660, EndFreq: 110, Duration: 0.45, Volume: 0.7},
			SoundServe:        {Wave: WaveNoise, Freq: 0, Duration: 0.08, Volume: 0.25},
			SoundMatchWon:     {Wave: WaveTriangle, Freq: 330, EndFreq: 990, Duration: 0.8, Volume: 0.7},
			SoundMenuNavigate: {Wave: WaveSquare, Freq: 880, Duration: 0.03, Volume: 0.3},
			SoundMenuSelect:   {Wave: WaveSquare, Freq: 660, EndFreq: 990, Duration: 0.1, Volume: 0.4},
		},
	}
}
