package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional TOML override file. Every table and key is
// optional; absent keys keep their built-in values.
type fileConfig struct {
	Window Config      `toml:"window"`
	Court  CourtConfig `toml:"court"`
	Audio  AudioConfig `toml:"audio"`
	Debug  DebugConfig `toml:"debug"`
}

// LoadFile merges the TOML file at path over the current configuration.
// Unknown keys and court geometry the simulation would reject are errors, and
// on error the current configuration is left untouched.
func LoadFile(path string) error {
	f := fileConfig{
		Window: *C,
		Court:  Court,
		Audio:  Audio,
		Debug:  Debug,
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("config %s: window size %dx%d must be positive", path, f.Window.Width, f.Window.Height)
	}
	if err := matchConfig(f.Window, f.Court).Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if f.Audio.SampleRate <= 0 {
		return fmt.Errorf("config %s: audio sample_rate must be positive", path)
	}

	*C = f.Window
	Court = f.Court
	Audio = f.Audio
	Debug = f.Debug
	return nil
}
