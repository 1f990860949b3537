// Package config loads the runtime configuration: window, audio defaults
// and the random seed. Entity tuning lives in prefabs, not here.
package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/trophydash.yaml
var defaultYAML []byte

// LocalPath is checked when no explicit path is given.
const LocalPath = "configs/trophydash.yaml"

type Config struct {
	Window WindowConfig `yaml:"window"`
	Audio  AudioConfig  `yaml:"audio"`
	Seed   int64        `yaml:"seed"`
	Debug  bool         `yaml:"debug"`
	Watch  bool         `yaml:"watch"`
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// AudioConfig holds the initial audio flags and master volumes.
type AudioConfig struct {
	MusicOn     bool    `yaml:"music_on"`
	SoundOn     bool    `yaml:"sound_on"`
	MusicVolume float64 `yaml:"music_volume"`
	SoundVolume float64 `yaml:"sound_volume"`
}

// Default returns the hardcoded configuration used when even the embedded
// YAML cannot be parsed.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "Trophy Dash", Scale: 1},
		Audio: AudioConfig{
			MusicOn:     true,
			SoundOn:     true,
			MusicVolume: 0.6,
			SoundVolume: 0.8,
		},
	}
}

func (c Config) Validate() error {
	if c.Window.Scale <= 0 {
		return fmt.Errorf("config: window scale must be positive, got %v", c.Window.Scale)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("config: music volume %v outside [0, 1]", c.Audio.MusicVolume)
	}
	if c.Audio.SoundVolume < 0 || c.Audio.SoundVolume > 1 {
		return fmt.Errorf("config: sound volume %v outside [0, 1]", c.Audio.SoundVolume)
	}
	return nil
}
