package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ./configs/trophydash.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(LocalPath)
	switch {
	case err == nil:
		cfg, perr := parse(data)
		if perr == nil {
			return cfg, nil
		}
		log.Warn("ignoring unreadable local config", "path", LocalPath, "err", perr)
	case !errors.Is(err, fs.ErrNotExist):
		log.Warn("ignoring unreadable local config", "path", LocalPath, "err", err)
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
