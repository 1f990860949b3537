package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// AtlasSpec lists the sprite sheets and the frame identifiers they hold.
type AtlasSpec struct {
	Sheets []SheetSpec `yaml:"sheets"`
}

// SheetSpec describes one image file. Frames are laid out row-major in
// FrameW x FrameH cells; a sheet with no frame size is a single image named
// by its only frame.
type SheetSpec struct {
	File   string   `yaml:"file"`
	FrameW int      `yaml:"frame_w"`
	FrameH int      `yaml:"frame_h"`
	Frames []string `yaml:"frames"`
}

func LoadAtlasSpec() (AtlasSpec, error) {
	return LoadSpec[AtlasSpec]("atlas.yaml")
}

// AudioSpec maps cue names to embedded audio files.
type AudioSpec struct {
	Music  []AudioClipSpec `yaml:"music"`
	Sounds []AudioClipSpec `yaml:"sounds"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

func LoadAudioSpec() (AudioSpec, error) {
	return LoadSpec[AudioSpec]("audio.yaml")
}
