package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

//go:embed *.png *.wav
var assetsFS embed.FS

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context. Ebiten allows only
// one, so it is created on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// DecodeImage decodes an embedded image without touching the GPU.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadAudioStream decodes an embedded wav at the context sample rate.
func LoadAudioStream(path string) (*wav.Stream, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(cleanAssetPath(path)), ".wav") {
		return nil, fmt.Errorf("decode audio %q: only wav is supported", path)
	}
	stream, err := wav.DecodeWithSampleRate(AudioContext().SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return stream, nil
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	stream, err := LoadAudioStream(path)
	if err != nil {
		return nil, err
	}
	return AudioContext().NewPlayer(stream)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
