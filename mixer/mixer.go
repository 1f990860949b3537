package mixer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/trophydash/assets"
	"github.com/milk9111/trophydash/prefabs"
)

// Mixer plays the cues listed in the embedded audio spec through ebiten.
// Sound cues restart from the beginning on every play; music loops until
// stopped.
type Mixer struct {
	sounds  map[string]*audio.Player
	music   map[string]*audio.Player
	current *audio.Player
}

// New decodes every clip up front. musicVolume and soundVolume scale the
// per-clip volumes from the spec.
func New(musicVolume, soundVolume float64) (*Mixer, error) {
	spec, err := prefabs.LoadAudioSpec()
	if err != nil {
		return nil, fmt.Errorf("mixer: %w", err)
	}

	m := &Mixer{
		sounds: make(map[string]*audio.Player, len(spec.Sounds)),
		music:  make(map[string]*audio.Player, len(spec.Music)),
	}

	for _, clip := range spec.Sounds {
		p, err := assets.LoadAudioPlayer(clip.File)
		if err != nil {
			return nil, fmt.Errorf("mixer: sound %q: %w", clip.Name, err)
		}
		p.SetVolume(Volume(clip.Volume, soundVolume))
		m.sounds[clip.Name] = p
	}

	for _, clip := range spec.Music {
		stream, err := assets.LoadAudioStream(clip.File)
		if err != nil {
			return nil, fmt.Errorf("mixer: music %q: %w", clip.Name, err)
		}
		p, err := assets.AudioContext().NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
		if err != nil {
			return nil, fmt.Errorf("mixer: music %q: %w", clip.Name, err)
		}
		p.SetVolume(Volume(clip.Volume, musicVolume))
		m.music[clip.Name] = p
	}

	return m, nil
}

func (m *Mixer) PlaySound(name string) {
	if m == nil {
		return
	}
	p, ok := m.sounds[strings.TrimSpace(name)]
	if !ok {
		log.Warn("unknown sound cue", "name", name)
		return
	}
	restart(p, name)
}

// PlayMusic stops any current song and starts track from the beginning.
func (m *Mixer) PlayMusic(track string) {
	if m == nil {
		return
	}
	p, ok := m.music[strings.TrimSpace(track)]
	if !ok {
		log.Warn("unknown music track", "track", track)
		return
	}
	if m.current != nil && m.current != p {
		m.current.Pause()
	}
	m.current = p
	restart(p, track)
}

func (m *Mixer) StopMusic() {
	if m == nil || m.current == nil {
		return
	}
	m.current.Pause()
	m.current = nil
}

func (m *Mixer) Close() error {
	if m == nil {
		return nil
	}
	var firstErr error
	for _, group := range []map[string]*audio.Player{m.sounds, m.music} {
		for name, p := range group {
			if err := p.Close(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("mixer: close %q: %w", name, err)
			}
		}
	}
	return firstErr
}

func restart(p *audio.Player, name string) {
	if err := p.Rewind(); err != nil {
		log.Error("audio rewind failed", "name", name, "err", err)
		return
	}
	p.Play()
}

// Volume combines a clip volume with a master volume. A clip volume of zero
// means full volume; the result is clamped to [0, 1].
func Volume(clip, master float64) float64 {
	if clip <= 0 {
		clip = 1
	}
	v := clip * master
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
