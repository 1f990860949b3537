package system

import (
	"strings"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// MusicSystem applies the latest queued music request. Only one song plays
// at a time; a play request always restarts from the beginning.
type MusicSystem struct {
	mixer Mixer
}

func NewMusicSystem(mixer Mixer) *MusicSystem {
	return &MusicSystem{mixer: mixer}
}

func (m *MusicSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}

	requests := drain(w, component.MusicRequestComponent.Kind())
	if len(requests) == 0 {
		return
	}
	latest := requests[len(requests)-1]

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())

	track := strings.TrimSpace(latest.Track)
	if track == "" {
		if player.Playing && m.mixer != nil {
			m.mixer.StopMusic()
		}
		player.CurrentTrack = ""
		player.Playing = false
		return
	}

	if m.mixer != nil {
		m.mixer.PlayMusic(track)
	}
	player.CurrentTrack = track
	player.Playing = true
	player.Starts++
}
