package system

import (
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// AudioSystem plays queued sound cues through the mixer.
type AudioSystem struct {
	mixer Mixer
}

func NewAudioSystem(mixer Mixer) *AudioSystem {
	return &AudioSystem{mixer: mixer}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	for _, req := range drain(w, component.SoundRequestComponent.Kind()) {
		if a.mixer != nil && req.Name != "" {
			a.mixer.PlaySound(req.Name)
		}
	}
}
