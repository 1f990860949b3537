package system

import (
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

const (
	SoundJump      = "jump"
	SoundCollision = "collision"
	SoundWin       = "win"
)

// GameState returns the session state registered in w, or nil.
func GameState(w *ecs.World) *component.GameState {
	ent, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil
	}
	state, _ := ecs.Get(w, ent, component.GameStateComponent.Kind())
	return state
}

// RequestSound queues a sound cue when sound is enabled.
func RequestSound(w *ecs.World, name string) {
	state := GameState(w)
	if state == nil || !state.SoundOn {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SoundRequestComponent.Kind(), &component.SoundRequest{Name: name})
}

// RequestMusic queues a (re)start of track.
func RequestMusic(w *ecs.World, track string) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), &component.MusicRequest{Track: track})
}

// StopMusic queues a stop of the current song.
func StopMusic(w *ecs.World) {
	RequestMusic(w, "")
}

// RequestClick queues a pointer click for the menu.
func RequestClick(w *ecs.World, x, y float64) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.ClickRequestComponent.Kind(), &component.ClickRequest{X: x, Y: y})
}

func drain[T any](w *ecs.World, kind component.ComponentKind[T]) []T {
	var out []T
	for _, ent := range w.Query(kind) {
		if v, ok := ecs.Get(w, ent, kind); ok && v != nil {
			out = append(out, *v)
		}
		ecs.DestroyEntity(w, ent)
	}
	return out
}
