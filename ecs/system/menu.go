package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/trophydash/common"
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// MenuSystem resolves queued clicks against the menu controls.
type MenuSystem struct{}

func NewMenuSystem() *MenuSystem {
	return &MenuSystem{}
}

func (m *MenuSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	clicks := drain(w, component.ClickRequestComponent.Kind())
	state := GameState(w)
	if state == nil || state.Mode != component.ModeMenu {
		return
	}

	buttons := w.Query(component.MenuButtonComponent.Kind(), component.TransformComponent.Kind())
	for _, click := range clicks {
		for _, e := range buttons {
			button, _ := ecs.Get(w, e, component.MenuButtonComponent.Kind())
			t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if !common.Contains(common.BoxAt(t.X, t.Y, button.Width, button.Height), click.X, click.Y) {
				continue
			}
			m.activate(w, state, e, button)
		}
	}
}

func (m *MenuSystem) activate(w *ecs.World, state *component.GameState, e ecs.Entity, button *component.MenuButton) {
	log.Debug("menu control clicked", "action", button.Action)

	switch button.Action {
	case component.MenuActionStart:
		ent := ecs.CreateEntity(w)
		_ = ecs.Add(w, ent, component.StartRequestComponent.Kind(), &component.StartRequest{})
	case component.MenuActionMusic:
		state.MusicOn = !state.MusicOn
		if state.MusicOn {
			RequestMusic(w, musicTrack(w))
		} else {
			StopMusic(w)
		}
		setIcon(w, e, button.Icon(state.MusicOn))
	case component.MenuActionSound:
		state.SoundOn = !state.SoundOn
		setIcon(w, e, button.Icon(state.SoundOn))
	case component.MenuActionExit:
		state.ExitRequested = true
	}
}

func setIcon(w *ecs.World, e ecs.Entity, icon string) {
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Image = icon
	}
}

func musicTrack(w *ecs.World) string {
	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return ""
	}
	player, _ := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	return player.Track
}
