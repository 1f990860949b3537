package entity

import (
	"fmt"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

const (
	StartButtonPrefab = "button_start.yaml"
	MusicButtonPrefab = "button_music.yaml"
	SoundButtonPrefab = "button_sound.yaml"
	ExitButtonPrefab  = "button_exit.yaml"
)

// NewMenuButton builds a menu control centered on (x, y). Toggle buttons show
// the icon matching on; plain buttons ignore it.
func NewMenuButton(w *ecs.World, prefab string, x, y float64, on bool) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("menu button: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("menu button: set transform: %w", err)
	}

	button, ok := ecs.Get(w, e, component.MenuButtonComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("menu button: prefab %q has no menu_button component", prefab)
	}
	if icon := button.Icon(on); icon != "" {
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Image = icon
		}
	}
	return e, nil
}
