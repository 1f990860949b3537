package entity

import (
	"fmt"

	"github.com/milk9111/trophydash/ecs"
)

const (
	BackgroundPrefab     = "background.yaml"
	MenuBackgroundPrefab = "menu_background.yaml"
	ControlsPrefab       = "controls.yaml"
)

// NewBackdrop builds a static full-view image. Its position comes from the
// prefab.
func NewBackdrop(w *ecs.World, prefab string) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("backdrop: %w", err)
	}
	return e, nil
}
