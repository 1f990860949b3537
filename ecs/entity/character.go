package entity

import (
	"fmt"

	"github.com/milk9111/trophydash/ecs"
)

const characterPrefab = "hero.yaml"

// NewCharacter builds the player-controlled hero at (x, y).
func NewCharacter(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, characterPrefab)
	if err != nil {
		return 0, fmt.Errorf("character: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("character: set transform: %w", err)
	}
	return e, nil
}
