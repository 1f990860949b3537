package entity

import (
	"fmt"

	"github.com/milk9111/trophydash/ecs"
)

const goalPrefab = "trophy.yaml"

// NewGoal builds the trophy at (x, y).
func NewGoal(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, goalPrefab)
	if err != nil {
		return 0, fmt.Errorf("goal: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("goal: set transform: %w", err)
	}
	return e, nil
}
