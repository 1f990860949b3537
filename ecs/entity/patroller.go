package entity

import (
	"fmt"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

const patrollerPrefab = "patroller.yaml"

// NewPatroller builds an enemy at (x, y) walking between start and end. A
// negative dir starts it walking left, anything else right.
func NewPatroller(w *ecs.World, x, y, start, end, dir float64) (ecs.Entity, error) {
	if start > end {
		return 0, fmt.Errorf("patroller: patrol interval [%v, %v] is inverted", start, end)
	}

	e, err := BuildEntity(w, patrollerPrefab)
	if err != nil {
		return 0, fmt.Errorf("patroller: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("patroller: set transform: %w", err)
	}

	patrol, ok := ecs.Get(w, e, component.PatrolComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("patroller: prefab %q has no patrol component", patrollerPrefab)
	}
	patrol.Start = start
	patrol.End = end

	vx := patrol.Speed
	state := component.AnimWalkRight
	if dir < 0 {
		vx = -vx
		state = component.AnimWalkLeft
	}
	if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		vel.X = vx
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.SetState(state)
	}
	return e, nil
}
