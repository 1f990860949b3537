package system

import (
	"github.com/milk9111/trophydash/common"
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// Collides reports whether the boxes of a and b overlap. Entities missing a
// Transform or Body never collide.
func Collides(w *ecs.World, a, b ecs.Entity) bool {
	at, ok := ecs.Get(w, a, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	ab, ok := ecs.Get(w, a, component.BodyComponent.Kind())
	if !ok {
		return false
	}
	bt, ok := ecs.Get(w, b, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	bb, ok := ecs.Get(w, b, component.BodyComponent.Kind())
	if !ok {
		return false
	}
	return common.Overlap(at.X, at.Y, ab.Width, ab.Height, bt.X, bt.Y, bb.Width, bb.Height)
}
