package system

import (
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// AnimationSystem advances every animation by a fixed dt and mirrors the
// displayed frame into the sprite.
type AnimationSystem struct {
	dt float64
}

func NewAnimationSystem(dt float64) *AnimationSystem {
	return &AnimationSystem{dt: dt}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		var animator component.Animator = anim
		animator.Advance(a.dt)
		if frame := animator.CurrentFrame(); frame != "" {
			sprite.Image = frame
		}
	})
}
