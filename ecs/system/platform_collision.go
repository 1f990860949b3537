package system

import (
	"github.com/milk9111/trophydash/common"
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// PlatformCollisionSystem lands the Character on obstacles it falls onto.
// Ground contact is recomputed from scratch every frame.
type PlatformCollisionSystem struct{}

func NewPlatformCollisionSystem() *PlatformCollisionSystem {
	return &PlatformCollisionSystem{}
}

func (s *PlatformCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	obstacles := w.Query(
		component.ObstacleTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.BodyComponent.Kind(),
	)

	players := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.BodyComponent.Kind(),
	)
	for _, e := range players {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		body, _ := ecs.Get(w, e, component.BodyComponent.Kind())

		player.OnGround = false

		// Every obstacle is tested in build order with no early exit; a later
		// match overrides an earlier one.
		for _, o := range obstacles {
			ot, _ := ecs.Get(w, o, component.TransformComponent.Kind())
			ob, _ := ecs.Get(w, o, component.BodyComponent.Kind())

			if !common.Overlap(t.X, t.Y, body.Width, body.Height, ot.X, ot.Y, ob.Width, ob.Height) {
				continue
			}
			if vel.Y <= 0 || t.Y >= ot.Y {
				continue
			}
			t.Y = ot.Y - ob.Height/2 - body.Height/2
			vel.Y = 0
			player.OnGround = true
		}
	}
}
