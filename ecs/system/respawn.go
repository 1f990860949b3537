package system

import (
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// Respawn moves a Character to its respawn point. Velocity is left as it was.
func Respawn(w *ecs.World, e ecs.Entity) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	t.X = p.RespawnX
	t.Y = p.RespawnY
}
