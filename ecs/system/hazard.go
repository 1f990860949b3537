package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// HazardSystem ends the run when the Character touches a Patroller and moves
// the Character to its respawn point on the spot, so later Patrollers in the
// same frame are tested against the new position. The level itself is only
// rebuilt by the next Start.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

func (h *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state := GameState(w)
	if state == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	for _, enemy := range w.Query(component.PatrollerTagComponent.Kind()) {
		if !Collides(w, player, enemy) {
			continue
		}

		RequestSound(w, SoundCollision)
		state.Mode = component.ModeMenu
		state.Outcome = component.OutcomeLost

		log.Debug("character hit patroller", "enemy", enemy)
		Respawn(w, player)
	}
}
