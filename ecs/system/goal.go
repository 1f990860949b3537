package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (g *GoalSystem) Update(w *ecs.World) {
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

	for _, goal := range w.Query(component.GoalTagComponent.Kind()) {
		if !Collides(w, player, goal) {
			continue
		}
		RequestSound(w, SoundWin)
		log.Info("You won!")
		state.Mode = component.ModeMenu
		state.Outcome = component.OutcomeWon
	}
}
