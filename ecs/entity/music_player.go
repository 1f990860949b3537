package entity

import (
	"fmt"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

const musicPlayerPrefab = "music_player.yaml"

func NewMusicPlayer(w *ecs.World) (ecs.Entity, error) {
	e, err := BuildEntity(w, musicPlayerPrefab)
	if err != nil {
		return 0, fmt.Errorf("music player: %w", err)
	}
	if !ecs.Has(w, e, component.PersistentComponent.Kind()) {
		if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: "music_player", KeepOnReload: true}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("music player: add persistent: %w", err)
		}
	}
	return e, nil
}

// NewGameState registers state on a persistent entity so systems can reach
// it. The caller keeps ownership of the pointer.
func NewGameState(w *ecs.World, state *component.GameState) (ecs.Entity, error) {
	if state == nil {
		return 0, fmt.Errorf("game state: state is nil")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameStateComponent.Kind(), state); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("game state: %w", err)
	}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: "game_state", KeepOnReload: true}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("game state: add persistent: %w", err)
	}
	return e, nil
}
