package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
	"github.com/milk9111/trophydash/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":    addPlayerTag,
	"patroller_tag": addPatrollerTag,
	"obstacle_tag":  addObstacleTag,
	"goal_tag":      addGoalTag,
	"player":        addPlayer,
	"input":         addInput,
	"transform":     addTransform,
	"velocity":      addVelocity,
	"body":          addBody,
	"sprite":        addSprite,
	"animation":     addAnimation,
	"patrol":        addPatrol,
	"render_layer":  addRenderLayer,
	"view":          addView,
	"menu_button":   addMenuButton,
	"persistent":    addPersistent,
	"music_player":  addMusicPlayer,
}

// Sprite precedes animation so the animation can seed its displayed frame
// from it.
var componentBuildOrder = []string{
	"player_tag",
	"patroller_tag",
	"obstacle_tag",
	"goal_tag",
	"player",
	"input",
	"transform",
	"velocity",
	"body",
	"sprite",
	"animation",
	"patrol",
	"render_layer",
	"view",
	"menu_button",
	"persistent",
	"music_player",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

// SetEntityTransform moves e to (x, y), keeping any scale from its prefab.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addPatrollerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PatrollerTagComponent.Kind(), &component.PatrollerTag{})
}

func addObstacleTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{})
}

func addGoalTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GoalTagComponent.Kind(), &component.GoalTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    spec.MoveSpeed,
		JumpStrength: spec.JumpStrength,
		Gravity:      spec.Gravity,
		RespawnX:     spec.RespawnX,
		RespawnY:     spec.RespawnY,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.X,
		Y:      spec.Y,
		ScaleX: spec.ScaleX,
		ScaleY: spec.ScaleY,
	})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
}

type bodySpec = prefabs.BodyComponentSpec

func addBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode body spec: %w", err)
	}
	if spec.Width < 0 || spec.Height < 0 {
		return fmt.Errorf("body size %vx%v is negative", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: spec.Width, Height: spec.Height})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: spec.Image})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if spec.Cadence <= 0 {
		return fmt.Errorf("animation cadence must be positive, got %v", spec.Cadence)
	}

	defs := make(map[string][]string, len(spec.States))
	for name, frames := range spec.States {
		if len(frames) == 0 {
			return fmt.Errorf("animation state %q has no frames", name)
		}
		defs[name] = append([]string(nil), frames...)
	}
	if _, ok := defs[spec.Current]; !ok {
		return fmt.Errorf("animation state %q is not defined", spec.Current)
	}

	image := defs[spec.Current][0]
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Image != "" {
		image = sprite.Image
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    defs,
		Current: spec.Current,
		Cadence: spec.Cadence,
		Image:   image,
	})
}

type patrolSpec = prefabs.PatrolComponentSpec

func addPatrol(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[patrolSpec](raw)
	if err != nil {
		return fmt.Errorf("decode patrol spec: %w", err)
	}
	return ecs.Add(w, e, component.PatrolComponent.Kind(), &component.Patrol{
		Speed:  spec.Speed,
		Script: spec.Script,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type viewSpec = prefabs.ViewComponentSpec

func addView(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[viewSpec](raw)
	if err != nil {
		return fmt.Errorf("decode view spec: %w", err)
	}
	mode, err := parseMode(spec.Mode)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ViewComponent.Kind(), &component.View{Mode: mode})
}

func parseMode(s string) (component.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case component.ModeMenu.String():
		return component.ModeMenu, nil
	case component.ModePlaying.String():
		return component.ModePlaying, nil
	default:
		return 0, fmt.Errorf("unknown view mode %q", s)
	}
}

type menuButtonSpec = prefabs.MenuButtonComponentSpec

func addMenuButton(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[menuButtonSpec](raw)
	if err != nil {
		return fmt.Errorf("decode menu button spec: %w", err)
	}
	action := component.MenuAction(strings.ToLower(strings.TrimSpace(spec.Action)))
	switch action {
	case component.MenuActionStart, component.MenuActionMusic, component.MenuActionSound, component.MenuActionExit:
	default:
		return fmt.Errorf("unknown menu action %q", spec.Action)
	}
	return ecs.Add(w, e, component.MenuButtonComponent.Kind(), &component.MenuButton{
		Action:  action,
		Width:   spec.Width,
		Height:  spec.Height,
		IconOn:  spec.IconOn,
		IconOff: spec.IconOff,
	})
}

type persistentSpec = prefabs.PersistentComponentSpec

func addPersistent(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[persistentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode persistent spec: %w", err)
	}
	if spec.ID == "" && ctx != nil {
		spec.ID = strings.TrimSuffix(ctx.PrefabPath, ".yaml")
	}
	return ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{
		ID:           spec.ID,
		KeepOnReload: spec.KeepOnReload,
	})
}

type musicPlayerSpec = prefabs.MusicPlayerComponentSpec

func addMusicPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[musicPlayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode music player spec: %w", err)
	}
	return ecs.Add(w, e, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{Track: spec.Track})
}
