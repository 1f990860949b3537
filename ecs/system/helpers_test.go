package system

import (
	"testing"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

type recordingMixer struct {
	sounds []string
	music  []string
	stops  int
}

func (m *recordingMixer) PlaySound(name string)  { m.sounds = append(m.sounds, name) }
func (m *recordingMixer) PlayMusic(track string) { m.music = append(m.music, track) }
func (m *recordingMixer) StopMusic()             { m.stops++ }

type fixedInput component.Input

func (f fixedInput) Poll() component.Input { return component.Input(f) }

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func addState(t *testing.T, w *ecs.World, state *component.GameState) {
	t.Helper()
	mustAdd(t, w, ecs.CreateEntity(w), component.GameStateComponent.Kind(), state)
}

func heroDefs() map[string][]string {
	return map[string][]string{
		component.AnimIdle:      {"i1", "i2", "i3"},
		component.AnimWalkLeft:  {"l1", "l2"},
		component.AnimWalkRight: {"r1", "r2", "r3", "r4"},
		component.AnimJump:      {"j1"},
	}
}

func addCharacter(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    5,
		JumpStrength: -12,
		Gravity:      0.5,
		RespawnX:     100,
		RespawnY:     500,
	})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{Width: 24, Height: 36})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: "i1"})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs: heroDefs(), Current: component.AnimIdle, Cadence: 0.1, Image: "i1",
	})
	return e
}

func addObstacle(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{Width: width, Height: height})
	return e
}

func addPatroller(t *testing.T, w *ecs.World, x, y, start, end, vx float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PatrollerTagComponent.Kind(), &component.PatrollerTag{})
	mustAdd(t, w, e, component.PatrolComponent.Kind(), &component.Patrol{Start: start, End: end, Speed: 1.5})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{X: vx})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{Width: 32, Height: 32})
	state := component.AnimWalkRight
	if vx < 0 {
		state = component.AnimWalkLeft
	}
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs: map[string][]string{
			component.AnimIdle:      {"e1"},
			component.AnimWalkLeft:  {"el1", "el2"},
			component.AnimWalkRight: {"er1", "er2"},
		},
		Current: state,
		Cadence: 0.15,
	})
	return e
}
