package system

import (
	"github.com/milk9111/trophydash/common"
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.BodyComponent.Kind(),
	)
	for _, e := range entities {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		body, _ := ecs.Get(w, e, component.BodyComponent.Kind())

		// Left is checked first and wins when both are held.
		switch {
		case input.Left:
			vel.X = -player.MoveSpeed
		case input.Right:
			vel.X = player.MoveSpeed
		default:
			vel.X = 0
		}

		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			anim.SetState(characterState(input, player.OnGround))
		}

		if input.Jump && player.OnGround {
			vel.Y = player.JumpStrength
			player.OnGround = false
			RequestSound(w, SoundJump)
		}

		vel.Y += player.Gravity

		halfW, halfH := body.Width/2, body.Height/2
		t.X = common.Clamp(t.X+vel.X, halfW, common.BaseWidth-halfW)
		t.Y = common.Clamp(t.Y+vel.Y, halfH, common.BaseHeight-halfH)
	}
}

// characterState picks the animation from input first, then ground contact.
func characterState(input *component.Input, onGround bool) string {
	switch {
	case input.Left:
		return component.AnimWalkLeft
	case input.Right:
		return component.AnimWalkRight
	case onGround:
		return component.AnimIdle
	default:
		return component.AnimJump
	}
}
