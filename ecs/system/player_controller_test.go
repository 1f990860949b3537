package system

import (
	"testing"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

func TestPlayerControllerHorizontal(t *testing.T) {
	tests := []struct {
		name      string
		input     component.Input
		onGround  bool
		wantVX    float64
		wantState string
	}{
		{name: "idle_on_ground", onGround: true, wantVX: 0, wantState: component.AnimIdle},
		{name: "airborne", onGround: false, wantVX: 0, wantState: component.AnimJump},
		{name: "left", input: component.Input{Left: true}, wantVX: -5, wantState: component.AnimWalkLeft},
		{name: "right", input: component.Input{Right: true}, wantVX: 5, wantState: component.AnimWalkRight},
		{name: "left_wins_tie", input: component.Input{Left: true, Right: true}, wantVX: -5, wantState: component.AnimWalkLeft},
		{name: "walk_beats_air", input: component.Input{Right: true}, onGround: false, wantVX: 5, wantState: component.AnimWalkRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addState(t, w, &component.GameState{Mode: component.ModePlaying, SoundOn: true})
			e := addCharacter(t, w, 400, 300)
			player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
			player.OnGround = tt.onGround
			input, _ := ecs.Get(w, e, component.InputComponent.Kind())
			*input = tt.input

			NewPlayerControllerSystem().Update(w)

			vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
			if vel.X != tt.wantVX {
				t.Fatalf("vx = %v, want %v", vel.X, tt.wantVX)
			}
			if tr.X != 400+tt.wantVX {
				t.Fatalf("x = %v, want %v", tr.X, 400+tt.wantVX)
			}
			if anim.Current != tt.wantState {
				t.Fatalf("state = %q, want %q", anim.Current, tt.wantState)
			}
			if vel.Y != 0.5 || tr.Y != 300.5 {
				t.Fatalf("gravity not applied: vy = %v y = %v", vel.Y, tr.Y)
			}
		})
	}
}

func TestPlayerControllerJump(t *testing.T) {
	w := ecs.NewWorld()
	addState(t, w, &component.GameState{Mode: component.ModePlaying, SoundOn: true})
	e := addCharacter(t, w, 400, 300)
	player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())

	input.Jump = true
	NewPlayerControllerSystem().Update(w)
	if vel.Y != 0.5 {
		t.Fatalf("jumped while airborne: vy = %v", vel.Y)
	}
	if got := len(w.Query(component.SoundRequestComponent.Kind())); got != 0 {
		t.Fatalf("sound requests = %d, want 0", got)
	}

	player.OnGround = true
	vel.Y = 0
	NewPlayerControllerSystem().Update(w)
	if vel.Y != -11.5 {
		t.Fatalf("vy = %v, want -11.5", vel.Y)
	}
	if player.OnGround {
		t.Fatal("still on ground after jump")
	}
	reqs := w.Query(component.SoundRequestComponent.Kind())
	if len(reqs) != 1 {
		t.Fatalf("sound requests = %d, want 1", len(reqs))
	}
	req, _ := ecs.Get(w, reqs[0], component.SoundRequestComponent.Kind())
	if req.Name != SoundJump {
		t.Fatalf("sound = %q, want %q", req.Name, SoundJump)
	}
}

func TestPlayerControllerClampsToScreen(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		vy    float64
		input component.Input
		wantX float64
		wantY float64
	}{
		{name: "left_edge", x: 14, y: 300, input: component.Input{Left: true}, wantX: 12, wantY: 300.5},
		{name: "right_edge", x: 786, y: 300, input: component.Input{Right: true}, wantX: 788, wantY: 300.5},
		{name: "top_edge", x: 400, y: 20, vy: -12, wantX: 400, wantY: 18},
		{name: "bottom_edge", x: 400, y: 580, vy: 10, wantX: 400, wantY: 582},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addState(t, w, &component.GameState{Mode: component.ModePlaying})
			e := addCharacter(t, w, tt.x, tt.y)
			vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			vel.Y = tt.vy
			input, _ := ecs.Get(w, e, component.InputComponent.Kind())
			*input = tt.input

			NewPlayerControllerSystem().Update(w)

			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if tr.X != tt.wantX || tr.Y != tt.wantY {
				t.Fatalf("position = (%v, %v), want (%v, %v)", tr.X, tr.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerControllerStaysOnScreen(t *testing.T) {
	w := ecs.NewWorld()
	addState(t, w, &component.GameState{Mode: component.ModePlaying})
	e := addCharacter(t, w, 400, 300)
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	sys := NewPlayerControllerSystem()

	inputs := []component.Input{{Left: true}, {Right: true}, {}, {Left: true, Jump: true}}
	for i := 0; i < 2000; i++ {
		*input = inputs[(i/150)%len(inputs)]
		sys.Update(w)
		if tr.X < 12 || tr.X > 788 || tr.Y < 18 || tr.Y > 582 {
			t.Fatalf("frame %d: character left the screen at (%v, %v)", i, tr.X, tr.Y)
		}
	}
}
