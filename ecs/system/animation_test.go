package system

import (
	"testing"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

func TestAnimationAdvancesOnCadence(t *testing.T) {
	w := ecs.NewWorld()
	e := addCharacter(t, w, 400, 300)
	sys := NewAnimationSystem(1.0 / 60)
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

	frames := 0
	for i := 0; i < 60; i++ {
		before := anim.Frame
		sys.Update(w)
		if anim.Frame != before {
			frames++
		}
	}
	// A 0.1s cadence at 1/60 steps lands every 6 or 7 steps.
	if frames < 8 || frames > 10 {
		t.Fatalf("frame advances in one second = %d, want 8 to 10", frames)
	}
	if sprite.Image != anim.CurrentFrame() {
		t.Fatalf("sprite %q does not mirror frame %q", sprite.Image, anim.CurrentFrame())
	}
}

func TestAnimationFrameIndexAlwaysValid(t *testing.T) {
	w := ecs.NewWorld()
	e := addCharacter(t, w, 400, 300)
	sys := NewAnimationSystem(1.0 / 60)
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

	states := []string{
		component.AnimWalkRight, component.AnimJump, component.AnimIdle,
		component.AnimWalkLeft, component.AnimWalkRight, component.AnimIdle,
	}
	for i := 0; i < 5000; i++ {
		if i%7 == 0 {
			anim.SetState(states[(i/7)%len(states)])
		}
		sys.Update(w)

		seq := anim.Defs[anim.Current]
		if anim.Frame < 0 || anim.Frame >= len(seq) {
			t.Fatalf("step %d: frame %d invalid for %q (%d frames)", i, anim.Frame, anim.Current, len(seq))
		}
	}
}

func TestAnimationEmptySequenceIsIgnored(t *testing.T) {
	anim := &component.Animation{
		Defs:    map[string][]string{"empty": nil},
		Current: "empty",
		Cadence: 0.1,
		Image:   "keep",
	}
	anim.Advance(1)
	if anim.Frame != 0 || anim.CurrentFrame() != "keep" {
		t.Fatalf("frame=%d image=%q, want untouched", anim.Frame, anim.CurrentFrame())
	}
}
