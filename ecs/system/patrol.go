package system

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
	"github.com/milk9111/trophydash/prefabs"
)

const defaultPatrolScript = "patrol.tengo"

// PatrolSystem moves Patrollers back and forth between their bounds. The
// turn-around rule is a tengo script so it can be tuned alongside prefabs.
type PatrolSystem struct {
	rules map[string]*patrolRule
}

type patrolRule struct {
	compiled *tengo.Compiled
	err      error
}

var patrolInputs = []string{"x", "vx", "patrol_start", "patrol_end"}

func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{rules: map[string]*patrolRule{}}
}

// Invalidate drops compiled scripts so edited ones are reloaded on next use.
func (p *PatrolSystem) Invalidate() {
	if p == nil {
		return
	}
	p.rules = map[string]*patrolRule{}
}

func (p *PatrolSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	entities := w.Query(
		component.PatrollerTagComponent.Kind(),
		component.PatrolComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		patrol, _ := ecs.Get(w, e, component.PatrolComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())

		rule := p.rule(patrol.Script)
		if rule.err != nil {
			continue
		}

		x, vx, turned, err := rule.step(t.X, vel.X, patrol.Start, patrol.End)
		if err != nil {
			log.Error("patrol script failed", "entity", e, "script", patrol.Script, "err", err)
			rule.err = err
			continue
		}
		t.X = x
		vel.X = vx

		if !turned {
			continue
		}
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			if vel.X > 0 {
				anim.SetState(component.AnimWalkRight)
			} else {
				anim.SetState(component.AnimWalkLeft)
			}
		}
	}
}

func (p *PatrolSystem) rule(name string) *patrolRule {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultPatrolScript
	}
	if rule, ok := p.rules[name]; ok {
		return rule
	}
	rule, err := compilePatrolRule(name)
	if err != nil {
		log.Error("patrol script unavailable", "script", name, "err", err)
		rule = &patrolRule{err: err}
	}
	p.rules[name] = rule
	return rule
}

func compilePatrolRule(name string) (*patrolRule, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("patrol: load %q: %w", name, err)
	}

	script := tengo.NewScript(src)
	for _, input := range patrolInputs {
		if err := script.Add(input, 0.0); err != nil {
			return nil, fmt.Errorf("patrol: declare %s: %w", input, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("patrol: compile %q: %w", name, err)
	}
	return &patrolRule{compiled: compiled}, nil
}

func (r *patrolRule) step(x, vx, start, end float64) (float64, float64, bool, error) {
	values := [...]float64{x, vx, start, end}
	for i, input := range patrolInputs {
		if err := r.compiled.Set(input, values[i]); err != nil {
			return 0, 0, false, err
		}
	}
	if err := r.compiled.Run(); err != nil {
		return 0, 0, false, err
	}
	if !r.compiled.IsDefined("next_x") {
		return 0, 0, false, fmt.Errorf("patrol: script does not define next_x")
	}
	return r.compiled.Get("next_x").Float(), r.compiled.Get("vx").Float(), r.compiled.Get("turned").Bool(), nil
}
