package component

// Animation state names shared by Character and Patroller sequences.
const (
	AnimIdle      = "idle"
	AnimWalkLeft  = "walk-left"
	AnimWalkRight = "walk-right"
	AnimJump      = "jump"
)

// Animator is the shared frame-cycling capability of animated entities.
type Animator interface {
	Advance(dt float64)
	CurrentFrame() string
}

// Animation cycles through the frame sequence of its current state. All
// states share one frame index and timer; switching state resets neither.
type Animation struct {
	Defs    map[string][]string
	Current string
	Frame   int
	Timer   float64
	Cadence float64
	Image   string
}

var AnimationComponent = NewComponent[Animation]()

var _ Animator = (*Animation)(nil)

// SetState switches the active sequence. The shared index is wrapped into
// the new sequence so it always addresses a valid frame.
func (a *Animation) SetState(state string) {
	if a == nil {
		return
	}
	a.Current = state
	if n := len(a.Defs[state]); n > 0 {
		a.Frame %= n
	}
}

// Advance accumulates dt and steps one frame once the cadence is reached.
func (a *Animation) Advance(dt float64) {
	if a == nil {
		return
	}
	a.Timer += dt
	if a.Timer < a.Cadence {
		return
	}
	frames := a.Defs[a.Current]
	if len(frames) == 0 {
		return
	}
	a.Frame = (a.Frame + 1) % len(frames)
	a.Image = frames[a.Frame]
	a.Timer = 0
}

// CurrentFrame returns the displayed frame identifier.
func (a *Animation) CurrentFrame() string {
	if a == nil {
		return ""
	}
	return a.Image
}
