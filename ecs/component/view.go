package component

// View restricts drawing of an entity to one session mode.
type View struct {
	Mode Mode
}

var ViewComponent = NewComponent[View]()
