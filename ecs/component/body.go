package component

// Body is the axis-aligned collision box centered on the entity's Transform.
type Body struct {
	Width  float64
	Height float64
}

var BodyComponent = NewComponent[Body]()
