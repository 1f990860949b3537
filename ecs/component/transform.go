package component

// Transform is the center-anchored world position of an entity.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
