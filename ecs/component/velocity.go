package component

// Velocity is measured in pixels per frame.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
