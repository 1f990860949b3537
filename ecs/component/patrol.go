package component

// Patrol bounds a Patroller's horizontal oscillation to [Start, End]. Script
// names the tengo rule deciding when to turn around.
type Patrol struct {
	Start  float64
	End    float64
	Speed  float64
	Script string
}

var PatrolComponent = NewComponent[Patrol]()
