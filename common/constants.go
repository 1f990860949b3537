package common

const (
	BaseWidth  = 800
	BaseHeight = 600

	TicksPerSecond = 60
	// Step is the fixed simulation delta in seconds. The simulation uses it
	// regardless of the real frame time.
	Step = 1.0 / TicksPerSecond
)
