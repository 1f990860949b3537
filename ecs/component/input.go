package component

// Input stores the held-key state polled for the current frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

var InputComponent = NewComponent[Input]()
