package component

// ClickRequest is a pointer click forwarded to the menu.
type ClickRequest struct {
	X float64
	Y float64
}

var ClickRequestComponent = NewComponent[ClickRequest]()

// StartRequest asks the session to rebuild the level and enter play. Systems
// only emit it; the session owns world reinitialization.
type StartRequest struct{}

var StartRequestComponent = NewComponent[StartRequest]()
