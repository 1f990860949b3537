package component

// RenderLayer is used to sort draw order deterministically. Lower layers draw
// first; ties keep build order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
