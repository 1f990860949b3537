package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// BoxAt returns the box of size w x h centered on (x, y). B and T hold the
// screen-space top and bottom edges (y grows downward).
func BoxAt(x, y, w, h float64) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: x, Y: y}, w/2, h/2)
}

// Overlap reports whether two center-anchored boxes intersect. The test is
// strict on both axes, so boxes that only touch do not overlap.
func Overlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx) < (aw+bw)/2 && math.Abs(ay-by) < (ah+bh)/2
}

// Contains reports whether (x, y) lies in bb. Left and top edges are inside,
// right and bottom edges are not.
func Contains(bb cp.BB, x, y float64) bool {
	return x >= bb.L && x < bb.R && y >= bb.B && y < bb.T
}
