package component

import "github.com/jakecoffman/cp"

// ViewBounds is the visible play area. Projectiles leaving it are removed and
// the spawner places enemies just outside it.
type ViewBounds struct {
	BB cp.BB
}

func (v ViewBounds) Width() float64 {
	return v.BB.R - v.BB.L
}

func (v ViewBounds) Height() float64 {
	return v.BB.T - v.BB.B
}

var ViewBoundsComponent = NewComponent[ViewBounds]()
