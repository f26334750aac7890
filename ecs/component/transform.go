package component

import "github.com/jakecoffman/cp"

type Transform struct {
	Position cp.Vector
	// Rotation is the facing angle in radians.
	Rotation float64
}

// Facing returns the unit vector for Rotation.
func (t Transform) Facing() cp.Vector {
	return cp.ForAngle(t.Rotation)
}

var TransformComponent = NewComponent[Transform]()
