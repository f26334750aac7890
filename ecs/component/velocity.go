package component

import "github.com/jakecoffman/cp"

type Velocity struct {
	Linear cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
