package component

import "github.com/jakecoffman/cp"

// Input is the normalized per-tick intent of the player. The simulation never
// reads device state directly.
type Input struct {
	Move      cp.Vector
	AimTarget cp.Vector
	HasAim    bool
	Fire      bool
	Reload    bool
	Dash      bool
}

var InputComponent = NewComponent[Input]()
