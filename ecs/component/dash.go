package component

import "github.com/jakecoffman/cp"

type DashPhase uint8

const (
	DashIdle DashPhase = iota
	DashMoving
	DashReturning
)

// Dash is the in-progress displacement and tilt of a dash. Moving runs from
// StartTime for the dash duration; Returning eases Tilt back to zero from
// ReturnStart.
type Dash struct {
	Phase       DashPhase
	Start       cp.Vector
	Target      cp.Vector
	StartTime   float64
	ReturnStart float64
	// Axis is the sideways axis the tilt leans around.
	Axis cp.Vector
	Tilt float64
}
