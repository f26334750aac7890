package component

import "github.com/jakecoffman/cp"

// Beam is the charging ray of an enemy. End is where the ray stopped, either
// on the first shape it touched or at the maximum length.
type Beam struct {
	Active bool
	Start  cp.Vector
	End    cp.Vector
	// TargetID is the entity at End, zero when the ray hit nothing.
	TargetID uint64
}
