package component

import "github.com/jakecoffman/cp"

// Projectile is one shot in flight. Ownership is fixed at creation.
type Projectile struct {
	OwnerID      uint64
	OwnerFaction Faction
	Damage       int
	Radius       float64

	SpawnTime float64
	Lifetime  float64
	// SpawnTick is the clock tick the projectile was created on; collision
	// skips it until a later tick.
	SpawnTick uint64

	// PrevPosition is where the projectile was before the last movement step.
	PrevPosition cp.Vector
	// EnteredView is set the first tick the shot overlaps the view bounds.
	// Only shots that have been visible expire for leaving them.
	EnteredView bool
	Spent       bool
}

var ProjectileComponent = NewComponent[Projectile]()
