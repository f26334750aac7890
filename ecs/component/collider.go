package component

// Collider is the circular hit area of a combatant. The physics world owns
// the matching cp body and shape.
type Collider struct {
	Radius float64
}

var ColliderComponent = NewComponent[Collider]()
