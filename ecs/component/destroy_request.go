package component

// DestroyRequest marks an entity for removal at the end of the tick.
type DestroyRequest struct {
	Reason string
}

var DestroyRequestComponent = NewComponent[DestroyRequest]()
