package component

// MatchTag marks the entity that carries match-wide state.
type MatchTag struct{}

var MatchTagComponent = NewComponent[MatchTag]()
