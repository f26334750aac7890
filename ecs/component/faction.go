package component

// Faction classifies combatants and decides which projectiles can hurt them.
type Faction uint8

const (
	FactionNone Faction = iota
	FactionPlayer
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Opposes reports whether f and other are distinct, real factions.
func (f Faction) Opposes(other Faction) bool {
	return f != FactionNone && other != FactionNone && f != other
}

var FactionComponent = NewComponent[Faction]()
