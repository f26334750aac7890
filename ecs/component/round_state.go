package component

// RoundState is the match-wide progression record. It lives on the single
// match entity and only the difficulty system writes to it.
type RoundState struct {
	Round      int
	Difficulty float64
	Score      int
	Defeated   int
	Needed     int
	GameOver   bool
	Offer      UpgradeOffer
}

var RoundStateComponent = NewComponent[RoundState]()

// DifficultyParams are the spawn parameters derived from a round.
type DifficultyParams struct {
	Factor          float64
	SpawnInterval   float64
	MaxEnemies      int
	SpeedMultiplier float64
}
