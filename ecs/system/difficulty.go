package system

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

//go:generate go tool mockgen -destination=./mocks/spawner.go -package=mocks . Spawner

// Spawner receives difficulty changes from the director.
type Spawner interface {
	SetDifficulty(round int, multiplier float64)
}

type DifficultyConfig struct {
	PointsPerKill     int
	ThresholdGrowth   float64
	DifficultyGrowth  float64
	BaseSpawnInterval float64
	BaseMaxEnemies    int
	UpgradeOptions    int
}

// DefaultDifficultyConfig matches the shipped director.yaml.
func DefaultDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		PointsPerKill:     10,
		ThresholdGrowth:   1.5,
		DifficultyGrowth:  1.1,
		BaseSpawnInterval: 2,
		BaseMaxEnemies:    10,
		UpgradeOptions:    3,
	}
}

// DifficultySystem is the round director. It scores every enemy kill of the
// tick, advances the round when the kill threshold is met, pauses the clock
// with an upgrade offer and tells the spawner about the new difficulty.
type DifficultySystem struct {
	cfg     DifficultyConfig
	spawner Spawner
	rng     *rand.Rand
	logger  *slog.Logger
}

func NewDifficultySystem(cfg DifficultyConfig, spawner Spawner, rng *rand.Rand, logger *slog.Logger) *DifficultySystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &DifficultySystem{cfg: cfg, spawner: spawner, rng: rng, logger: loggerOrDefault(logger)}
}

func (s *DifficultySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	rs, ok := roundState(w)
	if !ok {
		return
	}
	for _, evt := range w.Events().Pending() {
		if evt.Type != ecs.EventEnemyKilled {
			continue
		}
		if !RecordKill(rs, s.cfg) {
			continue
		}
		s.advance(w, rs)
	}
}

func (s *DifficultySystem) advance(w *ecs.World, rs *component.RoundState) {
	rs.Offer = component.UpgradeOffer{
		Pending: true,
		Round:   rs.Round,
		Options: PickUpgrades(s.rng, s.cfg.UpgradeOptions),
	}
	w.Clock().Pause()

	w.Events().Push(ecs.Event{
		Type: ecs.EventRoundAdvanced,
		Data: ecs.RoundEvent{Round: rs.Round, Difficulty: rs.Difficulty},
	})
	w.Events().Push(ecs.Event{Type: ecs.EventUpgradeOffered, Data: rs.Offer.Options})

	params := DifficultyScaling(rs.Round, rs.Difficulty, s.cfg.BaseSpawnInterval, s.cfg.BaseMaxEnemies)
	s.logger.Info("director: round advanced",
		"round", rs.Round,
		"difficulty", rs.Difficulty,
		"needed", rs.Needed,
		"spawn_interval", params.SpawnInterval,
		"max_enemies", params.MaxEnemies,
	)

	if s.spawner != nil {
		s.spawner.SetDifficulty(rs.Round, rs.Difficulty)
	}
}

// RecordKill scores one kill and reports whether it completed the round.
// While an upgrade offer is pending kills still score and count toward the
// next round, but the round cannot advance again until the offer resolves.
func RecordKill(rs *component.RoundState, cfg DifficultyConfig) bool {
	if rs == nil {
		return false
	}
	rs.Score += cfg.PointsPerKill
	rs.Defeated++
	if rs.Offer.Pending || rs.Defeated < rs.Needed {
		return false
	}
	rs.Round++
	rs.Difficulty *= cfg.DifficultyGrowth
	rs.Needed = common.RoundToInt(float64(rs.Needed) * cfg.ThresholdGrowth)
	rs.Defeated = 0
	return true
}

// DifficultyScaling derives spawn parameters for a round. The factor is
// multiplier^(round-1).
func DifficultyScaling(round int, multiplier, baseInterval float64, baseMax int) component.DifficultyParams {
	if round < 1 {
		round = 1
	}
	factor := math.Pow(multiplier, float64(round-1))
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		factor = 1
	}
	return component.DifficultyParams{
		Factor:          factor,
		SpawnInterval:   baseInterval / factor,
		MaxEnemies:      common.RoundToInt(float64(baseMax) * factor),
		SpeedMultiplier: factor,
	}
}

// PickUpgrades draws n distinct upgrades with a partial Fisher-Yates shuffle.
func PickUpgrades(rng *rand.Rand, n int) []component.UpgradeKind {
	pool := component.AllUpgrades()
	if n <= 0 || n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
