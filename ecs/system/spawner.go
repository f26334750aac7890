package system

import (
	"log/slog"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/entity"
)

type SpawnerConfig struct {
	BaseSpawnInterval float64
	BaseMaxEnemies    int
	Padding           float64
}

// SpawnerSystem is the reference enemy spawner. It places enemies just
// outside a random edge of the view bounds, at most one per spawn interval
// and only while fewer than the current cap are alive.
type SpawnerSystem struct {
	cfg       SpawnerConfig
	templates *entity.Templates
	rng       *rand.Rand
	logger    *slog.Logger

	params     component.DifficultyParams
	lastSpawn  float64
	resetTimer bool
}

func NewSpawnerSystem(cfg SpawnerConfig, templates *entity.Templates, rng *rand.Rand, logger *slog.Logger) *SpawnerSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &SpawnerSystem{
		cfg:       cfg,
		templates: templates,
		rng:       rng,
		logger:    loggerOrDefault(logger),
	}
	s.params = DifficultyScaling(1, 1, cfg.BaseSpawnInterval, cfg.BaseMaxEnemies)
	return s
}

// SetDifficulty recomputes the spawn parameters and restarts the spawn timer.
func (s *SpawnerSystem) SetDifficulty(round int, multiplier float64) {
	if s == nil {
		return
	}
	s.params = DifficultyScaling(round, multiplier, s.cfg.BaseSpawnInterval, s.cfg.BaseMaxEnemies)
	s.resetTimer = true
	s.logger.Debug("spawner: difficulty set",
		"round", round,
		"multiplier", multiplier,
		"interval", s.params.SpawnInterval,
		"max", s.params.MaxEnemies,
		"speed", s.params.SpeedMultiplier,
	)
}

// Params returns the parameters currently in effect.
func (s *SpawnerSystem) Params() component.DifficultyParams {
	return s.params
}

// SetTemplates swaps the templates used for enemies spawned from now on.
func (s *SpawnerSystem) SetTemplates(t *entity.Templates) {
	if s == nil || t == nil {
		return
	}
	s.templates = t
}

func (s *SpawnerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if rs, ok := roundState(w); ok && rs.GameOver {
		return
	}
	now := w.Clock().Now()
	if s.resetTimer {
		s.lastSpawn = now
		s.resetTimer = false
	}
	if now-s.lastSpawn < s.params.SpawnInterval {
		return
	}
	if s.liveEnemies(w) >= s.params.MaxEnemies {
		return
	}

	boundsEntity, ok := w.First(component.ViewBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.ViewBoundsComponent.Kind())
	if !ok {
		return
	}

	if _, err := s.Spawn(w, EdgePosition(s.rng, bounds.BB, s.cfg.Padding)); err != nil {
		s.logger.Error("spawner: spawn enemy", "err", err)
		return
	}
	s.lastSpawn = now
}

// Spawn creates one enemy at pos with the current speed multiplier.
func (s *SpawnerSystem) Spawn(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	if s.templates == nil {
		return 0, entity.ErrMissingTemplate
	}
	proj, err := s.templates.EnemyProjectile()
	if err != nil {
		return 0, err
	}
	return entity.NewEnemy(w, s.templates.Enemy, proj, pos, s.params.SpeedMultiplier)
}

func (s *SpawnerSystem) liveEnemies(w *ecs.World) int {
	n := 0
	for _, e := range w.Query(component.EnemyTagComponent.Kind()) {
		if alive(w, e) {
			n++
		}
	}
	return n
}

// EdgePosition picks a point on a random side of bb pushed outward by pad.
func EdgePosition(rng *rand.Rand, bb cp.BB, pad float64) cp.Vector {
	switch rng.Intn(4) {
	case 0:
		return cp.Vector{X: bb.L - pad, Y: lerpRange(rng, bb.B, bb.T)}
	case 1:
		return cp.Vector{X: bb.R + pad, Y: lerpRange(rng, bb.B, bb.T)}
	case 2:
		return cp.Vector{X: lerpRange(rng, bb.L, bb.R), Y: bb.B - pad}
	default:
		return cp.Vector{X: lerpRange(rng, bb.L, bb.R), Y: bb.T + pad}
	}
}

func lerpRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
