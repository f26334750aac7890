package arena

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/entity"
	"github.com/milk9111/twinstick/ecs/system"
	"github.com/milk9111/twinstick/prefabs"
)

const defaultTickRate = 60

type Config struct {
	// Seed overrides arena.yaml's seed when non-zero. A zero seed in both
	// places seeds from the wall clock.
	Seed int64
	// LegacyFriendlyFire forces the legacy projectile rule on regardless of
	// arena.yaml.
	LegacyFriendlyFire bool
	// Templates replaces the templates loaded from prefabs.
	Templates *entity.Templates
	// Selector resolves upgrade offers inside Tick. Without one the match
	// stays paused until SelectUpgrade is called.
	Selector UpgradeSelector
	Logger   *slog.Logger
}

// Match is one running arena session.
type Match struct {
	id     string
	logger *slog.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	player    ecs.Entity
	state     ecs.Entity

	spawner   *system.SpawnerSystem
	collision *system.CollisionSystem
	upgrades  system.UpgradeConfig
	selector  UpgradeSelector

	arena *prefabs.ArenaSpec
	dt    float64
	seed  int64
}

// NewMatch loads the arena, director and combatant specs and builds a match
// ready for its first tick.
func NewMatch(cfg Config) (*Match, error) {
	arenaSpec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, fmt.Errorf("arena: load arena spec: %w", err)
	}
	director, err := prefabs.LoadDirectorSpec()
	if err != nil {
		return nil, fmt.Errorf("arena: load director spec: %w", err)
	}

	templates := cfg.Templates
	if templates == nil {
		if templates, err = entity.LoadTemplates(); err != nil {
			return nil, fmt.Errorf("arena: %w", err)
		}
	} else if err := templates.Validate(); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = arenaSpec.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Match{
		id:       uuid.NewString(),
		arena:    arenaSpec,
		selector: cfg.Selector,
		seed:     seed,
		upgrades: upgradeConfig(director),
	}
	base := cfg.Logger
	if base == nil {
		base = slog.Default()
	}
	m.logger = base.With("match", m.id)

	tickRate := arenaSpec.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	m.dt = 1 / float64(tickRate)

	m.world = ecs.NewWorld()
	m.world.SetPhysicsWorld(ecs.NewPhysicsWorld())

	playerProjectile, err := templates.PlayerProjectile()
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	if m.player, err = entity.NewPlayer(m.world, templates.Player, playerProjectile); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	if m.state, err = entity.NewMatch(m.world, director.InitialThreshold, arenaSpec.Bounds.BB()); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	difficulty := difficultyConfig(director)

	m.spawner = system.NewSpawnerSystem(system.SpawnerConfig{
		BaseSpawnInterval: difficulty.BaseSpawnInterval,
		BaseMaxEnemies:    difficulty.BaseMaxEnemies,
		Padding:           arenaSpec.SpawnPadding,
	}, templates, rng, m.logger)

	m.collision = system.NewCollisionSystem(m.logger)
	m.collision.LegacyFriendlyFire = arenaSpec.LegacyFriendlyFire || cfg.LegacyFriendlyFire

	m.scheduler = ecs.NewScheduler(
		system.NewPlayerControllerSystem(m.logger),
		system.NewEnemyAISystem(m.logger),
		system.NewMovementSystem(),
		system.NewPhysicsSystem(),
		system.NewProjectileSystem(),
		m.collision,
		system.NewHealthSystem(m.logger),
		system.NewDifficultySystem(difficulty, m.spawner, rng, m.logger),
		m.spawner,
		system.NewCleanupSystem(),
	)

	m.logger.Info("match: created",
		"seed", seed,
		"tick_rate", tickRate,
		"threshold", m.roundState().Needed,
		"legacy_friendly_fire", m.collision.LegacyFriendlyFire,
	)
	m.logger.Debug("match: systems", "order", strings.Join(m.scheduler.Order(), " > "))
	return m, nil
}

func difficultyConfig(d *prefabs.DirectorSpec) system.DifficultyConfig {
	cfg := system.DefaultDifficultyConfig()
	if d == nil {
		return cfg
	}
	if d.PointsPerKill > 0 {
		cfg.PointsPerKill = d.PointsPerKill
	}
	if d.ThresholdGrowth > 0 {
		cfg.ThresholdGrowth = d.ThresholdGrowth
	}
	if d.DifficultyGrowth > 0 {
		cfg.DifficultyGrowth = d.DifficultyGrowth
	}
	if d.BaseSpawnInterval > 0 {
		cfg.BaseSpawnInterval = d.BaseSpawnInterval
	}
	if d.BaseMaxEnemies > 0 {
		cfg.BaseMaxEnemies = d.BaseMaxEnemies
	}
	if d.Upgrades.Options > 0 {
		cfg.UpgradeOptions = d.Upgrades.Options
	}
	return cfg
}

func upgradeConfig(d *prefabs.DirectorSpec) system.UpgradeConfig {
	cfg := system.DefaultUpgradeConfig()
	if d == nil {
		return cfg
	}
	u := d.Upgrades
	if u.MoveSpeedDelta != 0 {
		cfg.MoveSpeedDelta = u.MoveSpeedDelta
	}
	if u.ShootCooldownDelta != 0 {
		cfg.ShootCooldownDelta = u.ShootCooldownDelta
	}
	if u.ShootCooldownFloor > 0 {
		cfg.ShootCooldownFloor = u.ShootCooldownFloor
	}
	if u.HealthDelta != 0 {
		cfg.HealthDelta = u.HealthDelta
	}
	return cfg
}

// Tick runs one fixed step with in as the player's intent and returns the
// events it produced. It does nothing once the match is over, and nothing
// while an upgrade offer waits for SelectUpgrade.
func (m *Match) Tick(in component.Input) []ecs.Event {
	if m == nil {
		return nil
	}
	rs := m.roundState()
	if rs == nil || rs.GameOver {
		return nil
	}
	m.resolveOffer()
	if rs.Offer.Pending {
		return nil
	}

	if stored, ok := ecs.Get(m.world, m.player, component.InputComponent.Kind()); ok {
		*stored = in
	}
	if !m.world.Clock().Advance(m.dt) {
		return nil
	}
	m.scheduler.Update(m.world)
	m.resolveOffer()

	return m.world.Events().Drain()
}

// Step asks provider for input and runs one tick.
func (m *Match) Step(provider InputProvider) []ecs.Event {
	var in component.Input
	if provider != nil {
		in = provider.Input(m)
	}
	return m.Tick(in)
}

// Run ticks until the match ends, ticks steps have run, or ctx is done. A
// non-positive ticks runs until the match ends. Stalling on an unresolved
// upgrade offer is reported as an error.
func (m *Match) Run(ctx context.Context, provider InputProvider, ticks int, onEvents func([]ecs.Event)) error {
	for i := 0; ticks <= 0 || i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.GameOver() {
			return nil
		}
		events := m.Step(provider)
		if len(events) > 0 && onEvents != nil {
			onEvents(events)
		}
		if m.roundState().Offer.Pending {
			return fmt.Errorf("arena: upgrade offer for round %d left unresolved", m.roundState().Round)
		}
	}
	return nil
}

func (m *Match) resolveOffer() {
	rs := m.roundState()
	if m.selector == nil || rs == nil || !rs.Offer.Pending {
		return
	}
	options := append([]component.UpgradeKind(nil), rs.Offer.Options...)
	m.SelectUpgrade(m.selector.Choose(m, options))
}

// SelectUpgrade applies kind to the player if it is one of the pending
// options and resumes the match. Anything else is ignored.
func (m *Match) SelectUpgrade(kind component.UpgradeKind) bool {
	if m == nil {
		return false
	}
	if !system.ApplyUpgrade(m.world, kind, m.upgrades) {
		m.logger.Warn("match: upgrade rejected", "upgrade", kind.String(), "raw", int(kind))
		return false
	}
	m.logger.Info("match: upgrade applied", "upgrade", kind.String(), "round", m.roundState().Round)
	return true
}

// ReloadTemplates re-reads the combatant specs. Enemies spawned afterwards
// use the new values; live entities keep theirs.
func (m *Match) ReloadTemplates() error {
	templates, err := entity.LoadTemplates()
	if err != nil {
		m.logger.Warn("match: template reload failed", "err", err)
		return fmt.Errorf("arena: reload: %w", err)
	}
	m.spawner.SetTemplates(templates)
	m.logger.Info("match: templates reloaded")
	return nil
}

func (m *Match) roundState() *component.RoundState {
	rs, ok := ecs.Get(m.world, m.state, component.RoundStateComponent.Kind())
	if !ok {
		return nil
	}
	return rs
}

func (m *Match) ID() string { return m.id }

func (m *Match) Seed() int64 { return m.seed }

// World exposes the simulation world. Callers outside the tick loop must
// treat it as read-only.
func (m *Match) World() *ecs.World { return m.world }

func (m *Match) Player() ecs.Entity { return m.player }

func (m *Match) Spawner() *system.SpawnerSystem { return m.spawner }

func (m *Match) Logger() *slog.Logger { return m.logger }

// TickDuration is the fixed simulation step in seconds.
func (m *Match) TickDuration() float64 { return m.dt }

func (m *Match) Bounds() cp.BB { return m.arena.Bounds.BB() }

func (m *Match) Arena() *prefabs.ArenaSpec { return m.arena }

func (m *Match) GameOver() bool {
	rs := m.roundState()
	return rs != nil && rs.GameOver
}

// Offer returns the pending upgrade options, or nil.
func (m *Match) Offer() []component.UpgradeKind {
	rs := m.roundState()
	if rs == nil || !rs.Offer.Pending {
		return nil
	}
	return append([]component.UpgradeKind(nil), rs.Offer.Options...)
}
