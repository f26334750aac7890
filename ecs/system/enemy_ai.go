package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/entity"
)

// EnemyAISystem runs the per-enemy movement and attack state machine.
//
// Free phases (Approach, Retreat, Holding) are re-evaluated from the distance
// to the player every tick. Holding starts an attack sequence: Charging keeps
// the enemy in place facing the player with its beam on until the charge
// deadline, Firing spawns one projectile along the facing, and Cooldown waits
// out the post-attack delay before free evaluation resumes.
type EnemyAISystem struct {
	logger *slog.Logger
}

func NewEnemyAISystem(logger *slog.Logger) *EnemyAISystem {
	return &EnemyAISystem{logger: loggerOrDefault(logger)}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Clock().Now()
	_, playerPos, hasPlayer := livePlayer(w)

	for _, e := range w.Query(
		component.EnemyTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.EnemyStatsComponent.Kind(),
		component.EnemyStateComponent.Kind(),
	) {
		if !alive(w, e) {
			continue
		}
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		stats, _ := ecs.Get(w, e, component.EnemyStatsComponent.Kind())
		state, _ := ecs.Get(w, e, component.EnemyStateComponent.Kind())

		switch state.Phase {
		case component.EnemyCharging:
			vel.Linear = cp.Vector{}
			if !hasPlayer {
				// nothing left to aim at: drop the charge without firing
				state.Beam = component.Beam{}
				state.Phase = component.EnemyHolding
				continue
			}
			face(tr, playerPos)
			if now >= state.ChargeDeadline {
				s.fire(w, e, tr, state, stats, now)
				continue
			}
			aimBeam(tr, state, stats)
			continue
		case component.EnemyFiring:
			vel.Linear = cp.Vector{}
			state.Phase = component.EnemyCooldown
			if now < state.CooldownDeadline {
				continue
			}
		case component.EnemyCooldown:
			vel.Linear = cp.Vector{}
			if now < state.CooldownDeadline {
				continue
			}
		}

		if !hasPlayer {
			vel.Linear = cp.Vector{}
			continue
		}
		s.evaluate(w, e, tr, vel, stats, state, playerPos)
	}
}

func (s *EnemyAISystem) evaluate(w *ecs.World, e ecs.Entity, tr *component.Transform, vel *component.Velocity, stats *component.EnemyStats, state *component.EnemyState, playerPos cp.Vector) {
	toPlayer := playerPos.Sub(tr.Position)
	dist := toPlayer.Length()
	face(tr, playerPos)
	dir := toPlayer.Normalize()
	speed := stats.BaseSpeed * stats.SpeedMultiplier

	switch {
	case dist > stats.PreferredRange:
		state.Phase = component.EnemyApproach
		vel.Linear = dir.Mult(speed)
	case dist < stats.StoppingDistance:
		state.Phase = component.EnemyRetreat
		vel.Linear = dir.Mult(-speed * stats.RetreatFactor)
	default:
		state.Phase = component.EnemyHolding
		vel.Linear = cp.Vector{}
		s.StartAttack(w, e)
	}
}

// StartAttack begins the charge of e. Calling it while an attack sequence is
// already running leaves the enemy untouched and returns false.
func (s *EnemyAISystem) StartAttack(w *ecs.World, e ecs.Entity) bool {
	if !alive(w, e) {
		return false
	}
	state, ok := ecs.Get(w, e, component.EnemyStateComponent.Kind())
	if !ok || state.Phase.Attacking() {
		return false
	}
	stats, ok := ecs.Get(w, e, component.EnemyStatsComponent.Kind())
	if !ok {
		return false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		vel.Linear = cp.Vector{}
	}

	state.Phase = component.EnemyCharging
	state.ChargeDeadline = w.Clock().Now() + stats.ChargeTime
	aimBeam(tr, state, stats)
	w.Events().Emit(ecs.EventAttackStarted, e)
	s.logger.Debug("enemy: attack started", "entity", e, "deadline", state.ChargeDeadline)
	return true
}

func (s *EnemyAISystem) fire(w *ecs.World, e ecs.Entity, tr *component.Transform, state *component.EnemyState, stats *component.EnemyStats, now float64) {
	state.Beam = component.Beam{}
	state.Phase = component.EnemyFiring
	state.CooldownDeadline = now + stats.PostAttackDelay

	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		return
	}
	faction := component.FactionEnemy
	if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
		faction = *f
	}
	p, err := entity.NewProjectile(w, e, faction, weapon.Projectile, tr.Position, tr.Facing())
	if err != nil {
		s.logger.Error("enemy: spawn projectile", "entity", e, "err", err)
		return
	}
	w.Events().Emit(ecs.EventProjectileFired, p)
	s.logger.Debug("enemy: fired", "entity", e, "projectile", p)
}

func face(tr *component.Transform, target cp.Vector) {
	d := target.Sub(tr.Position)
	if d.LengthSq() < 1e-9 {
		return
	}
	tr.Rotation = d.ToAngle()
}

// aimBeam points the beam along the current facing at full length. The
// collision system shortens it to the first shape it touches.
func aimBeam(tr *component.Transform, state *component.EnemyState, stats *component.EnemyStats) {
	state.Beam.Active = true
	state.Beam.Start = tr.Position
	state.Beam.End = tr.Position.Add(tr.Facing().Mult(stats.BeamMaxLength))
	state.Beam.TargetID = 0
}
