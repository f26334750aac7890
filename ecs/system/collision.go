package system

import (
	"log/slog"

	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// CollisionSystem resolves projectile hits and beam contact.
//
// A projectile only queries shapes of the faction opposing its owner and
// never its owner, damages the first target on its swept path once and is
// then spent. Projectiles created during the current tick are skipped.
//
// Beams are a separate channel: every tick a charging enemy's ray is cast
// and, when the first shape it reaches is the player, damage is dealt at most
// once per damage interval.
type CollisionSystem struct {
	logger *slog.Logger
	// LegacyFriendlyFire lets enemy projectiles damage enemies other than
	// their owner, approximating the one-sided owner check of the first
	// release. Unlike that release the shot is spent on the enemy it hits
	// instead of passing through.
	LegacyFriendlyFire bool
}

func NewCollisionSystem(logger *slog.Logger) *CollisionSystem {
	return &CollisionSystem{logger: loggerOrDefault(logger)}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil || w.PhysicsWorld() == nil {
		return
	}
	s.resolveProjectiles(w)
	s.resolveBeams(w)
}

func (s *CollisionSystem) resolveProjectiles(w *ecs.World) {
	pw := w.PhysicsWorld()
	tick := w.Clock().Tick()

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, tr *component.Transform) {
		if p.Spent || p.SpawnTick == tick {
			return
		}
		owner := ecs.Entity(p.OwnerID)
		skip := func(target ecs.Entity) bool {
			return target == owner || !alive(w, target) || !s.canHit(w, p.OwnerFaction, target)
		}

		filter := ecs.FilterOpposing(p.OwnerFaction)
		if s.LegacyFriendlyFire && p.OwnerFaction == component.FactionEnemy {
			filter = ecs.FilterAll()
		}

		hit, ok := pw.Overlap(p.PrevPosition, p.Radius, filter, skip)
		if !ok {
			hit, ok = pw.SegmentFirst(p.PrevPosition, tr.Position, p.Radius, filter, skip)
		}
		if !ok {
			return
		}

		ApplyDamage(w, hit.Entity, owner, p.Damage, false)
		p.Spent = true
		tr.Position = hit.Point
		requestDestroy(w, e, "hit")
	})
}

// canHit is the faction rule checked for every candidate, on top of the
// query filter.
func (s *CollisionSystem) canHit(w *ecs.World, ownerFaction component.Faction, target ecs.Entity) bool {
	f, ok := ecs.Get(w, target, component.FactionComponent.Kind())
	if !ok {
		return false
	}
	if ownerFaction.Opposes(*f) {
		return true
	}
	return s.LegacyFriendlyFire && ownerFaction == component.FactionEnemy && *f == component.FactionEnemy
}

func (s *CollisionSystem) resolveBeams(w *ecs.World) {
	pw := w.PhysicsWorld()
	now := w.Clock().Now()
	player, _, hasPlayer := livePlayer(w)

	ecs.ForEach2(w, component.EnemyStateComponent.Kind(), component.EnemyStatsComponent.Kind(), func(e ecs.Entity, state *component.EnemyState, stats *component.EnemyStats) {
		if !state.Beam.Active || !alive(w, e) {
			return
		}
		beam := &state.Beam
		hit, ok := pw.SegmentFirst(beam.Start, beam.End, 0, ecs.FilterAll(), func(target ecs.Entity) bool {
			return target == e || !alive(w, target)
		})
		beam.TargetID = 0
		if !ok {
			return
		}
		beam.End = hit.Point
		beam.TargetID = uint64(hit.Entity)

		if !hasPlayer || hit.Entity != player {
			return
		}
		if now-state.LastBeamDamageTime < stats.BeamDamageInterval {
			return
		}
		if ApplyDamage(w, player, e, stats.BeamDamage, true) {
			state.LastBeamDamageTime = now
		}
	})
}
