package arena

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// HUD is the read-only status the render layer formats.
type HUD struct {
	Health      int
	MaxHealth   int
	HealthRatio float64

	Ammo            int
	MaxAmmo         int
	Reloading       bool
	ReloadRemaining float64
	ReloadProgress  float64
	ShootCooldown   float64
	DashCooldown    float64
	Dashing         bool

	Round      int
	Difficulty float64
	Score      int
	Defeated   int
	Needed     int

	Enemies  int
	Time     float64
	Paused   bool
	GameOver bool
	Offer    []component.UpgradeKind
}

func (m *Match) HUD() HUD {
	var hud HUD
	if m == nil {
		return hud
	}
	now := m.world.Clock().Now()
	hud.Time = now
	hud.Paused = m.world.Clock().Paused()

	if h, ok := ecs.Get(m.world, m.player, component.HealthComponent.Kind()); ok {
		hud.Health = h.Current
		hud.MaxHealth = h.Max
		hud.HealthRatio = h.Ratio()
	}
	stats, okStats := ecs.Get(m.world, m.player, component.PlayerStatsComponent.Kind())
	state, okState := ecs.Get(m.world, m.player, component.PlayerStateComponent.Kind())
	if okStats && okState {
		hud.Ammo = state.Ammo
		hud.MaxAmmo = stats.MaxAmmo
		hud.Reloading = state.Reloading
		hud.Dashing = state.Dashing()
		if state.Reloading {
			hud.ReloadRemaining = math.Max(0, state.ReloadDeadline-now)
			if stats.ReloadTime > 0 {
				hud.ReloadProgress = common.Clamp01((now - state.ReloadStart) / stats.ReloadTime)
			}
		}
		hud.ShootCooldown = remaining(state.LastShotTime+stats.ShootCooldown, now)
		hud.DashCooldown = remaining(state.LastDashTime+stats.DashCooldown, now)
	}

	if rs := m.roundState(); rs != nil {
		hud.Round = rs.Round
		hud.Difficulty = rs.Difficulty
		hud.Score = rs.Score
		hud.Defeated = rs.Defeated
		hud.Needed = rs.Needed
		hud.GameOver = rs.GameOver
		if rs.Offer.Pending {
			hud.Offer = append([]component.UpgradeKind(nil), rs.Offer.Options...)
		}
	}

	for _, e := range m.world.Query(component.EnemyTagComponent.Kind()) {
		if h, ok := ecs.Get(m.world, e, component.HealthComponent.Kind()); ok && !h.Destroyed {
			hud.Enemies++
		}
	}
	return hud
}

func remaining(deadline, now float64) float64 {
	if math.IsInf(deadline, -1) || math.IsNaN(deadline) {
		return 0
	}
	return math.Max(0, deadline-now)
}

type ActorKind uint8

const (
	ActorPlayer ActorKind = iota + 1
	ActorEnemy
	ActorProjectile
)

func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	case ActorEnemy:
		return "enemy"
	case ActorProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Actor is a drawable snapshot of one entity.
type Actor struct {
	Entity   ecs.Entity
	Kind     ActorKind
	Faction  component.Faction
	Position cp.Vector
	Rotation float64
	Radius   float64
	// Tilt is the dash lean of the player in radians.
	Tilt        float64
	HealthRatio float64
	Phase       component.EnemyPhase
	// ChargeProgress runs 0..1 while an enemy charges its attack.
	ChargeProgress float64
	Beam           component.Beam
}

// Actors lists every live combatant and projectile in entity order.
func (m *Match) Actors() []Actor {
	if m == nil {
		return nil
	}
	w := m.world
	now := w.Clock().Now()
	var out []Actor

	for _, e := range w.Query(component.TransformComponent.Kind()) {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		a := Actor{Entity: e, Position: tr.Position, Rotation: tr.Rotation}

		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			if h.Destroyed && e != m.player {
				continue
			}
			a.HealthRatio = h.Ratio()
		}
		if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
			a.Radius = col.Radius
		}
		if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
			a.Faction = *f
		}

		switch {
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			a.Kind = ActorPlayer
			if state, ok := ecs.Get(w, e, component.PlayerStateComponent.Kind()); ok {
				a.Tilt = state.Dash.Tilt
			}
		case ecs.Has(w, e, component.EnemyTagComponent.Kind()):
			a.Kind = ActorEnemy
			state, okState := ecs.Get(w, e, component.EnemyStateComponent.Kind())
			stats, okStats := ecs.Get(w, e, component.EnemyStatsComponent.Kind())
			if okState {
				a.Phase = state.Phase
				a.Beam = state.Beam
			}
			if okState && okStats && state.Phase == component.EnemyCharging && stats.ChargeTime > 0 {
				a.ChargeProgress = common.Clamp01(1 - (state.ChargeDeadline-now)/stats.ChargeTime)
			}
		default:
			p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
			if !ok || p.Spent {
				continue
			}
			a.Kind = ActorProjectile
			a.Faction = p.OwnerFaction
			a.Radius = p.Radius
		}
		out = append(out, a)
	}
	return out
}

// NearestEnemy returns the position of the live enemy closest to from.
func (m *Match) NearestEnemy(from cp.Vector) (cp.Vector, bool) {
	best := math.Inf(1)
	var pos cp.Vector
	found := false
	for _, a := range m.Actors() {
		if a.Kind != ActorEnemy {
			continue
		}
		if d := a.Position.DistanceSq(from); d < best {
			best = d
			pos = a.Position
			found = true
		}
	}
	return pos, found
}

// PlayerPosition returns where the player currently is.
func (m *Match) PlayerPosition() cp.Vector {
	if tr, ok := ecs.Get(m.world, m.player, component.TransformComponent.Kind()); ok {
		return tr.Position
	}
	return cp.Vector{}
}

// BeamOnPlayer reports whether any charging beam currently ends on the
// player.
func (m *Match) BeamOnPlayer() bool {
	for _, a := range m.Actors() {
		if a.Kind == ActorEnemy && a.Beam.Active && a.Beam.TargetID == uint64(m.player) {
			return true
		}
	}
	return false
}
