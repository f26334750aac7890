package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/entity"
)

// PlayerControllerSystem turns the player's Input into movement, aiming,
// shooting, reloading and dashing. Every action is gated by a timestamp on
// PlayerState compared against the simulation clock.
type PlayerControllerSystem struct {
	logger *slog.Logger
}

func NewPlayerControllerSystem(logger *slog.Logger) *PlayerControllerSystem {
	return &PlayerControllerSystem{logger: loggerOrDefault(logger)}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Clock().Now()

	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PlayerStatsComponent.Kind(),
		component.PlayerStateComponent.Kind(),
	) {
		if !alive(w, e) {
			continue
		}
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		stats, _ := ecs.Get(w, e, component.PlayerStatsComponent.Kind())
		state, _ := ecs.Get(w, e, component.PlayerStateComponent.Kind())

		var in component.Input
		if stored, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			in = *stored
		}

		s.finishReload(state, stats, now)

		if state.Dashing() {
			vel.Linear = cp.Vector{}
			advanceDash(tr, state, stats, now)
			continue
		}

		vel.Linear = moveVelocity(in.Move, stats.MoveSpeed)
		aim(tr, in)
		s.shoot(w, e, tr, stats, state, in, now)
		if in.Reload || state.Ammo <= 0 {
			s.StartReload(w, e)
		}
		if in.Dash {
			s.StartDash(w, e)
		}
	}
}

func moveVelocity(move cp.Vector, speed float64) cp.Vector {
	if move.LengthSq() > 1 {
		move = move.Normalize()
	}
	return move.Mult(speed)
}

func aim(tr *component.Transform, in component.Input) {
	if !in.HasAim {
		return
	}
	d := in.AimTarget.Sub(tr.Position)
	if d.LengthSq() < 1e-9 {
		return
	}
	tr.Rotation = d.ToAngle()
}

// SpreadOffsets returns n angle offsets spread evenly across total radians and
// centered on zero.
func SpreadOffsets(n int, total float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := total / float64(n-1)
	for i := range out {
		out[i] = -total/2 + step*float64(i)
	}
	return out
}

func (s *PlayerControllerSystem) shoot(w *ecs.World, e ecs.Entity, tr *component.Transform, stats *component.PlayerStats, state *component.PlayerState, in component.Input, now float64) {
	if !in.Fire || state.Reloading || state.Ammo <= 0 {
		return
	}
	if now-state.LastShotTime < stats.ShootCooldown {
		return
	}
	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		return
	}
	faction := component.FactionPlayer
	if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
		faction = *f
	}

	for _, offset := range SpreadOffsets(max(stats.BulletsPerShot, 1), stats.SpreadAngle) {
		dir := cp.ForAngle(tr.Rotation + offset)
		p, err := entity.NewProjectile(w, e, faction, weapon.Projectile, tr.Position, dir)
		if err != nil {
			s.logger.Error("player: spawn projectile", "err", err)
			return
		}
		w.Events().Emit(ecs.EventProjectileFired, p)
	}
	state.Ammo--
	state.LastShotTime = now
}

// StartReload begins a reload unless one is running or the magazine is full.
func (s *PlayerControllerSystem) StartReload(w *ecs.World, e ecs.Entity) bool {
	state, ok := ecs.Get(w, e, component.PlayerStateComponent.Kind())
	if !ok {
		return false
	}
	stats, ok := ecs.Get(w, e, component.PlayerStatsComponent.Kind())
	if !ok || state.Reloading || state.Ammo >= stats.MaxAmmo {
		return false
	}
	now := w.Clock().Now()
	state.Reloading = true
	state.ReloadStart = now
	state.ReloadDeadline = now + stats.ReloadTime
	w.Events().Emit(ecs.EventReloadStarted, e)
	s.logger.Debug("player: reload started", "entity", e, "deadline", state.ReloadDeadline)
	return true
}

func (s *PlayerControllerSystem) finishReload(state *component.PlayerState, stats *component.PlayerStats, now float64) {
	if !state.Reloading || now < state.ReloadDeadline {
		return
	}
	state.Ammo = stats.MaxAmmo
	state.Reloading = false
}

// StartDash begins a dash if the cooldown has elapsed and no dash is running.
func (s *PlayerControllerSystem) StartDash(w *ecs.World, e ecs.Entity) bool {
	state, ok := ecs.Get(w, e, component.PlayerStateComponent.Kind())
	if !ok || state.Dashing() {
		return false
	}
	stats, ok := ecs.Get(w, e, component.PlayerStatsComponent.Kind())
	if !ok {
		return false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	now := w.Clock().Now()
	if now-state.LastDashTime < stats.DashCooldown {
		return false
	}

	var in component.Input
	if stored, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		in = *stored
	}
	dir := DashDirection(tr, in, stats.DashInputThreshold)

	state.LastDashTime = now
	state.Dash = component.Dash{
		Phase:     component.DashMoving,
		Start:     tr.Position,
		Target:    tr.Position.Add(dir.Mult(stats.DashDistance)),
		StartTime: now,
		Axis:      dir.ReversePerp(),
	}
	if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		vel.Linear = cp.Vector{}
	}
	w.Events().Emit(ecs.EventDashStarted, e)
	return true
}

// DashDirection picks the movement input when it is non-trivial, then the aim
// direction, then the current facing.
func DashDirection(tr *component.Transform, in component.Input, threshold float64) cp.Vector {
	if in.Move.LengthSq() > threshold {
		return in.Move.Normalize()
	}
	if in.HasAim {
		if d := in.AimTarget.Sub(tr.Position); d.LengthSq() > 1e-9 {
			return d.Normalize()
		}
	}
	return tr.Facing()
}

func advanceDash(tr *component.Transform, state *component.PlayerState, stats *component.PlayerStats, now float64) {
	d := &state.Dash
	switch d.Phase {
	case component.DashMoving:
		t := 1.0
		if stats.DashDuration > 0 {
			t = (now - d.StartTime) / stats.DashDuration
		}
		eased := common.SmoothStep(0, 1, t)
		tr.Position = d.Start.Lerp(d.Target, eased)
		d.Tilt = stats.TiltAngle * eased
		if t < 1 {
			return
		}
		tr.Position = d.Target
		d.Phase = component.DashReturning
		d.ReturnStart = now
		if stats.TiltReturn > 0 {
			return
		}
		fallthrough
	case component.DashReturning:
		t := 1.0
		if stats.TiltReturn > 0 {
			t = (now - d.ReturnStart) / stats.TiltReturn
		}
		d.Tilt = stats.TiltAngle * (1 - common.SmoothStep(0, 1, t))
		if t >= 1 {
			d.Tilt = 0
			d.Phase = component.DashIdle
		}
	}
}
