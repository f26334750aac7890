package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// livePlayer returns the player entity and its position when it exists and
// has not been destroyed.
func livePlayer(w *ecs.World) (ecs.Entity, cp.Vector, bool) {
	e, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok || !alive(w, e) {
		return 0, cp.Vector{}, false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, cp.Vector{}, false
	}
	return e, tr.Position, true
}

// alive reports whether e exists and is not already destroyed.
func alive(w *ecs.World, e ecs.Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		return !h.Destroyed && h.Current > 0
	}
	return true
}

func roundState(w *ecs.World) (*component.RoundState, bool) {
	e, ok := w.First(component.RoundStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RoundStateComponent.Kind())
}

func requestDestroy(w *ecs.World, e ecs.Entity, reason string) {
	if !w.IsAlive(e) || ecs.Has(w, e, component.DestroyRequestComponent.Kind()) {
		return
	}
	_ = ecs.Add(w, e, component.DestroyRequestComponent.Kind(), &component.DestroyRequest{Reason: reason})
}

// ApplyDamage subtracts amount from the health of target. It is a no-op for
// vanished or already dying targets and reports whether damage landed.
func ApplyDamage(w *ecs.World, target, source ecs.Entity, amount int, beam bool) bool {
	if amount <= 0 || !w.IsAlive(target) {
		return false
	}
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok || h.Destroyed || h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	w.Events().Push(ecs.Event{
		Type:   ecs.EventEntityDamaged,
		Entity: target,
		Data:   ecs.DamageEvent{Source: source, Amount: amount, Beam: beam},
	})
	return true
}
