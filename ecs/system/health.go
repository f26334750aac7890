package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// HealthSystem destroys combatants whose health reached zero. Each entity is
// destroyed exactly once: enemies release their beam, emit a kill and are
// queued for removal; the player ends the match but stays in the world.
type HealthSystem struct {
	logger *slog.Logger
}

func NewHealthSystem(logger *slog.Logger) *HealthSystem {
	return &HealthSystem{logger: loggerOrDefault(logger)}
}

func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Health) {
		if h.Destroyed || h.Current > 0 {
			return
		}
		h.Current = 0
		h.Destroyed = true

		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel.Linear = cp.Vector{}
		}

		if state, ok := ecs.Get(w, e, component.EnemyStateComponent.Kind()); ok {
			state.Beam = component.Beam{}
			w.Events().Emit(ecs.EventEnemyKilled, e)
			requestDestroy(w, e, "killed")
			return
		}

		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			if state, ok := ecs.Get(w, e, component.PlayerStateComponent.Kind()); ok {
				state.Dash = component.Dash{}
				state.Reloading = false
			}
			if rs, ok := roundState(w); ok {
				rs.GameOver = true
			}
			w.Events().Emit(ecs.EventPlayerDied, e)
			s.logger.Info("match: game over", "player", e)
			return
		}

		requestDestroy(w, e, "killed")
	})
}
