package system

import (
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// MovementSystem integrates velocity into position. Projectiles remember
// where they started the step so collision can sweep the path.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Delta()

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, tr *component.Transform, vel *component.Velocity) {
		if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
			p.PrevPosition = tr.Position
		}
		if vel.Linear.X == 0 && vel.Linear.Y == 0 {
			return
		}
		tr.Position = tr.Position.Add(vel.Linear.Mult(dt))
	})
}
