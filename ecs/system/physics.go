package system

import (
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// PhysicsSystem mirrors combatant positions into the physics world and steps
// it so spatial queries see this tick's positions.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), component.FactionComponent.Kind(), func(e ecs.Entity, tr *component.Transform, col *component.Collider, faction *component.Faction) {
		if !pw.Has(e) {
			pw.EnsureBody(e, tr.Position, col.Radius, *faction)
			return
		}
		pw.SetPosition(e, tr.Position)
	})

	pw.Step(w.Clock().Delta())
}
