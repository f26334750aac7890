package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// ProjectileSystem expires projectiles whose lifetime ran out or that left
// the view bounds. A shot fired from outside the view lives until it enters
// or its lifetime ends.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Clock().Now()

	var bounds *component.ViewBounds
	if e, ok := w.First(component.ViewBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, e, component.ViewBoundsComponent.Kind())
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, tr *component.Transform) {
		if p.Spent {
			return
		}
		if now-p.SpawnTime >= p.Lifetime {
			p.Spent = true
			requestDestroy(w, e, "expired")
			return
		}
		if bounds == nil {
			return
		}
		inside := cp.NewBBForCircle(tr.Position, p.Radius).Intersects(bounds.BB)
		switch {
		case inside:
			p.EnteredView = true
		case p.EnteredView:
			p.Spent = true
			requestDestroy(w, e, "out_of_view")
		}
	})
}
