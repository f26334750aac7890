package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// NewProjectile spawns a shot from owner at pos travelling along dir. The
// owner and its faction are stamped on the projectile here and never change.
func NewProjectile(w *ecs.World, owner ecs.Entity, faction component.Faction, tmpl component.ProjectileTemplate, pos, dir cp.Vector) (ecs.Entity, error) {
	if tmpl.Speed <= 0 || tmpl.Lifetime <= 0 {
		return 0, fmt.Errorf("%w: projectile %q", ErrMissingTemplate, tmpl.Name)
	}
	if dir.LengthSq() == 0 {
		return 0, fmt.Errorf("projectile: zero direction")
	}
	dir = dir.Normalize()

	clock := w.Clock()
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
		Rotation: dir.ToAngle(),
	}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{Linear: dir.Mult(tmpl.Speed)}); err != nil {
		return 0, fmt.Errorf("projectile: add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{
		OwnerID:      uint64(owner),
		OwnerFaction: faction,
		Damage:       tmpl.Damage,
		Radius:       tmpl.Radius,
		SpawnTime:    clock.Now(),
		Lifetime:     tmpl.Lifetime,
		SpawnTick:    clock.Tick(),
		PrevPosition: pos,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}

	return entity, nil
}
