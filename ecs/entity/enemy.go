package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
)

// NewEnemy builds an enemy at pos moving at its base speed scaled by
// speedMultiplier.
func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec, projectile component.ProjectileTemplate, pos cp.Vector, speedMultiplier float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("%w: enemy", ErrMissingTemplate)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	faction := component.FactionEnemy
	if err := ecs.Add(w, entity, component.FactionComponent.Kind(), &faction); err != nil {
		return 0, fmt.Errorf("enemy: add faction: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("enemy: add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{Radius: spec.Collider.Radius}); err != nil {
		return 0, fmt.Errorf("enemy: add collider: %w", err)
	}

	stats := EnemyStats(spec, speedMultiplier)
	if err := ecs.Add(w, entity, component.EnemyStatsComponent.Kind(), &stats); err != nil {
		return 0, fmt.Errorf("enemy: add stats: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyStateComponent.Kind(), &component.EnemyState{
		Phase:              component.EnemyApproach,
		LastBeamDamageTime: math.Inf(-1),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add state: %w", err)
	}

	if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), &component.Weapon{Projectile: projectile}); err != nil {
		return 0, fmt.Errorf("enemy: add weapon: %w", err)
	}

	return entity, nil
}
