package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
)

// NewPlayer builds the player from its spec. The player persists for the
// whole match.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, projectile component.ProjectileTemplate) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("%w: player", ErrMissingTemplate)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	faction := component.FactionPlayer
	if err := ecs.Add(w, entity, component.FactionComponent.Kind(), &faction); err != nil {
		return 0, fmt.Errorf("player: add faction: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: cp.Vector{X: spec.Transform.X, Y: spec.Transform.Y},
		Rotation: spec.Transform.Rotation,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{Radius: spec.Collider.Radius}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}

	stats := PlayerStats(spec)
	if err := ecs.Add(w, entity, component.PlayerStatsComponent.Kind(), &stats); err != nil {
		return 0, fmt.Errorf("player: add stats: %w", err)
	}

	state := component.NewPlayerState(stats.MaxAmmo)
	if err := ecs.Add(w, entity, component.PlayerStateComponent.Kind(), &state); err != nil {
		return 0, fmt.Errorf("player: add state: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.WeaponComponent.Kind(), &component.Weapon{Projectile: projectile}); err != nil {
		return 0, fmt.Errorf("player: add weapon: %w", err)
	}

	return entity, nil
}
