package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// NewMatch creates the entity holding round progression and the view bounds.
func NewMatch(w *ecs.World, threshold int, bounds cp.BB) (ecs.Entity, error) {
	if threshold <= 0 {
		threshold = 10
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.MatchTagComponent.Kind(), &component.MatchTag{}); err != nil {
		return 0, fmt.Errorf("match: add match tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.RoundStateComponent.Kind(), &component.RoundState{
		Round:      1,
		Difficulty: 1,
		Needed:     threshold,
	}); err != nil {
		return 0, fmt.Errorf("match: add round state: %w", err)
	}

	if err := ecs.Add(w, entity, component.ViewBoundsComponent.Kind(), &component.ViewBounds{BB: bounds}); err != nil {
		return 0, fmt.Errorf("match: add view bounds: %w", err)
	}

	return entity, nil
}
