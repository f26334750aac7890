package system

import (
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// CleanupSystem removes entities carrying a DestroyRequest. It runs last so
// every other system sees a consistent roster within the tick.
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (s *CleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.DestroyRequestComponent.Kind()) {
		w.DestroyEntity(e)
	}
}
