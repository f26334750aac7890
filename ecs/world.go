package ecs

import "github.com/milk9111/twinstick/ecs/component"

// Kind is satisfied by every component.ComponentKind.
type Kind interface {
	ID() component.ComponentID
}

// World owns entities, components, the simulation clock and the event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	clock    Clock

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
// Destroying a dead entity is a no-op that returns false.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	if w.physicsWorld != nil {
		w.physicsWorld.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}

// AddComponent stores value for e, replacing any previous value of the kind.
func (w *World) AddComponent(e Entity, kind Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// GetComponent returns the stored value for e.
func (w *World) GetComponent(e Entity, kind Kind) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if s == nil || !s.Has(e.id()) {
		return nil, false
	}
	return s.Get(e.id()), true
}

// HasComponent reports whether e carries kind.
func (w *World) HasComponent(e Entity, kind Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// RemoveComponent drops kind from e.
func (w *World) RemoveComponent(e Entity, kind Kind) bool {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// Query returns the live entities that carry every given kind, in id order.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate the smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	var out []Entity
	for _, id := range sets[smallest].ids() {
		match := true
		for _, s := range sets {
			if !s.Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-id entity that carries kind.
func (w *World) First(kind Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clock returns the simulation clock shared by every system.
func (w *World) Clock() *Clock {
	if w == nil {
		return nil
	}
	return &w.clock
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
